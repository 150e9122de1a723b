// Package docqa answers natural language questions using text gathered from
// a handful of web pages and uploaded PDF documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, goquery/, pdf/).
package docqa
