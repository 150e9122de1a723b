package docqa

import (
	"fmt"
	"strings"
)

const promptInstructions = `Act as an expert question-answering model and text summarizer.
Your task is to provide the most accurate and concise answers to the question based only on the provided context.
Use the context to form a well-informed, clear, and precise response.`

// BuildPrompt renders the model input for a question and its context.
// The context is embedded in full; an empty context is allowed.
func BuildPrompt(question, context string) string {
	var sb strings.Builder
	sb.WriteString(promptInstructions)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Question: %s\n", question)
	fmt.Fprintf(&sb, "Context: %s", context)
	return sb.String()
}
