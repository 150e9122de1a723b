package main

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/config"
	qaprom "github.com/fwojciec/docqa/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Config  config.Config
	Asker   docqa.Asker
	Metrics *qaprom.Metrics
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool   `short:"v" help:"Log pipeline progress at debug level"`
	LogFormat string `name:"log-format" enum:"text,json" default:"${log_format}" help:"Log output format (${enum})"`

	Ask   AskCmd   `cmd:"" help:"Answer a question using web pages and a PDF document"`
	Serve ServeCmd `cmd:"" help:"Serve the question-answering HTTP API"`
}

// BackendFlags configure extraction and the answer backend.
type BackendFlags struct {
	Provider      string        `enum:"gemini,anthropic,openai" default:"${provider}" help:"Answer backend (${enum})"`
	Model         string        `default:"${model}" help:"Model name (empty selects the provider default)"`
	Extractor     string        `enum:"paragraphs,readability,trafilatura,markdown" default:"${extractor}" help:"HTML text extraction (${enum})"`
	Fetcher       string        `enum:"http,browser" default:"${fetcher}" help:"Page retrieval; browser renders JavaScript with headless Chrome (${enum})"`
	FetchTimeout  time.Duration `name:"fetch-timeout" default:"${fetch_timeout}" help:"Timeout for each page fetch"`
	MaxPageSize   int64         `name:"max-page-size" default:"${max_page_size}" help:"Largest fetched page body in bytes"`
	AnswerTimeout time.Duration `name:"timeout" default:"${answer_timeout}" help:"Timeout for the backend call"`
	Concurrency   int           `short:"c" default:"${concurrency}" help:"Sources extracted in parallel"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	BackendFlags `embed:""`

	URLs     []string `name:"url" short:"u" help:"Web page to read (repeatable, at most 3)"`
	PDF      string   `name:"pdf" type:"existingfile" help:"PDF document to read"`
	Question string   `arg:"" help:"Question to answer"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	BackendFlags `embed:""`

	Addr           string        `default:"${addr}" help:"Listen address"`
	MaxUploadSize  int64         `name:"max-upload-size" default:"${max_upload_size}" help:"Largest accepted request body in bytes"`
	RequestTimeout time.Duration `name:"request-timeout" default:"2m" help:"Deadline for a single request"`
}

// Vars exposes configuration values as flag defaults.
func Vars(cfg config.Config) kong.Vars {
	return kong.Vars{
		"provider":        cfg.Provider,
		"model":           cfg.Model,
		"extractor":       cfg.Extractor,
		"fetcher":         cfg.Fetcher,
		"fetch_timeout":   cfg.FetchTimeout.String(),
		"max_page_size":   strconv.FormatInt(cfg.MaxPageSize, 10),
		"answer_timeout":  cfg.AnswerTimeout.String(),
		"concurrency":     strconv.Itoa(cfg.Concurrency),
		"log_format":      cfg.LogFormat,
		"addr":            cfg.Addr,
		"max_upload_size": strconv.FormatInt(cfg.MaxUploadSize, 10),
	}
}
