package main

import (
	"context"
	"log/slog"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/anthropic"
	"github.com/fwojciec/docqa/config"
	"github.com/fwojciec/docqa/extract"
	"github.com/fwojciec/docqa/gemini"
	"github.com/fwojciec/docqa/goquery"
	"github.com/fwojciec/docqa/htmltomarkdown"
	qahttp "github.com/fwojciec/docqa/http"
	"github.com/fwojciec/docqa/openai"
	"github.com/fwojciec/docqa/pdf"
	qaprom "github.com/fwojciec/docqa/prometheus"
	"github.com/fwojciec/docqa/readability"
	"github.com/fwojciec/docqa/rod"
	"github.com/fwojciec/docqa/session"
	qaslog "github.com/fwojciec/docqa/slog"
	"github.com/fwojciec/docqa/trafilatura"
	"google.golang.org/genai"
)

// buildAsker wires the session pipeline for the selected backend. The
// returned function releases the fetcher.
func buildAsker(ctx context.Context, cfg config.Config, flags BackendFlags, logger *slog.Logger, metrics *qaprom.Metrics) (docqa.Asker, func() error, error) {
	answerer, err := buildAnswerer(ctx, cfg, flags)
	if err != nil {
		return nil, nil, err
	}

	html, err := buildHTMLExtractor(flags.Extractor)
	if err != nil {
		return nil, nil, err
	}

	pageFetcher, err := buildFetcher(flags)
	if err != nil {
		return nil, nil, err
	}

	fetcher := qaslog.NewLoggingFetcher(pageFetcher, logger)
	extractor := &extract.Extractor{
		Fetcher: fetcher,
		HTML:    html,
		PDF:     pdf.NewReader(),
	}

	asker := &session.Asker{
		Extractor:   qaslog.NewLoggingSourceExtractor(extractor, logger),
		Answerer:    qaslog.NewLoggingAnswerer(qaprom.NewInstrumentedAnswerer(answerer, metrics), logger),
		Concurrency: flags.Concurrency,
		OnEvent:     docqa.MultiEventFunc(qaslog.EventLogger(logger), metrics.Observe),
	}
	return asker, fetcher.Close, nil
}

func buildAnswerer(ctx context.Context, cfg config.Config, flags BackendFlags) (docqa.Answerer, error) {
	apiKey := cfg.APIKey(flags.Provider)

	switch flags.Provider {
	case config.ProviderGemini:
		if apiKey == "" {
			return nil, docqa.Errorf(docqa.EINVALID, "GEMINI_API_KEY (or GOOGLE_API_KEY) not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, docqa.Errorf(docqa.EBACKEND, "failed to connect to Gemini API: %v", err)
		}
		return gemini.NewAnswerer(client, flags.Model, gemini.WithTimeout(flags.AnswerTimeout)), nil

	case config.ProviderAnthropic:
		if apiKey == "" {
			return nil, docqa.Errorf(docqa.EINVALID, "ANTHROPIC_API_KEY not set")
		}
		return anthropic.NewAnswerer(anthropic.NewClient(apiKey), flags.Model, anthropic.WithTimeout(flags.AnswerTimeout)), nil

	case config.ProviderOpenAI:
		if apiKey == "" {
			return nil, docqa.Errorf(docqa.EINVALID, "OPENAI_API_KEY not set")
		}
		return openai.NewAnswerer(openai.NewClient(apiKey), flags.Model, openai.WithTimeout(flags.AnswerTimeout)), nil

	default:
		return nil, docqa.Errorf(docqa.EINVALID, "unknown provider %q", flags.Provider)
	}
}

func buildHTMLExtractor(name string) (docqa.Extractor, error) {
	switch name {
	case config.ExtractorParagraphs, "":
		return goquery.NewExtractor(), nil
	case config.ExtractorReadability:
		return readability.NewExtractor(), nil
	case config.ExtractorTrafilatura:
		return trafilatura.NewExtractor(), nil
	case config.ExtractorMarkdown:
		return htmltomarkdown.NewExtractor(), nil
	default:
		return nil, docqa.Errorf(docqa.EINVALID, "unknown extractor %q", name)
	}
}

func buildFetcher(flags BackendFlags) (docqa.Fetcher, error) {
	switch flags.Fetcher {
	case config.FetcherHTTP, "":
		return qahttp.NewFetcher(
			qahttp.WithTimeout(flags.FetchTimeout),
			qahttp.WithMaxBodySize(flags.MaxPageSize),
		), nil
	case config.FetcherBrowser:
		fetcher, err := rod.NewFetcher(rod.WithTimeout(flags.FetchTimeout))
		if err != nil {
			return nil, docqa.Errorf(docqa.EINVALID, "failed to start browser (Chrome or Chromium must be installed): %v", err)
		}
		return fetcher, nil
	default:
		return nil, docqa.Errorf(docqa.EINVALID, "unknown fetcher %q", flags.Fetcher)
	}
}
