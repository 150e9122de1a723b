package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docqa"
	qahttp "github.com/fwojciec/docqa/http"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	sources, err := c.sources()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docqa.ErrorMessage(err))
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, sources, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docqa.ErrorMessage(err))
		return err
	}

	for _, w := range answer.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: skipped %s: %s\n", w.Source, docqa.ErrorMessage(w.Err))
	}
	fmt.Fprintln(deps.Stdout, answer.Text)
	return nil
}

func (c *AskCmd) sources() ([]docqa.Source, error) {
	if len(c.URLs) > qahttp.MaxURLs {
		return nil, docqa.Errorf(docqa.EINVALID, "at most %d URLs allowed, got %d", qahttp.MaxURLs, len(c.URLs))
	}

	sources := make([]docqa.Source, 0, len(c.URLs)+1)
	for _, u := range c.URLs {
		sources = append(sources, docqa.WebURL(u))
	}

	if c.PDF != "" {
		data, err := os.ReadFile(c.PDF)
		if err != nil {
			return nil, docqa.Errorf(docqa.EINVALID, "cannot read PDF %q: %v", c.PDF, err)
		}
		sources = append(sources, docqa.PDFDocument(filepath.Base(c.PDF), data))
	}
	return sources, nil
}
