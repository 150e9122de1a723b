package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docqa"
	main "github.com/fwojciec/docqa/cmd/docqa"
	"github.com/fwojciec/docqa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints answer and per-source warnings", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, sources []docqa.Source, question string) (*docqa.Answer, error) {
				return &docqa.Answer{
					Text: "Net income rose 8%.",
					Warnings: []docqa.Extraction{{
						Source: docqa.WebURL("https://bad.example"),
						Err:    docqa.Errorf(docqa.ENETWORK, "connection refused"),
					}},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Asker:  asker,
		}

		cmd := &main.AskCmd{
			URLs:     []string{"https://good.example", "https://bad.example"},
			Question: "What happened to net income?",
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Net income rose 8%.\n", stdout.String())
		assert.Contains(t, stderr.String(), "warning: skipped https://bad.example: connection refused")
	})

	t.Run("prints backend error without partial answer", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, sources []docqa.Source, question string) (*docqa.Answer, error) {
				return nil, docqa.Errorf(docqa.EBACKEND, "quota exceeded")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Asker: asker}

		err := (&main.AskCmd{URLs: []string{"https://a.example"}, Question: "q"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, docqa.EBACKEND, docqa.ErrorCode(err))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "error: quota exceeded")
	})

	t.Run("rejects more than three URLs before asking", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, sources []docqa.Source, question string) (*docqa.Answer, error) {
				t.Error("Ask should not be called")
				return nil, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Asker: asker}

		err := (&main.AskCmd{
			URLs:     []string{"https://a.example", "https://b.example", "https://c.example", "https://d.example"},
			Question: "q",
		}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
		assert.Contains(t, stderr.String(), "at most 3 URLs")
	})
}
