package main

import (
	qahttp "github.com/fwojciec/docqa/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	opts := []qahttp.ServerOption{
		qahttp.WithMaxUploadSize(c.MaxUploadSize),
		qahttp.WithRequestTimeout(c.RequestTimeout),
	}
	if deps.Metrics != nil {
		opts = append(opts, qahttp.WithMetrics(deps.Metrics.Handler()))
	}
	server := qahttp.NewServer(deps.Asker, deps.Logger, opts...)
	return server.ListenAndServe(deps.Ctx, c.Addr)
}
