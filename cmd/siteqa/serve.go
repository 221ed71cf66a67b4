package main

import (
	"fmt"

	lochttp "github.com/fwojciec/siteqa/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = fmt.Sprintf(":%d", deps.Config.Port)
	}

	server := lochttp.NewServer(deps.Scraper, deps.Asker, deps.Questions,
		lochttp.WithLogger(deps.Logger),
		lochttp.WithRateLimit(deps.Config.RateLimit),
	)
	return server.ListenAndServe(deps.Ctx, addr)
}
