package main

import (
	urlinfohttp "github.com/fwojciec/urlinfo/http"
	"golang.org/x/time/rate"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := urlinfohttp.NewServer(deps.Scraper, deps.Logger)
	s.History = deps.History
	if c.RPS > 0 {
		burst := c.Burst
		if burst < 1 {
			burst = 1
		}
		s.Limiter = rate.NewLimiter(rate.Limit(c.RPS), burst)
	}

	return s.ListenAndServe(deps.Ctx, c.Addr)
}
