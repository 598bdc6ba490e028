package ai

import (
	"context"
	"log"
)

// Chain tries the primary strategy and, only when it returns a transport or
// service error, falls back to the secondary one. A conversational reply from
// the primary is a valid outcome and does not trigger the fallback.
type Chain struct {
	primary  Strategy
	fallback Strategy
}

// NewChain wires an explicit remote-then-local failover chain.
func NewChain(primary, fallback Strategy) *Chain {
	return &Chain{primary: primary, fallback: fallback}
}

// Attempt implements Strategy.
func (c *Chain) Attempt(ctx context.Context, text string) (*Result, error) {
	result, err := c.primary.Attempt(ctx, text)
	if err == nil {
		return result, nil
	}
	if c.fallback == nil {
		return nil, err
	}
	log.Printf("extractor: primary strategy failed, using fallback: %v", err)
	return c.fallback.Attempt(ctx, text)
}
