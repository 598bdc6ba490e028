package ai

import (
	"context"

	"offer-agent/internal/core"
)

// ResultKind discriminates what a strategy produced from the user's text.
type ResultKind string

const (
	// ResultOffer means the text was an offer request and fields were extracted.
	ResultOffer ResultKind = "offer"
	// ResultReply means the text was a general remark; Reply holds the
	// conversational answer.
	ResultReply ResultKind = "reply"
)

// Result is the outcome of one extraction attempt.
type Result struct {
	Kind  ResultKind
	Offer *core.OfferAttributes // set when Kind == ResultOffer
	Reply string                // set when Kind == ResultReply
}

// Strategy turns free-form user text into offer attributes or a
// conversational reply. A returned error is an extraction failure (service
// unreachable or malformed); strategies never retry internally.
type Strategy interface {
	Attempt(ctx context.Context, text string) (*Result, error)
}
