package ai_test

import (
	"context"
	"errors"
	"testing"

	"offer-agent/internal/ai"
)

type stubStrategy struct {
	result *ai.Result
	err    error
	calls  int
}

func (s *stubStrategy) Attempt(_ context.Context, _ string) (*ai.Result, error) {
	s.calls++
	return s.result, s.err
}

func TestChain_UsesPrimaryResult(t *testing.T) {
	primary := &stubStrategy{result: &ai.Result{Kind: ai.ResultReply, Reply: "Γεια σας!"}}
	fallback := &stubStrategy{}

	result, err := ai.NewChain(primary, fallback).Attempt(context.Background(), "γεια")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reply != "Γεια σας!" {
		t.Errorf("reply = %q, want primary's reply", result.Reply)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback must not run when the primary succeeds, ran %d times", fallback.calls)
	}
}

func TestChain_FallsBackOnTransportErrorOnly(t *testing.T) {
	primary := &stubStrategy{err: errors.New("connection refused")}
	fallback := &stubStrategy{result: &ai.Result{Kind: ai.ResultOffer}}

	result, err := ai.NewChain(primary, fallback).Attempt(context.Background(), "προσφορά")
	if err != nil {
		t.Fatalf("chain should recover via fallback, got %v", err)
	}
	if result.Kind != ai.ResultOffer {
		t.Errorf("kind = %s, want offer from fallback", result.Kind)
	}
	if fallback.calls != 1 {
		t.Errorf("fallback calls = %d, want 1", fallback.calls)
	}
}

func TestChain_NoFallbackPropagatesError(t *testing.T) {
	primary := &stubStrategy{err: errors.New("service unavailable")}

	_, err := ai.NewChain(primary, nil).Attempt(context.Background(), "προσφορά")
	if err == nil {
		t.Fatalf("expected the primary error to propagate")
	}
}
