package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// profanityGate adapts a ports.ProfanityClient to kernel.ProfanityChecker for a single
// command. A failing client counts as profane; the failure is kept in err so the
// handler can report it instead of a validation error.
type profanityGate struct {
	ctx    context.Context //nolint:containedctx // scoped to one Handle call
	client ports.ProfanityClient
	err    error
}

func newProfanityGate(ctx context.Context, client ports.ProfanityClient) *profanityGate {
	return &profanityGate{ctx: ctx, client: client}
}

func (g *profanityGate) ContainsProfanity(text string) bool {
	profane, err := g.client.ContainsProfanity(g.ctx, text)
	if err != nil {
		g.err = err
		return true
	}
	return profane
}
