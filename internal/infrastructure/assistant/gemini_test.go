package assistant

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestGateway_NoAPIKey(t *testing.T) {
	// No key, no client, no network: every request gets the unavailable
	// fallback as a normal reply.
	g := NewGateway(context.Background(), Config{}, zerolog.Nop())

	reply := g.Generate(context.Background(), "Dove trovo le fatture?", "Cliente: Mario Rossi, Azienda: Rossi SRL")
	if reply != ReplyUnavailable {
		t.Fatalf("expected the unavailable fallback, got %q", reply)
	}
}

func TestGateway_DefaultModel(t *testing.T) {
	g := NewGateway(context.Background(), Config{}, zerolog.Nop())
	if g.model != defaultModel {
		t.Fatalf("expected default model %q, got %q", defaultModel, g.model)
	}

	g = NewGateway(context.Background(), Config{Model: "gemini-other"}, zerolog.Nop())
	if g.model != "gemini-other" {
		t.Fatalf("configured model not kept, got %q", g.model)
	}
}
