// Package assistant wraps the external text-generation service. The
// boundary never returns errors: misconfiguration and transport failures
// are downgraded to Italian fallback strings so the chat always has
// something to render.
package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/assoimpresa360/client-portal/internal/api/metrics"
)

const defaultModel = "gemini-3-flash-preview"

// User-facing fallback strings. These are returned as normal replies, never
// as errors, and must stay byte-for-byte stable: the UI and the tests key
// on them.
const (
	ReplyUnavailable = "Mi dispiace, il servizio di assistenza non è momentaneamente disponibile (API Key mancante)."
	ReplyError       = "Si è verificato un errore nel comunicare con l'assistente."
	ReplyEmpty       = "Mi dispiace, non ho potuto elaborare una risposta."
)

const systemInstruction = `Sei l'assistente virtuale dello studio 'Assoimpresa360'.
Il tuo compito è aiutare i clienti a capire concetti base di contabilità o rispondere a domande generiche.
Il cliente attuale è: %s.
Sii professionale, cortese e conciso. Rispondi sempre in italiano.
Non dare consigli legali o finanziari vincolanti, rimanda sempre al contatto diretto con lo studio per questioni delicate.`

// Gateway forwards single-turn prompts to the Gemini API. A gateway built
// without an API key is valid and answers every request with
// ReplyUnavailable.
type Gateway struct {
	client *genai.Client
	model  string
	log    zerolog.Logger
}

// Config carries the generation service settings.
type Config struct {
	APIKey string
	Model  string
}

// NewGateway builds the gateway. With an empty APIKey no client is created
// and the gateway serves the unavailable fallback; a client construction
// failure is treated the same way rather than blocking startup.
func NewGateway(ctx context.Context, cfg Config, log zerolog.Logger) *Gateway {
	g := &Gateway{model: cfg.Model, log: log}
	if g.model == "" {
		g.model = defaultModel
	}
	if cfg.APIKey == "" {
		log.Warn().Msg("assistant API key missing, serving fallback replies")
		return g
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		log.Error().Err(err).Msg("assistant client init failed, serving fallback replies")
		return g
	}
	g.client = client
	return g
}

// Generate submits the user message with the studio persona instruction and
// returns the reply text. Only the latest message is sent; prior turns are
// never resent. The clientContext string (name and company) is interpolated
// into the system instruction.
func (g *Gateway) Generate(ctx context.Context, userMessage, clientContext string) string {
	if g.client == nil {
		metrics.AssistantRequestsTotal.WithLabelValues("unconfigured").Inc()
		return ReplyUnavailable
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(userMessage),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(fmt.Sprintf(systemInstruction, clientContext), genai.RoleUser),
		},
	)
	if err != nil {
		g.log.Error().Err(err).Str("model", g.model).Msg("assistant generation failed")
		metrics.AssistantRequestsTotal.WithLabelValues("error").Inc()
		metrics.AssistantRequestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return ReplyError
	}

	text := resp.Text()
	if text == "" {
		metrics.AssistantRequestsTotal.WithLabelValues("empty").Inc()
		metrics.AssistantRequestDuration.WithLabelValues("empty").Observe(time.Since(start).Seconds())
		return ReplyEmpty
	}

	metrics.AssistantRequestsTotal.WithLabelValues("ok").Inc()
	metrics.AssistantRequestDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	return text
}
