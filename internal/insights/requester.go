package insights

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"financas/internal/core"
)

const (
	NoInsightsMessage = "Não foi possível gerar insights no momento."
	ErrorMessage      = "Houve um erro ao consultar o assistente de IA. Tente novamente mais tarde."

	DefaultTimeout = 30 * time.Second
)

const promptTemplate = `Como um consultor financeiro especialista, analise estes dados de gastos e ganhos mensais de uma família:
%DATA%

Por favor, forneça:
1. Uma análise curta do perfil de gastos.
2. Três dicas práticas para economizar ou investir melhor com base nesses dados.
3. Uma mensagem de encorajamento.

Responda em Português do Brasil de forma amigável e concisa. Use formatação Markdown (negrito, listas).`

// Requester wraps a Generator with the ledger specific prompt and the
// user facing fallbacks. RequestInsights never returns an error.
type Requester struct {
	gen     Generator
	timeout time.Duration
	group   singleflight.Group
}

func NewRequester(gen Generator, timeout time.Duration) *Requester {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Requester{gen: gen, timeout: timeout}
}

// Aggregate sums amounts by "<type>_<category>".
func Aggregate(txs []core.Transaction) map[string]core.Money {
	out := make(map[string]core.Money)
	for _, tx := range txs {
		key := string(tx.Type) + "_" + string(tx.Category)
		out[key] = out[key].Add(tx.Amount)
	}
	return out
}

// BuildPrompt embeds the aggregate as JSON. Map keys are marshaled in
// sorted order so equal aggregates give equal prompts.
func BuildPrompt(aggregate map[string]core.Money) (string, error) {
	data, err := json.Marshal(aggregate)
	if err != nil {
		return "", err
	}
	return strings.Replace(promptTemplate, "%DATA%", string(data), 1), nil
}

// RequestInsights returns the generated text, NoInsightsMessage when the
// model answered with nothing, or ErrorMessage on any failure. Concurrent
// callers share an outstanding request only when their prompts are equal.
func (r *Requester) RequestInsights(ctx context.Context, txs []core.Transaction) string {
	prompt, err := BuildPrompt(Aggregate(txs))
	if err != nil {
		slog.ErrorContext(ctx, "Failed to build insights prompt", "error", err)
		return ErrorMessage
	}

	key := sha256.Sum256([]byte(prompt))
	v, err, shared := r.group.Do(hex.EncodeToString(key[:]), func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()
		return r.gen.Generate(callCtx, prompt)
	})
	if err != nil {
		slog.ErrorContext(ctx, "Insights request failed", "error", err, "shared", shared)
		return ErrorMessage
	}

	text, _ := v.(string)
	if strings.TrimSpace(text) == "" {
		slog.WarnContext(ctx, "Insights request returned no text")
		return NoInsightsMessage
	}
	slog.InfoContext(ctx, "Insights generated", "length", len(text), "shared", shared)
	return text
}
