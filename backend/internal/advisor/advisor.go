package advisor

import (
	"context"
	"fmt"
	"strings"

	"sahayak/backend/internal/knowledge"
	"github.com/sashabaranov/go-openai"
	"sahayak/backend/pkg/errors"
	"sahayak/backend/pkg/logger"
	"go.uber.org/zap"
)

// Advisor turns knowledge graph context into user-facing answers with source
// citations. When no LLM is configured it falls back to a rule-based answer
// built directly from the context block.
type Advisor struct {
	client *openai.Client
	model  string
	kg     *knowledge.Service
	logger *zap.Logger
}

// Answer is the response contract of the advisor
type Answer struct {
	Text        string            `json:"answer"`
	Sources     []string          `json:"sources"`
	ContextUsed bool              `json:"context_used"`
	Metrics     knowledge.Metrics `json:"graph_stats"`
}

// New creates an advisor. baseURL and apiKey may be empty, in which case
// every answer uses the rule-based fallback.
func New(baseURL, apiKey, model string, kg *knowledge.Service) *Advisor {
	a := &Advisor{model: model, kg: kg, logger: logger.Get()}

	if apiKey != "" || baseURL != "" {
		if apiKey == "" {
			// Proxies like LiteLLM accept any key
			apiKey = "dummy-key"
		}
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = strings.TrimSuffix(baseURL, "/") + "/v1"
		}
		a.client = openai.NewClientWithConfig(cfg)
	}
	return a
}

// Chat answers a free-text question using graph context and the LLM when
// available. It never returns an error for LLM failures; those degrade to
// the rule-based fallback.
func (a *Advisor) Chat(ctx context.Context, query string) (*Answer, error) {
	g, err := a.kg.Graph()
	if err != nil {
		return nil, err
	}

	kgCtx := g.BuildContext(query)

	if a.client != nil && kgCtx.Text != "" {
		answer, err := a.generate(ctx, query, kgCtx)
		if err == nil {
			return answer, nil
		}
		a.logger.Warn("LLM call failed, using rule-based fallback", zap.Error(err))
	}

	if kgCtx.Text != "" {
		return &Answer{
			Text:        fallbackAnswer(kgCtx),
			Sources:     kgCtx.Sources,
			ContextUsed: true,
			Metrics:     kgCtx.Metrics,
		}, nil
	}

	return &Answer{
		Text:    noMatchAnswer,
		Sources: []string{},
		Metrics: knowledge.Metrics{Method: "no_match"},
	}, nil
}

func (a *Advisor) generate(ctx context.Context, query string, kgCtx knowledge.Context) (*Answer, error) {
	if a.client == nil {
		return nil, errors.ErrLLMUnavailable
	}

	prompt := fmt.Sprintf(`You are Sahayak, an AI assistant helping Indian startup founders with funding advice.
You have access to a knowledge graph connecting investors, government schemes, opportunities and locations.

The following context was retrieved by graph traversal:
- Method used: %s
- Entities found: %d
- Relationships traversed: %d

CONTEXT DATA:
%s

USER QUESTION: %s

INSTRUCTIONS:
1. Provide a helpful, specific answer based on the context
2. ALWAYS cite your sources in the format [Source: Document Name, Page X]
3. If the user asked about a city, mention that parent regions were also checked
4. Suggest next steps when appropriate
5. If the data does not contain relevant information, say so honestly

Answer in a conversational but professional tone:`,
		kgCtx.Metrics.Method, kgCtx.Metrics.EntitiesFound, kgCtx.Metrics.RelationshipsTraversed,
		kgCtx.Text, query)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, errors.NewBaseError(errors.ErrorTypeLLM, "chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.NewBaseError(errors.ErrorTypeLLM, "chat completion returned no choices", nil)
	}

	text := resp.Choices[0].Message.Content
	if len(kgCtx.Sources) > 0 && !strings.Contains(text, "[Source:") {
		text += "\n\nSources: " + formatSources(kgCtx.Sources)
	}

	return &Answer{
		Text:        text,
		Sources:     kgCtx.Sources,
		ContextUsed: true,
		Metrics:     kgCtx.Metrics,
	}, nil
}

func fallbackAnswer(kgCtx knowledge.Context) string {
	var b strings.Builder
	b.WriteString("Based on our knowledge graph, here's what I found:\n\n")
	b.WriteString(kgCtx.Text)
	b.WriteString("\n\nNote: this is a direct knowledge graph lookup. Configure an LLM endpoint for personalised insights.")
	if len(kgCtx.Sources) > 0 {
		b.WriteString("\n\nSources: " + formatSources(kgCtx.Sources))
	}
	return b.String()
}

const noMatchAnswer = `I couldn't find specific information about that in our knowledge graph. Try asking about:

- Investors, e.g. "Find investors in Jaipur" or "Who invests in AgriTech?"
- Schemes, e.g. "What grants are available in Tamil Nadu?"
- Opportunities, e.g. "List active hackathons"`

func formatSources(sources []string) string {
	limit := len(sources)
	if limit > 3 {
		limit = 3
	}
	cited := make([]string, 0, limit)
	for _, s := range sources[:limit] {
		cited = append(cited, "["+s+"]")
	}
	return strings.Join(cited, ", ")
}
