package service

import (
	"context"
	"strings"

	"paint-advisor-be/internal/constant"
	"paint-advisor-be/pkg/advisor/response"
	"paint-advisor-be/pkg/catalog"
	"paint-advisor-be/pkg/llm"
)

// llmWriter rewrites deterministic drafts through the configured LLM.
// It satisfies response.Writer; the enhancer on top of it enforces the
// no-fabrication check and the timeout.
type llmWriter struct {
	provider llm.LLMProvider
}

func NewLLMWriter(provider llm.LLMProvider) response.Writer {
	if provider == nil {
		return nil
	}
	return &llmWriter{provider: provider}
}

func (w *llmWriter) Rewrite(ctx context.Context, draft string, products []catalog.ProductRef) (string, error) {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	var userPrompt strings.Builder
	userPrompt.WriteString("DRAFT REPLY:\n")
	userPrompt.WriteString(draft)
	if len(names) > 0 {
		userPrompt.WriteString("\n\nPRODUCT NAMES THAT MUST APPEAR VERBATIM:\n")
		userPrompt.WriteString(strings.Join(names, "\n"))
	}

	out, err := w.provider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.WriterSystemPromptV1},
		{Role: constant.ChatMessageRoleUser, Content: userPrompt.String()},
	}, llm.WithTemperature(0.6))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
