// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"context"
	"strings"

	"github.com/hpn/hpn-postgen/internal/domain"
	"github.com/sashabaranov/go-openai"
)

// createCompletion is shared by both variants. model is the identifier put on
// the wire; vendor names the backend in error messages.
func createCompletion(ctx context.Context, client ChatClient, vendor, model string, req domain.CompletionRequest) (string, error) {
	resp, err := client.CreateChatCompletion(ctx, toChatRequest(model, req))
	if err != nil {
		return "", &domain.Error{Kind: domain.KindUpstream, Op: vendor + " chat completion", Err: err}
	}

	content := firstChoiceContent(resp)
	if content == "" {
		return "", domain.NewGenerationError("failed to generate text from " + vendor)
	}

	return strings.TrimSpace(content), nil
}

// toChatRequest maps a domain request onto the SDK request type.
func toChatRequest(model string, req domain.CompletionRequest) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	return openai.ChatCompletionRequest{
		Model:               model,
		Messages:            messages,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
}

func firstChoiceContent(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return resp.Choices[0].Message.Content
}
