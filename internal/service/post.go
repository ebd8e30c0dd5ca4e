// Package service composes provider selection and prompt building into the
// operations exposed to HTTP handlers.
package service

import (
	"context"
	"log/slog"

	"github.com/hpn/hpn-postgen/internal/domain"
	"github.com/hpn/hpn-postgen/internal/prompt"
)

// PostMaxTokens is the completion cap for social-media posts.
const PostMaxTokens = 4000

// PostService generates social-media posts.
type PostService struct {
	completions *CompletionService
	logger      *slog.Logger
}

// PostServiceOption is a functional option for configuring PostService.
type PostServiceOption func(*PostService)

// WithPostLogger sets a custom logger.
func WithPostLogger(logger *slog.Logger) PostServiceOption {
	return func(s *PostService) {
		s.logger = logger
	}
}

// NewPostService creates a new PostService.
func NewPostService(completions *CompletionService, opts ...PostServiceOption) *PostService {
	s := &PostService{
		completions: completions,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GeneratePost writes a post for req.Requirements in the style of req.ReferencePosts.
func (s *PostService) GeneratePost(ctx context.Context, req domain.GeneratePostRequest) (domain.GeneratedPost, error) {
	systemPrompt := prompt.BuildSystemPrompt(req.ReferencePosts)
	userPrompt := prompt.BuildUserPrompt(req.Requirements)

	text, err := s.completions.GenerateText(ctx, systemPrompt, userPrompt,
		WithModel(s.completions.DefaultModel()),
		WithMaxTokens(PostMaxTokens),
	)
	if err != nil {
		s.logger.Error("generate post error",
			slog.String("error", err.Error()),
			slog.Int("reference_posts", len(req.ReferencePosts)),
		)
		return domain.GeneratedPost{}, domain.Wrap("post generation failed", err)
	}

	return domain.GeneratedPost{Post: text}, nil
}
