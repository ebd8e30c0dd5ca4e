// Package handler provides HTTP handlers for the post generation API.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hpn/hpn-postgen/internal/domain"
	"github.com/hpn/hpn-postgen/internal/security"
)

// PostGenerator produces a post for a request. *service.PostService implements it.
type PostGenerator interface {
	GeneratePost(ctx context.Context, req domain.GeneratePostRequest) (domain.GeneratedPost, error)
}

// ProviderInfo describes the configured provider without building it.
// *adapter.Selector implements it.
type ProviderInfo interface {
	ProviderName() string
	DefaultModel() string
}

// Error types returned in the "type" field of error responses.
const (
	ErrTypeInvalidRequest = "invalid_request_error"
	ErrTypeConfiguration  = "configuration_error"
	ErrTypeGeneration     = "generation_error"
	ErrTypeUpstream       = "upstream_error"
)

// PostHandler serves the post generation endpoints.
type PostHandler struct {
	posts    PostGenerator
	provider ProviderInfo
	logger   *slog.Logger
}

// PostHandlerOption is a functional option for configuring PostHandler.
type PostHandlerOption func(*PostHandler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) PostHandlerOption {
	return func(h *PostHandler) {
		h.logger = logger
	}
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts PostGenerator, provider ProviderInfo, opts ...PostHandlerOption) *PostHandler {
	h := &PostHandler{
		posts:    posts,
		provider: provider,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Register mounts the handler's routes on r.
func (h *PostHandler) Register(r gin.IRouter) {
	r.GET("/health", h.HandleHealth)
	r.POST("/api/generate-post", h.HandleGeneratePost)
}

// HandleGeneratePost handles POST /api/generate-post.
func (h *PostHandler) HandleGeneratePost(c *gin.Context) {
	var req domain.GeneratePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, ErrTypeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Requirements) == "" {
		h.sendError(c, http.StatusBadRequest, ErrTypeInvalidRequest, "requirements is required")
		return
	}

	post, err := h.posts.GeneratePost(c.Request.Context(), req)
	if err != nil {
		status, errType := classify(err)
		h.logger.Error("generate post request failed",
			slog.String("request_id", c.GetString(RequestIDKey)),
			slog.String("type", errType),
			slog.Any("error", err),
		)
		h.sendError(c, status, errType, err.Error())
		return
	}

	c.JSON(http.StatusOK, post)
}

// HandleHealth handles GET /health.
// It reports the configured provider without validating credentials.
func (h *PostHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"provider": h.provider.ProviderName(),
		"model":    h.provider.DefaultModel(),
	})
}

// classify maps an error's kind to an HTTP status and error type.
func classify(err error) (int, string) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, ErrTypeUpstream
	}

	switch domain.KindOf(err) {
	case domain.KindConfiguration:
		return http.StatusInternalServerError, ErrTypeConfiguration
	case domain.KindGeneration:
		return http.StatusBadGateway, ErrTypeGeneration
	default:
		return http.StatusBadGateway, ErrTypeUpstream
	}
}

// sendError writes an error body. Messages are redacted so upstream errors
// that echo credentials never reach the client.
func (h *PostHandler) sendError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"message": security.Redact(message),
			"type":    errType,
		},
	})
}
