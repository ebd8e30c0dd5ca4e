// Package domain contains the core business entities and value objects.
package domain

// Role is the author of a chat message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is a single role-tagged chat turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is built fresh for every call to a provider and never persisted.
type CompletionRequest struct {
	// Model is the model identifier. Azure routes by deployment name instead.
	Model string `json:"model"`

	// Messages is the ordered conversation sent to the model.
	Messages []Message `json:"messages"`

	// MaxTokens caps the completion length.
	MaxTokens int `json:"max_tokens"`

	// Temperature controls randomness.
	Temperature float64 `json:"temperature"`
}

// GeneratePostRequest is the input of the post generation operation.
type GeneratePostRequest struct {
	// Requirements is the free-text description of the post to write.
	Requirements string `json:"requirements" binding:"required"`

	// ReferencePosts are optional examples whose style the output should follow.
	ReferencePosts []string `json:"referencePosts,omitempty"`
}

// GeneratedPost is returned to the caller and never stored.
type GeneratedPost struct {
	Post string `json:"post"`
}
