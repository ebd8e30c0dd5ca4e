package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "op and cause",
			err:  &Error{Op: "text generation failed", Err: errors.New("boom")},
			want: "text generation failed: boom",
		},
		{
			name: "nil cause uses placeholder",
			err:  &Error{Op: "text generation failed"},
			want: "text generation failed: unknown error",
		},
		{
			name: "empty cause message uses placeholder",
			err:  &Error{Op: "post generation failed", Err: errors.New("")},
			want: "post generation failed: unknown error",
		},
		{
			name: "no op",
			err:  NewGenerationError("failed to generate text from OpenAI"),
			want: "failed to generate text from OpenAI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrap_KeepsKind(t *testing.T) {
	cfgErr := NewConfigurationError("openai api key is not configured")

	inner := Wrap("text generation failed", cfgErr)
	outer := Wrap("post generation failed", inner)

	assert.Equal(t, KindConfiguration, inner.Kind)
	assert.Equal(t, KindConfiguration, outer.Kind)
	assert.True(t, IsConfigurationError(outer))
	assert.ErrorIs(t, outer, cfgErr)
	assert.Equal(t, "post generation failed: text generation failed: openai api key is not configured", outer.Error())
}

func TestWrap_UntypedCauseIsUpstream(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")

	err := Wrap("text generation failed", cause)

	assert.Equal(t, KindUpstream, err.Kind)
	assert.False(t, IsGenerationError(err))
	assert.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUpstream, KindOf(errors.New("plain")))
	assert.Equal(t, KindGeneration, KindOf(fmt.Errorf("wrapped: %w", NewGenerationError("empty"))))
	assert.Equal(t, "configuration", KindConfiguration.String())
	assert.Equal(t, "generation", KindGeneration.String())
	assert.Equal(t, "upstream", KindUpstream.String())
}
