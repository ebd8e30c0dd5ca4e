// Package prompt assembles the system and user prompts sent to the model.
// Every function here is pure.
package prompt

import (
	"fmt"
	"strings"
)

// BaseSystemPrompt is the instruction used when no reference posts are given.
const BaseSystemPrompt = "Generate a post based on the requirements, adopting the format of the reference posts below."

// UserPromptPrefix precedes the caller's requirements in the user prompt.
const UserPromptPrefix = "Generate a post based on the following requirements:"

// BuildSystemPrompt returns the system prompt, listing each reference post as
// a quoted, 1-indexed example. Nil and empty input both yield BaseSystemPrompt.
func BuildSystemPrompt(referencePosts []string) string {
	if len(referencePosts) == 0 {
		return BaseSystemPrompt
	}

	var b strings.Builder
	b.WriteString(BaseSystemPrompt)
	b.WriteString("\n\nReference posts:\n")
	for i, post := range referencePosts {
		fmt.Fprintf(&b, "\nexample %d: \"%s\"\n", i+1, post)
	}

	return b.String()
}

// BuildUserPrompt embeds requirements verbatim after UserPromptPrefix.
func BuildUserPrompt(requirements string) string {
	return UserPromptPrefix + "\n\n" + requirements
}
