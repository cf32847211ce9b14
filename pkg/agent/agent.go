package agent

import (
	"context"

	"ai-companion-be/pkg/artifact"
)

// Turn is one prior exchange in the conversation, in model terms.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// Result is what the agent hands back for one assistant turn. Workflow is
// one of {conversation, image, audio}; exactly one artifact field is set when
// the workflow calls for it.
type Result struct {
	Text      string
	Workflow  string
	Audio     *artifact.Audio // set when Workflow == audio
	ImagePath string          // set when Workflow == image
}

// Agent decides the response modality for a user message and produces the
// reply plus any generated artifact. The decision policy belongs entirely to
// the agent; callers only consume the tagged result.
type Agent interface {
	Respond(ctx context.Context, sessionId string, history []Turn, input string) (*Result, error)
}
