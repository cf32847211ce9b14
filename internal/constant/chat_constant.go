package constant

const (
	MessageSenderUser      = "user"
	MessageSenderAssistant = "assistant"

	// Primary modality of a message. "pdf" is carried through storage for
	// document attachments even though no workflow currently produces it.
	ContentTypeConversation = "conversation"
	ContentTypeAudio        = "audio"
	ContentTypeImage        = "image"
	ContentTypePdf          = "pdf"

	// Workflows the agent can pick for an assistant turn.
	WorkflowConversation = "conversation"
	WorkflowImage        = "image"
	WorkflowAudio        = "audio"

	DefaultSessionTitle = "New Chat"

	// Max title length derived from the first user message, in runes.
	SessionTitleMaxLen = 30

	ImageCaptionPrompt = "Please describe what you see in this image in the context of our conversation."
)
