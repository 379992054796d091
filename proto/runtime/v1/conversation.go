package v1

// ConversationInput is one turn of a conversation request: a role-tagged, ordered
// list of content parts plus an optional scrub flag asking the component to redact
// the content in logs/traces. Parts lets a single turn carry plain text, a tool call
// the assistant made, and/or a tool result answering one, instead of forcing every
// turn to be flat text (spec.md §3 ContentPart).
type ConversationInput struct {
	message
	Parts          []*ContentPart
	Role           string
	ScrubPII       bool
}

// ContentPart is one piece of a ConversationInput's content. Exactly one of Text,
// ToolCall, or ToolResult is populated.
type ContentPart struct {
	message
	Text       string
	ToolCall   *ToolCallPart
	ToolResult *ToolResultPart
}

// ToolCallPart is a tool invocation carried on an assistant turn.
type ToolCallPart struct {
	message
	Id        string
	Name      string
	Arguments string // raw JSON
}

// ToolResultPart is the result of a tool invocation, linked back to the call that
// requested it via ToolCallId.
type ToolResultPart struct {
	message
	ToolCallId string
	Name       string
	Content    string
	IsError    bool
}

// ConversationRequestAlpha1 is the single-shot (non-streaming) conversation call.
type ConversationRequestAlpha1 struct {
	message
	Name           string
	ContextID      string
	Inputs         []*ConversationInput
	ScrubPII       bool
	Temperature    float64
	Tools          []*ConversationTool
	ToolChoice     string
	Parameters     map[string]*ConversationParameter
	Metadata       map[string]string
}

// ConversationParameter is the tagged-union wire shape used to pass arbitrary,
// dynamically-typed component parameters (original_source/_helpers.py
// convert_parameter_value): exactly one of the typed fields is set.
type ConversationParameter struct {
	message
	BoolValue   *bool
	Int32Value  *int32
	Int64Value  *int64
	DoubleValue *float64
	StringValue *string
	BytesValue  []byte
	AnyValue    *AnyValue
}

// AnyValue carries an already-wrapped google.protobuf.Any-shaped parameter through
// untouched, for callers that pass one in directly rather than a raw Go value.
type AnyValue struct {
	message
	TypeUrl string
	Value   []byte
}

// ConversationToolFunction describes a callable function tool in the shape OpenAI's
// function-calling and Dapr's conversation API share.
type ConversationToolFunction struct {
	message
	Name        string
	Description string
	Parameters  []byte // raw JSON schema
}

type ConversationTool struct {
	message
	Function *ConversationToolFunction
}

// ConversationToolCallRequest is a single tool invocation requested by the model.
type ConversationToolCallRequest struct {
	message
	Id        string
	Function  *ConversationToolCallFunction
}

type ConversationToolCallFunction struct {
	message
	Name      string
	Arguments string // raw JSON
}

type ConversationResultChoice struct {
	message
	FinishReason string
	Index        int64
	Message      *ConversationResultMessage
}

type ConversationResultMessage struct {
	message
	Content   string
	ToolCalls []*ConversationToolCallRequest
}

type ConversationResponseAlpha1 struct {
	message
	ContextID string
	Outputs   []*ConversationResultChoice
}

// ConversationRequestAlpha2 is the streaming conversation call; it carries no
// streaming toggle of its own, chunked delivery follows from the server-streaming RPC.
type ConversationRequestAlpha2 struct {
	message
	Name        string
	ContextID   string
	Inputs      []*ConversationInput
	ScrubPII    bool
	Temperature float64
	Tools       []*ConversationTool
	ToolChoice  string
	Parameters  map[string]*ConversationParameter
	Metadata    map[string]string
}

// ConversationStreamChunkAlpha2 is one chunk on the Alpha2 streaming response; Usage
// is populated only on the final chunk (spec.md §6: "final chunk carries usage").
type ConversationStreamChunkAlpha2 struct {
	message
	ContextID    string
	ChoiceIndex  int64
	ContentDelta string
	ToolCallDelta *ConversationToolCallRequest
	FinishReason string
	Usage        *ConversationUsage
}

type ConversationUsage struct {
	message
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}
