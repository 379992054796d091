package dapr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"go.uber.org/zap"
)

// ConversationInput is one turn of a conversation request. Content is a convenience
// for a plain-text turn; Parts carries an ordered, mixed sequence of text/tool-call/
// tool-result content for turns that need it (spec.md §3 ContentPart). When Parts is
// non-empty it is used as-is; otherwise Content (if set) is wired as a single text
// part.
type ConversationInput struct {
	Content  string
	Role     string
	Parts    []ContentPart
	ScrubPII bool
}

// ContentPart is one piece of a ConversationInput's content. Exactly one of Text,
// ToolCall, or ToolResult should be set.
type ContentPart struct {
	Text       string
	ToolCall   *ToolCallContent
	ToolResult *ToolResultContent
}

// ToolCallContent is a tool invocation carried on an assistant turn.
type ToolCallContent struct {
	Id            string
	Name          string
	ArgumentsJSON string
}

// ToolResultContent is the result of a tool invocation, linked back to the call that
// requested it via ToolCallId.
type ToolResultContent struct {
	ToolCallId string
	Name       string
	Content    string
	IsError    bool
}

// parts resolves the effective content parts for a ConversationInput: Parts if set,
// otherwise a single text part built from Content.
func (in ConversationInput) parts() []ContentPart {
	if len(in.Parts) > 0 {
		return in.Parts
	}
	if in.Content != "" {
		return []ContentPart{{Text: in.Content}}
	}
	return nil
}

// ConversationToolFunction describes a callable function tool.
type ConversationToolFunction struct {
	Name        string
	Description string
	Parameters  []byte // raw JSON schema
}

// ConversationTool wraps a function tool the model may call.
type ConversationTool struct {
	Function ConversationToolFunction
}

// ConversationToolCall is a single tool invocation requested by the model.
type ConversationToolCall struct {
	Id        string
	Name      string
	Arguments string // raw JSON
}

// ConversationChoice is one of the model's result choices.
type ConversationChoice struct {
	FinishReason string
	Index        int64
	Content      string
	ToolCalls    []ConversationToolCall
}

// ConversationResponse is the result of a single-shot Converse call.
type ConversationResponse struct {
	ContextID string
	Choices   []ConversationChoice
}

// ConversationUsage reports token accounting for a conversation turn; the streaming
// API only populates it on the final chunk.
type ConversationUsage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// ConversationStreamChunk is one chunk of a ConverseStream response.
type ConversationStreamChunk struct {
	ContextID     string
	ChoiceIndex   int64
	ContentDelta  string
	ToolCallDelta *ConversationToolCall
	FinishReason  string
	Usage         *ConversationUsage
}

// ConvertParameterValue wraps a raw Go value into the tagged-union wire shape the
// sidecar expects for component parameters, mirroring original_source's
// convert_parameter_value: bool is checked ahead of the integer types (a plain Go
// bool never satisfies an int type switch case, but the ordering is preserved here
// to keep the two implementations readable side by side), ints are range-split
// between Int32Value and Int64Value, and an already-wrapped *ConversationParameter
// or *AnyValue passes through untouched.
func ConvertParameterValue(value interface{}) (*runtimev1.ConversationParameter, error) {
	switch v := value.(type) {
	case *runtimev1.ConversationParameter:
		return v, nil
	case *runtimev1.AnyValue:
		return &runtimev1.ConversationParameter{AnyValue: v}, nil
	case bool:
		return &runtimev1.ConversationParameter{BoolValue: &v}, nil
	case int:
		return int64ParameterValue(int64(v))
	case int32:
		vv := v
		return &runtimev1.ConversationParameter{Int32Value: &vv}, nil
	case int64:
		return int64ParameterValue(v)
	case float32:
		vv := float64(v)
		return &runtimev1.ConversationParameter{DoubleValue: &vv}, nil
	case float64:
		vv := v
		return &runtimev1.ConversationParameter{DoubleValue: &vv}, nil
	case string:
		vv := v
		return &runtimev1.ConversationParameter{StringValue: &vv}, nil
	case []byte:
		return &runtimev1.ConversationParameter{BytesValue: v}, nil
	default:
		return nil, fmt.Errorf("dapr: unsupported parameter type %T (supported: bool, int, int32, int64, float32, float64, string, []byte)", value)
	}
}

// int64ParameterValue range-splits a raw int64 the same way original_source does:
// values that fit in an int32 are sent as Int32Value, everything else as Int64Value.
func int64ParameterValue(v int64) (*runtimev1.ConversationParameter, error) {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		vv := int32(v)
		return &runtimev1.ConversationParameter{Int32Value: &vv}, nil
	}
	return &runtimev1.ConversationParameter{Int64Value: &v}, nil
}

// ConvertParameters wraps a map of raw Go values into wire-shaped component
// parameters.
func ConvertParameters(parameters map[string]interface{}) (map[string]*runtimev1.ConversationParameter, error) {
	if len(parameters) == 0 {
		return nil, nil
	}
	out := make(map[string]*runtimev1.ConversationParameter, len(parameters))
	for key, value := range parameters {
		converted, err := ConvertParameterValue(value)
		if err != nil {
			return nil, fmt.Errorf("dapr: parameter %q: %w", key, err)
		}
		out[key] = converted
	}
	return out, nil
}

func wireContentParts(parts []ContentPart) []*runtimev1.ContentPart {
	if len(parts) == 0 {
		return nil
	}
	wire := make([]*runtimev1.ContentPart, len(parts))
	for i, p := range parts {
		wp := &runtimev1.ContentPart{Text: p.Text}
		if p.ToolCall != nil {
			wp.ToolCall = &runtimev1.ToolCallPart{
				Id:        p.ToolCall.Id,
				Name:      p.ToolCall.Name,
				Arguments: p.ToolCall.ArgumentsJSON,
			}
		}
		if p.ToolResult != nil {
			wp.ToolResult = &runtimev1.ToolResultPart{
				ToolCallId: p.ToolResult.ToolCallId,
				Name:       p.ToolResult.Name,
				Content:    p.ToolResult.Content,
				IsError:    p.ToolResult.IsError,
			}
		}
		wire[i] = wp
	}
	return wire
}

func wireConversationInputs(inputs []ConversationInput) []*runtimev1.ConversationInput {
	wire := make([]*runtimev1.ConversationInput, len(inputs))
	for i, in := range inputs {
		wire[i] = &runtimev1.ConversationInput{Role: in.Role, ScrubPII: in.ScrubPII, Parts: wireContentParts(in.parts())}
	}
	return wire
}

func wireConversationTools(tools []ConversationTool) []*runtimev1.ConversationTool {
	if len(tools) == 0 {
		return nil
	}
	wire := make([]*runtimev1.ConversationTool, len(tools))
	for i, t := range tools {
		wire[i] = &runtimev1.ConversationTool{Function: &runtimev1.ConversationToolFunction{
			Name:        t.Function.Name,
			Description: t.Function.Description,
			Parameters:  t.Function.Parameters,
		}}
	}
	return wire
}

func conversationChoicesFromWire(outputs []*runtimev1.ConversationResultChoice) []ConversationChoice {
	choices := make([]ConversationChoice, len(outputs))
	for i, out := range outputs {
		choice := ConversationChoice{FinishReason: out.FinishReason, Index: out.Index}
		if out.Message != nil {
			choice.Content = out.Message.Content
			choice.ToolCalls = make([]ConversationToolCall, len(out.Message.ToolCalls))
			for j, call := range out.Message.ToolCalls {
				choice.ToolCalls[j] = ConversationToolCall{Id: call.Id}
				if call.Function != nil {
					choice.ToolCalls[j].Name = call.Function.Name
					choice.ToolCalls[j].Arguments = call.Function.Arguments
				}
			}
		}
		choices[i] = choice
	}
	return choices
}

// ConversationOptions configures a single Converse/ConverseStream call.
type ConversationOptions struct {
	ContextID   string
	ScrubPII    bool
	Temperature float64
	Tools       []ConversationTool
	ToolChoice  string
	Parameters  map[string]interface{}
	Metadata    map[string]string
}

// Converse issues a single-shot conversation request against a configured LLM
// component.
func (c *Client) Converse(ctx context.Context, name string, inputs []ConversationInput, opts ConversationOptions) (*ConversationResponse, error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()

	params, err := ConvertParameters(opts.Parameters)
	if err != nil {
		return nil, err
	}

	resp, err := c.api.ConverseAlpha1(ctx, &runtimev1.ConversationRequestAlpha1{
		Name:        name,
		ContextID:   opts.ContextID,
		Inputs:      wireConversationInputs(inputs),
		ScrubPII:    opts.ScrubPII,
		Temperature: opts.Temperature,
		Tools:       wireConversationTools(opts.Tools),
		ToolChoice:  opts.ToolChoice,
		Parameters:  params,
		Metadata:    opts.Metadata,
	}, c.copts...)
	if err != nil {
		return nil, AsSidecarError(err)
	}

	return &ConversationResponse{ContextID: resp.ContextID, Choices: conversationChoicesFromWire(resp.Outputs)}, nil
}

// ConverseStream opens a streaming conversation request and returns a channel of
// incremental chunks; the final chunk on each choice carries Usage. The channel is
// closed when the sidecar ends the stream or ctx is done.
func (c *Client) ConverseStream(ctx context.Context, name string, inputs []ConversationInput, opts ConversationOptions) (<-chan *ConversationStreamChunk, error) {
	params, err := ConvertParameters(opts.Parameters)
	if err != nil {
		return nil, err
	}

	strm, err := c.api.ConverseStreamAlpha2(ctx, &runtimev1.ConversationRequestAlpha2{
		Name:        name,
		ContextID:   opts.ContextID,
		Inputs:      wireConversationInputs(inputs),
		ScrubPII:    opts.ScrubPII,
		Temperature: opts.Temperature,
		Tools:       wireConversationTools(opts.Tools),
		ToolChoice:  opts.ToolChoice,
		Parameters:  params,
		Metadata:    opts.Metadata,
	}, c.copts...)
	if err != nil {
		return nil, AsSidecarError(err)
	}

	chunks := make(chan *ConversationStreamChunk, BufferSize)
	go func() {
		defer close(chunks)
		for {
			msg, err := strm.Recv()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					c.logger.Debug("conversation stream ended", zap.Error(err))
				}
				return
			}

			chunk := &ConversationStreamChunk{
				ContextID:    msg.ContextID,
				ChoiceIndex:  msg.ChoiceIndex,
				ContentDelta: msg.ContentDelta,
				FinishReason: msg.FinishReason,
			}
			if msg.ToolCallDelta != nil {
				call := ConversationToolCall{Id: msg.ToolCallDelta.Id}
				if msg.ToolCallDelta.Function != nil {
					call.Name = msg.ToolCallDelta.Function.Name
					call.Arguments = msg.ToolCallDelta.Function.Arguments
				}
				chunk.ToolCallDelta = &call
			}
			if msg.Usage != nil {
				chunk.Usage = &ConversationUsage{
					PromptTokens:     msg.Usage.PromptTokens,
					CompletionTokens: msg.Usage.CompletionTokens,
					TotalTokens:      msg.Usage.TotalTokens,
				}
			}

			select {
			case chunks <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()

	return chunks, nil
}

// conversationTurn is one user/assistant/tool exchange accumulated by a
// ConversationHistoryBuilder.
type conversationTurn struct {
	userMessage      string
	assistantMessage string
	hasAssistant     bool
	toolCalls        []ConversationToolCall
	toolResults      []string
}

// ConversationHistoryBuilder assembles the accumulated multi-turn history
// (user -> assistant(+tool calls) -> tool result(s) -> user follow-up) into the
// ordered []ConversationInput a Converse/ConverseStream call expects.
type ConversationHistoryBuilder struct {
	turns   []conversationTurn
	current *conversationTurn
}

// NewConversationHistoryBuilder returns an empty history builder.
func NewConversationHistoryBuilder() *ConversationHistoryBuilder {
	return &ConversationHistoryBuilder{}
}

// AddUserMessage starts a new turn, finalizing the previous one if it already has an
// assistant reply.
func (b *ConversationHistoryBuilder) AddUserMessage(content string) *ConversationHistoryBuilder {
	if b.current != nil && b.current.hasAssistant {
		b.turns = append(b.turns, *b.current)
		b.current = nil
	}
	if b.current == nil {
		b.current = &conversationTurn{}
	}
	b.current.userMessage = content
	return b
}

// AddAssistantMessage records the model's reply (and any tool calls it made) against
// the current turn.
func (b *ConversationHistoryBuilder) AddAssistantMessage(content string, toolCalls []ConversationToolCall) *ConversationHistoryBuilder {
	if b.current == nil {
		panic("dapr: AddAssistantMessage called with no active turn; call AddUserMessage first")
	}
	b.current.assistantMessage = content
	b.current.hasAssistant = true
	b.current.toolCalls = toolCalls
	return b
}

// AddToolResults records the results of the tool calls the assistant requested in
// the current turn.
func (b *ConversationHistoryBuilder) AddToolResults(results []string) *ConversationHistoryBuilder {
	if b.current == nil {
		panic("dapr: AddToolResults called with no active turn; call AddUserMessage first")
	}
	b.current.toolResults = results
	return b
}

// Build assembles the full history, including the in-progress turn, into the
// ordered ConversationInput slice a Converse/ConverseStream call expects.
func (b *ConversationHistoryBuilder) Build() []ConversationInput {
	var inputs []ConversationInput
	emit := func(turn conversationTurn, includeAssistant bool) {
		inputs = append(inputs, ConversationInput{Role: "user", Content: turn.userMessage})
		if !includeAssistant || !turn.hasAssistant {
			return
		}

		assistantParts := []ContentPart{{Text: turn.assistantMessage}}
		for _, call := range turn.toolCalls {
			assistantParts = append(assistantParts, ContentPart{
				ToolCall: &ToolCallContent{Id: call.Id, Name: call.Name, ArgumentsJSON: call.Arguments},
			})
		}
		inputs = append(inputs, ConversationInput{Role: "assistant", Parts: assistantParts})

		for i, result := range turn.toolResults {
			toolResult := &ToolResultContent{Content: result}
			if i < len(turn.toolCalls) {
				toolResult.ToolCallId = turn.toolCalls[i].Id
				toolResult.Name = turn.toolCalls[i].Name
			}
			inputs = append(inputs, ConversationInput{Role: "tool", Parts: []ContentPart{{ToolResult: toolResult}}})
		}
	}

	for _, turn := range b.turns {
		emit(turn, true)
	}
	if b.current != nil {
		emit(*b.current, true)
	}
	return inputs
}
