package dapr_test

import (
	"context"
	"testing"
	"time"

	dapr "github.com/rotationalio/dapr-go"
	"github.com/rotationalio/dapr-go/mock"
	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
	"github.com/stretchr/testify/require"
)

func TestConvertParameterValue(t *testing.T) {
	require := require.New(t)

	boolParam, err := dapr.ConvertParameterValue(true)
	require.NoError(err)
	require.NotNil(boolParam.BoolValue)
	require.True(*boolParam.BoolValue)

	smallIntParam, err := dapr.ConvertParameterValue(42)
	require.NoError(err)
	require.NotNil(smallIntParam.Int32Value)
	require.Equal(int32(42), *smallIntParam.Int32Value)

	bigIntParam, err := dapr.ConvertParameterValue(int64(1) << 40)
	require.NoError(err)
	require.Nil(bigIntParam.Int32Value)
	require.NotNil(bigIntParam.Int64Value)
	require.Equal(int64(1)<<40, *bigIntParam.Int64Value)

	floatParam, err := dapr.ConvertParameterValue(3.14)
	require.NoError(err)
	require.NotNil(floatParam.DoubleValue)

	stringParam, err := dapr.ConvertParameterValue("hello")
	require.NoError(err)
	require.NotNil(stringParam.StringValue)
	require.Equal("hello", *stringParam.StringValue)

	bytesParam, err := dapr.ConvertParameterValue([]byte("raw"))
	require.NoError(err)
	require.Equal([]byte("raw"), bytesParam.BytesValue)

	_, err = dapr.ConvertParameterValue(struct{}{})
	require.Error(err)
}

func TestConverse(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnConverseAlpha1 = func(_ context.Context, in *runtimev1.ConversationRequestAlpha1) (*runtimev1.ConversationResponseAlpha1, error) {
		require.Equal("openai", in.Name)
		require.Len(in.Inputs, 1)
		require.Len(in.Inputs[0].Parts, 1)
		require.Equal("hello", in.Inputs[0].Parts[0].Text)
		return &runtimev1.ConversationResponseAlpha1{
			ContextID: "ctx-1",
			Outputs: []*runtimev1.ConversationResultChoice{
				{FinishReason: "stop", Message: &runtimev1.ConversationResultMessage{Content: "hi there"}},
			},
		}, nil
	}

	client := newTestClient(t, srv)
	resp, err := client.Converse(context.Background(), "openai", []dapr.ConversationInput{{Role: "user", Content: "hello"}}, dapr.ConversationOptions{})
	require.NoError(err)
	require.Equal("ctx-1", resp.ContextID)
	require.Len(resp.Choices, 1)
	require.Equal("hi there", resp.Choices[0].Content)
}

func TestConverseStream(t *testing.T) {
	require := require.New(t)
	srv := mock.New(nil)
	defer srv.Shutdown()

	srv.OnConverseStreamAlpha2 = func(in *runtimev1.ConversationRequestAlpha2, strm runtimev1.Dapr_ConverseStreamAlpha2Server) error {
		if err := strm.Send(&runtimev1.ConversationStreamChunkAlpha2{ContextID: "ctx-1", ContentDelta: "hi "}); err != nil {
			return err
		}
		return strm.Send(&runtimev1.ConversationStreamChunkAlpha2{
			ContextID:    "ctx-1",
			ContentDelta: "there",
			FinishReason: "stop",
			Usage:        &runtimev1.ConversationUsage{PromptTokens: 5, CompletionTokens: 2, TotalTokens: 7},
		})
	}

	client := newTestClient(t, srv)
	chunks, err := client.ConverseStream(context.Background(), "openai", []dapr.ConversationInput{{Role: "user", Content: "hello"}}, dapr.ConversationOptions{})
	require.NoError(err)

	var deltas []string
	var lastUsage *dapr.ConversationUsage
	for i := 0; i < 2; i++ {
		select {
		case chunk := <-chunks:
			deltas = append(deltas, chunk.ContentDelta)
			if chunk.Usage != nil {
				lastUsage = chunk.Usage
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for stream chunk")
		}
	}

	require.Equal([]string{"hi ", "there"}, deltas)
	require.NotNil(lastUsage)
	require.Equal(int64(7), lastUsage.TotalTokens)
}

func TestConversationHistoryBuilder(t *testing.T) {
	require := require.New(t)

	history := dapr.NewConversationHistoryBuilder()
	history.AddUserMessage("what's the weather?")
	history.AddAssistantMessage("let me check", []dapr.ConversationToolCall{{Id: "call-1", Name: "get_weather", Arguments: `{"city":"nyc"}`}})
	history.AddToolResults([]string{`{"forecast":"sunny"}`})
	history.AddUserMessage("thanks, and tomorrow?")

	inputs := history.Build()
	require.Len(inputs, 4)
	require.Equal("user", inputs[0].Role)
	require.Equal("what's the weather?", inputs[0].Content)

	require.Equal("assistant", inputs[1].Role)
	require.Len(inputs[1].Parts, 2)
	require.Equal("let me check", inputs[1].Parts[0].Text)
	require.NotNil(inputs[1].Parts[1].ToolCall)
	require.Equal("call-1", inputs[1].Parts[1].ToolCall.Id)
	require.Equal("get_weather", inputs[1].Parts[1].ToolCall.Name)
	require.Equal(`{"city":"nyc"}`, inputs[1].Parts[1].ToolCall.ArgumentsJSON)

	require.Equal("tool", inputs[2].Role)
	require.Len(inputs[2].Parts, 1)
	require.NotNil(inputs[2].Parts[0].ToolResult)
	require.Equal("call-1", inputs[2].Parts[0].ToolResult.ToolCallId)
	require.Equal(`{"forecast":"sunny"}`, inputs[2].Parts[0].ToolResult.Content)

	require.Equal("user", inputs[3].Role)
	require.Equal("thanks, and tomorrow?", inputs[3].Content)
}
