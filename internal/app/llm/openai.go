package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// NVIDIA endpoint defaults.
const (
	NVIDIABaseURL = "https://integrate.api.nvidia.com/v1"
	NVIDIAModel   = "meta/llama-3.1-405b-instruct"
	NVIDIAKeyEnv  = "NVIDIA_API_KEY"
)

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIClient struct {
	cfg Config
}

// NewOpenAIClient builds a client for the NVIDIA endpoint, or cfg.BaseURL when set.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = NVIDIABaseURL
	}
	return &OpenAIClient{cfg: cfg}
}

// newAPIClient constructs a fresh SDK handle; one is built per call.
func (c *OpenAIClient) newAPIClient() *openai.Client {
	sdkCfg := openai.DefaultConfig(c.cfg.APIKey)
	sdkCfg.BaseURL = c.cfg.BaseURL
	if c.cfg.HTTPClient != nil {
		sdkCfg.HTTPClient = c.cfg.HTTPClient
	}
	return openai.NewClientWithConfig(sdkCfg)
}

// Complete implements Client.
func (c *OpenAIClient) Complete(ctx context.Context, conversation []Message) (string, error) {
	if c.cfg.APIKey == "" {
		return "", missingCredential(NVIDIAKeyEnv)
	}

	ctx, cancel := withTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       NVIDIAModel,
		Messages:    toOpenAIMessages(conversation),
		Temperature: Temperature,
		TopP:        TopP,
		MaxTokens:   MaxTokens,
	}

	api := c.newAPIClient()
	if c.cfg.Mode == ModeStreamed {
		return c.completeStreamed(ctx, api, req)
	}
	return c.completeBuffered(ctx, api, req)
}

func (c *OpenAIClient) completeBuffered(ctx context.Context, api *openai.Client, req openai.ChatCompletionRequest) (string, error) {
	resp, err := api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", malformed("response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) completeStreamed(ctx context.Context, api *openai.Client, req openai.ChatCompletionRequest) (string, error) {
	stream, err := api.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	defer stream.Close()

	var sb strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return "", classifyOpenAIError(err)
		}
		for _, choice := range chunk.Choices {
			sb.WriteString(choice.Delta.Content)
		}
	}
}

func toOpenAIMessages(conversation []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(conversation))
	for _, m := range conversation {
		out = append(out, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}

// classifyOpenAIError maps SDK errors onto adapter error kinds.
func classifyOpenAIError(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &Error{Kind: classifyStatus(apiErr.HTTPStatusCode), Message: err.Error(), Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &Error{Kind: classifyStatus(reqErr.HTTPStatusCode), Message: err.Error(), Err: err}
	}

	if isCanceled(err) {
		return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &Error{Kind: KindMalformedResponse, Message: err.Error(), Err: err}
	}

	return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
}
