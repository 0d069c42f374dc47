package llm

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

// Gemini defaults.
const (
	GeminiModel  = "gemini-2.5-flash"
	GeminiKeyEnv = "GOOGLE_API_KEY"
)

// GeminiClient talks to Google's Gemini API with the same sampling parameters as the NVIDIA client.
type GeminiClient struct {
	cfg Config
}

// NewGeminiClient builds a Gemini client. The SDK handle itself is created per call.
func NewGeminiClient(cfg Config) *GeminiClient {
	return &GeminiClient{cfg: cfg}
}

func (c *GeminiClient) newAPIClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      c.cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  c.cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: c.cfg.BaseURL},
	})
}

// Complete implements Client.
func (c *GeminiClient) Complete(ctx context.Context, conversation []Message) (string, error) {
	if c.cfg.APIKey == "" {
		return "", missingCredential(GeminiKeyEnv)
	}

	ctx, cancel := withTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	api, err := c.newAPIClient(ctx)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	contents, system := toGeminiContents(conversation)
	genCfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](Temperature),
		TopP:              genai.Ptr[float32](TopP),
		MaxOutputTokens:   MaxTokens,
		SystemInstruction: system,
	}

	if c.cfg.Mode == ModeStreamed {
		var sb strings.Builder
		for resp, err := range api.Models.GenerateContentStream(ctx, GeminiModel, contents, genCfg) {
			if err != nil {
				return "", classifyGeminiError(err)
			}
			sb.WriteString(resp.Text())
		}
		return sb.String(), nil
	}

	resp, err := api.Models.GenerateContent(ctx, GeminiModel, contents, genCfg)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if len(resp.Candidates) == 0 {
		return "", malformed("response contained no candidates")
	}
	return resp.Text(), nil
}

// toGeminiContents splits system messages into the system instruction and maps the rest.
func toGeminiContents(conversation []Message) ([]*genai.Content, *genai.Content) {
	var (
		contents []*genai.Content
		system   []string
	)
	for _, m := range conversation {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	if len(system) == 0 {
		return contents, nil
	}
	return contents, genai.NewContentFromText(strings.Join(system, "\n"), genai.RoleUser)
}

func classifyGeminiError(err error) *Error {
	if isCanceled(err) {
		return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
	}

	msg := err.Error()
	if strings.Contains(msg, "API key not valid") || strings.Contains(msg, "PERMISSION_DENIED") {
		return &Error{Kind: KindAuth, Message: msg, Err: err}
	}
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}
