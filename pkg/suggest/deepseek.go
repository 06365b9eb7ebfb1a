package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"planboard/pkg/deepseek"
)

const deepseekSystemPrompt = `You are a business plan writing assistant. The user is editing the %q field of the %q section of a business plan titled %q.
Respond with a single JSON object, no markdown, with keys:
  "reply": short conversational answer for the user,
  "fieldId": the field the suggestion targets (may repeat the field above),
  "content": proposed text for that field, or "" if you are only answering a question.`

// DeepSeekProvider adapts the DeepSeek chat client to the Provider
// interface. Used as a fallback when the planner API's own suggestion
// endpoint is down.
type DeepSeekProvider struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekProvider creates a DeepSeek-backed suggestion provider.
func NewDeepSeekProvider(client deepseek.IDeepSeek) *DeepSeekProvider {
	return &DeepSeekProvider{client: client}
}

func (p *DeepSeekProvider) Name() string { return "deepseek" }

func (p *DeepSeekProvider) Suggest(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]deepseek.Message, 0, len(req.Messages)+1)
	msgs = append(msgs, deepseek.Message{
		Role:    "system",
		Content: fmt.Sprintf(deepseekSystemPrompt, req.FieldID, req.SectionID, req.PlanTitle),
	})
	for _, m := range req.Messages {
		msgs = append(msgs, deepseek.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := p.client.ChatCompletion(ctx, &deepseek.Request{
		Messages:    msgs,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty completion")
	}

	out, err := parseSuggestionJSON(text)
	if err != nil {
		// Models occasionally answer in prose despite the prompt.
		// Degrade to a plain conversational reply.
		return &Response{Reply: text}, nil
	}
	out.SectionID = req.SectionID
	return out, nil
}

// parseSuggestionJSON extracts the structured suggestion from a model
// reply, tolerating markdown code fences around the JSON.
func parseSuggestionJSON(text string) (*Response, error) {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "```") {
		t = strings.TrimPrefix(t, "```json")
		t = strings.TrimPrefix(t, "```")
		if i := strings.LastIndex(t, "```"); i >= 0 {
			t = t[:i]
		}
		t = strings.TrimSpace(t)
	}

	var payload struct {
		Reply   string `json:"reply"`
		FieldID string `json:"fieldId"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(t), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion: %w", err)
	}
	if payload.Reply == "" && payload.Content == "" {
		return nil, fmt.Errorf("suggestion payload is empty")
	}

	return &Response{
		Reply:   payload.Reply,
		FieldID: payload.FieldID,
		Content: payload.Content,
	}, nil
}
