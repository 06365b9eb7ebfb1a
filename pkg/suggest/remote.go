package suggest

import (
	"context"

	"planboard/pkg/planapi"
)

// RemoteProvider produces suggestions through the planner API's own
// suggestion endpoint. It is the primary provider: the upstream service
// already holds the plan and needs no prompt assembly on our side.
type RemoteProvider struct {
	client *planapi.Client
}

// NewRemoteProvider creates a provider backed by the planner API.
func NewRemoteProvider(client *planapi.Client) *RemoteProvider {
	return &RemoteProvider{client: client}
}

func (p *RemoteProvider) Name() string { return "planner" }

func (p *RemoteProvider) Suggest(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]planapi.ChatMsg, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, planapi.ChatMsg{Role: m.Role, Content: m.Content})
	}

	resp, err := p.client.SuggestContent(ctx, planapi.SuggestContentRequest{
		PlanID:    req.PlanID,
		SectionID: req.SectionID,
		FieldID:   req.FieldID,
		Messages:  msgs,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Reply:     resp.Reply,
		FieldID:   resp.FieldID,
		SectionID: resp.SectionID,
		Content:   resp.Content,
	}, nil
}
