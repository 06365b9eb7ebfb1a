package planner

import (
	"context"

	"planboard/internal/assistant/repository"
	"planboard/internal/model"
	"planboard/pkg/planapi"
)

func (r *implRepository) GetConversation(ctx context.Context, sc model.Scope, id string) (model.Conversation, error) {
	conv, err := r.client.GetConversation(ctx, id)
	if err != nil {
		if planapi.IsNotFound(err) {
			return model.Conversation{}, nil
		}
		r.l.Errorf(ctx, "assistant/repository/planner.GetConversation: %v", err)
		return model.Conversation{}, repository.ErrFailedToGetConversation
	}
	return toModelConversation(conv), nil
}

func (r *implRepository) SaveConversation(ctx context.Context, sc model.Scope, conv model.Conversation) error {
	if err := r.client.PutConversation(ctx, toWireConversation(conv)); err != nil {
		r.l.Errorf(ctx, "assistant/repository/planner.SaveConversation: %v", err)
		return repository.ErrFailedToSaveConversation
	}
	return nil
}

func toModelConversation(conv planapi.Conversation) model.Conversation {
	msgs := make([]model.Message, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		msgs = append(msgs, model.Message{
			Role: model.MessageRole(m.Role),
			Text: m.Content,
		})
	}
	return model.Conversation{
		ID:       conv.ID,
		PlanID:   conv.PlanID,
		Messages: msgs,
	}
}

func toWireConversation(conv model.Conversation) planapi.Conversation {
	msgs := make([]planapi.ChatMsg, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		msgs = append(msgs, planapi.ChatMsg{
			Role:    string(m.Role),
			Content: m.Text,
		})
	}
	return planapi.Conversation{
		ID:       conv.ID,
		PlanID:   conv.PlanID,
		Messages: msgs,
	}
}
