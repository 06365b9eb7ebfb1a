package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"planboard/internal/assistant"
	"planboard/internal/businessplan"
	"planboard/internal/model"
	"planboard/pkg/suggest"
)

func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, ip assistant.SendMessageInput) (assistant.SendMessageOutput, error) {
	sess, ok := uc.sessions.Get(ip.SessionID)
	if !ok {
		return assistant.SendMessageOutput{}, assistant.ErrSessionNotFound
	}
	if strings.TrimSpace(ip.Text) == "" {
		return assistant.SendMessageOutput{}, assistant.ErrEmptyMessage
	}

	userMsg := newMessage(model.RoleUser, ip.Text)

	// A bare "yes" while a suggestion is on screen accepts it instead of
	// starting a new request.
	if sess.State == assistant.StateSuggestionShown && sess.Pending != nil && assistant.IsApproval(ip.Text) {
		applied, err := uc.applyPending(ctx, sc, &sess)
		if err != nil {
			return assistant.SendMessageOutput{}, err
		}

		reply := newMessage(model.RoleAssistant,
			fmt.Sprintf("Done. I've updated %s for you.", applied.FieldID))
		sess.Messages = append(sess.Messages, userMsg, reply)
		uc.sessions.Put(sess)
		uc.persistTranscript(ctx, sc, sess)

		return assistant.SendMessageOutput{Session: sess, Reply: reply, Applied: &applied}, nil
	}

	sess.Messages = append(sess.Messages, userMsg)
	sess.State = assistant.StateAwaiting
	uc.sessions.Put(sess)

	resp, err := uc.suggester.Suggest(ctx, &suggest.Request{
		PlanID:    sess.PlanID,
		PlanTitle: sess.PlanTitle,
		SectionID: sess.FocusedSection,
		FieldID:   sess.FocusedField,
		Messages:  toChat(sess.Messages),
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.SendMessage.Suggest: %v", err)
		sess.State = assistant.StateIdle
		uc.sessions.Put(sess)
		return assistant.SendMessageOutput{}, assistant.ErrSuggestionFailed
	}

	reply := newMessage(model.RoleAssistant, resp.Reply)
	sess.Messages = append(sess.Messages, reply)

	if resp.HasSuggestion() {
		sess.Pending = &model.Suggestion{
			FieldID:   resp.FieldID,
			SectionID: resp.SectionID,
			Content:   resp.Content,
		}
		sess.State = assistant.StateSuggestionShown
	} else {
		sess.Pending = nil
		sess.State = assistant.StateIdle
	}

	uc.sessions.Put(sess)
	uc.persistTranscript(ctx, sc, sess)

	return assistant.SendMessageOutput{Session: sess, Reply: reply}, nil
}

func (uc *implUseCase) Apply(ctx context.Context, sc model.Scope, sessionID string) (assistant.ApplyOutput, error) {
	sess, ok := uc.sessions.Get(sessionID)
	if !ok {
		return assistant.ApplyOutput{}, assistant.ErrSessionNotFound
	}

	applied, err := uc.applyPending(ctx, sc, &sess)
	if err != nil {
		return assistant.ApplyOutput{}, err
	}

	uc.sessions.Put(sess)
	return assistant.ApplyOutput{Session: sess, Applied: applied}, nil
}

// applyPending writes the pending suggestion through to the plan and resets
// the session to idle. The suggestion's raw field id is normalized here, at
// apply time, so a focus change between shown and applied lands on the field
// the user is actually editing.
func (uc *implUseCase) applyPending(ctx context.Context, sc model.Scope, sess *assistant.Session) (assistant.AppliedSuggestion, error) {
	if sess.Pending == nil {
		return assistant.AppliedSuggestion{}, assistant.ErrNoPendingSuggest
	}

	fieldID := assistant.ResolveTargetField(sess.Pending.FieldID, sess.FocusedField)
	sectionID := sess.Pending.SectionID
	if sectionID == "" {
		sectionID = sess.FocusedSection
	}

	err := uc.planUC.WriteField(ctx, sc, businessplan.WriteFieldInput{
		PlanID:    sess.PlanID,
		SectionID: sectionID,
		FieldID:   fieldID,
		Value:     sess.Pending.Content,
	})
	if err != nil {
		return assistant.AppliedSuggestion{}, err
	}

	applied := assistant.AppliedSuggestion{
		SectionID: sectionID,
		FieldID:   fieldID,
		Content:   sess.Pending.Content,
	}
	sess.Pending = nil
	sess.State = assistant.StateIdle
	return applied, nil
}

// persistTranscript saves the conversation upstream. Failures are logged,
// not returned: the in-memory session still has the transcript and the next
// message retries the save.
func (uc *implUseCase) persistTranscript(ctx context.Context, sc model.Scope, sess assistant.Session) {
	err := uc.repo.SaveConversation(ctx, sc, model.Conversation{
		ID:       sess.PlanID,
		PlanID:   sess.PlanID,
		Messages: sess.Messages,
	})
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.persistTranscript: %v", err)
	}
}

func newMessage(role model.MessageRole, text string) model.Message {
	return model.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

func toChat(msgs []model.Message) []suggest.Message {
	out := make([]suggest.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, suggest.Message{Role: string(m.Role), Content: m.Text})
	}
	return out
}
