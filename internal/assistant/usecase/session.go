package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"planboard/internal/assistant"
	"planboard/internal/model"
)

func (uc *implUseCase) CreateSession(ctx context.Context, sc model.Scope, ip assistant.CreateSessionInput) (assistant.Session, error) {
	if ip.PlanID == "" {
		return assistant.Session{}, assistant.ErrMissingPlanID
	}

	plan, err := uc.planUC.Detail(ctx, sc, ip.PlanID)
	if err != nil {
		return assistant.Session{}, err
	}

	sess := assistant.Session{
		ID:             uuid.NewString(),
		PlanID:         ip.PlanID,
		PlanTitle:      plan.Plan.Title,
		State:          assistant.StateIdle,
		FocusedSection: ip.FocusedSection,
		FocusedField:   ip.FocusedField,
		CreatedAt:      time.Now(),
	}

	// One transcript per plan: resuming a chat in a new session picks up
	// where the previous one left off.
	conv, err := uc.repo.GetConversation(ctx, sc, ip.PlanID)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.CreateSession.GetConversation: %v", err)
	} else {
		sess.Messages = conv.Messages
	}

	uc.sessions.Put(sess)
	return sess, nil
}

func (uc *implUseCase) GetSession(ctx context.Context, sc model.Scope, id string) (assistant.Session, error) {
	sess, ok := uc.sessions.Get(id)
	if !ok {
		return assistant.Session{}, assistant.ErrSessionNotFound
	}
	return sess, nil
}

func (uc *implUseCase) SetFocus(ctx context.Context, sc model.Scope, ip assistant.FocusInput) (assistant.Session, error) {
	sess, ok := uc.sessions.Update(ip.SessionID, func(s assistant.Session) assistant.Session {
		s.FocusedSection = ip.SectionID
		s.FocusedField = ip.FieldID
		return s
	})
	if !ok {
		return assistant.Session{}, assistant.ErrSessionNotFound
	}
	return sess, nil
}

// Dismiss drops the pending suggestion. Dismissing with nothing pending is
// a no-op, not an error.
func (uc *implUseCase) Dismiss(ctx context.Context, sc model.Scope, sessionID string) (assistant.Session, error) {
	sess, ok := uc.sessions.Update(sessionID, func(s assistant.Session) assistant.Session {
		s.Pending = nil
		s.State = assistant.StateIdle
		return s
	})
	if !ok {
		return assistant.Session{}, assistant.ErrSessionNotFound
	}
	return sess, nil
}
