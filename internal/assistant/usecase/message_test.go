package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"planboard/internal/assistant"
	"planboard/internal/assistant/store"
	"planboard/internal/assistant/usecase"
	"planboard/internal/businessplan"
	"planboard/internal/model"
	"planboard/pkg/suggest"
)

type fixture struct {
	repo      *mockConvRepo
	planUC    *mockPlanUC
	suggester *mockSuggester
	uc        assistant.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:      &mockConvRepo{},
		planUC:    &mockPlanUC{},
		suggester: &mockSuggester{},
	}
	f.uc = usecase.New(f.repo, store.New(time.Minute), f.planUC, f.suggester, &mockLogger{})
	return f
}

func (f *fixture) startSession(t *testing.T, ip assistant.CreateSessionInput) assistant.Session {
	t.Helper()
	sess, err := f.uc.CreateSession(context.Background(), model.Scope{}, ip)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	return sess
}

func TestCreateSession(t *testing.T) {
	t.Run("Missing Plan ID", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.CreateSession(context.Background(), model.Scope{}, assistant.CreateSessionInput{})
		if !errors.Is(err, assistant.ErrMissingPlanID) {
			t.Errorf("expected ErrMissingPlanID, got %v", err)
		}
	})

	t.Run("Plan Not Found", func(t *testing.T) {
		f := newFixture()
		f.planUC.detailFunc = func(id string) (businessplan.DetailOutput, error) {
			return businessplan.DetailOutput{}, businessplan.ErrPlanNotFound
		}
		_, err := f.uc.CreateSession(context.Background(), model.Scope{}, assistant.CreateSessionInput{PlanID: "missing"})
		if !errors.Is(err, businessplan.ErrPlanNotFound) {
			t.Errorf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("Resumes Saved Transcript", func(t *testing.T) {
		f := newFixture()
		f.repo.getFunc = func(id string) (model.Conversation, error) {
			return model.Conversation{
				ID:     "p1",
				PlanID: "p1",
				Messages: []model.Message{
					{Role: model.RoleUser, Text: "earlier question"},
					{Role: model.RoleAssistant, Text: "earlier answer"},
				},
			}, nil
		}
		sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1"})
		if len(sess.Messages) != 2 {
			t.Errorf("expected resumed transcript, got %d messages", len(sess.Messages))
		}
		if sess.State != assistant.StateIdle {
			t.Errorf("new sessions start idle, got %s", sess.State)
		}
	})

	t.Run("Transcript Fetch Failure Starts Empty", func(t *testing.T) {
		f := newFixture()
		f.repo.getFunc = func(id string) (model.Conversation, error) {
			return model.Conversation{}, errors.New("upstream down")
		}
		sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1"})
		if len(sess.Messages) != 0 {
			t.Errorf("expected empty transcript on fetch failure")
		}
	})
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Suggestion Shown", func(t *testing.T) {
		f := newFixture()
		f.suggester.suggestFunc = func(req *suggest.Request) (*suggest.Response, error) {
			return &suggest.Response{
				Reply:   "How about this?",
				FieldID: "market opportunity",
				Content: "Growing demand for mobile coffee.",
			}, nil
		}
		sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1"})

		out, err := f.uc.SendMessage(ctx, model.Scope{}, assistant.SendMessageInput{
			SessionID: sess.ID,
			Text:      "Write my market opportunity",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Session.State != assistant.StateSuggestionShown {
			t.Errorf("expected suggestion_shown, got %s", out.Session.State)
		}
		if out.Session.Pending == nil || out.Session.Pending.Content == "" {
			t.Fatalf("expected pending suggestion, got %+v", out.Session.Pending)
		}
		if len(out.Session.Messages) != 2 {
			t.Errorf("expected user+assistant messages, got %d", len(out.Session.Messages))
		}
		if len(f.repo.saved) == 0 {
			t.Errorf("transcript must be persisted after a reply")
		}
	})

	t.Run("Conversational Reply Stays Idle", func(t *testing.T) {
		f := newFixture()
		sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1"})

		out, err := f.uc.SendMessage(ctx, model.Scope{}, assistant.SendMessageInput{
			SessionID: sess.ID,
			Text:      "What makes a good mission statement?",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Session.State != assistant.StateIdle || out.Session.Pending != nil {
			t.Errorf("reply without content must leave the session idle: %+v", out.Session)
		}
	})

	t.Run("Provider Failure Returns To Idle", func(t *testing.T) {
		f := newFixture()
		f.suggester.suggestFunc = func(req *suggest.Request) (*suggest.Response, error) {
			return nil, errors.New("all providers failed")
		}
		sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1"})

		_, err := f.uc.SendMessage(ctx, model.Scope{}, assistant.SendMessageInput{SessionID: sess.ID, Text: "help"})
		if !errors.Is(err, assistant.ErrSuggestionFailed) {
			t.Fatalf("expected ErrSuggestionFailed, got %v", err)
		}

		got, _ := f.uc.GetSession(ctx, model.Scope{}, sess.ID)
		if got.State != assistant.StateIdle {
			t.Errorf("failed request must return the session to idle, got %s", got.State)
		}
	})

	t.Run("Persist Failure Does Not Fail Send", func(t *testing.T) {
		f := newFixture()
		f.repo.saveFunc = func(conv model.Conversation) error {
			return errors.New("upstream down")
		}
		sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1"})

		if _, err := f.uc.SendMessage(ctx, model.Scope{}, assistant.SendMessageInput{SessionID: sess.ID, Text: "hi"}); err != nil {
			t.Errorf("a failed transcript save must not fail the message: %v", err)
		}
	})

	t.Run("Unknown Session", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.SendMessage(ctx, model.Scope{}, assistant.SendMessageInput{SessionID: "nope", Text: "hi"})
		if !errors.Is(err, assistant.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Blank Message", func(t *testing.T) {
		f := newFixture()
		sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1"})
		_, err := f.uc.SendMessage(ctx, model.Scope{}, assistant.SendMessageInput{SessionID: sess.ID, Text: "   "})
		if !errors.Is(err, assistant.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
	})
}

func TestApprovalFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("Yes Applies Pending Suggestion", func(t *testing.T) {
		f := newFixture()
		f.suggester.suggestFunc = func(req *suggest.Request) (*suggest.Response, error) {
			return &suggest.Response{
				Reply:   "How about this?",
				FieldID: "content",
				Content: "Growing demand for mobile coffee.",
			}, nil
		}
		var written businessplan.WriteFieldInput
		f.planUC.writeFieldFunc = func(input businessplan.WriteFieldInput) error {
			written = input
			return nil
		}

		sess := f.startSession(t, assistant.CreateSessionInput{
			PlanID:         "p1",
			FocusedSection: "marketAnalysis",
			FocusedField:   "marketOpportunity",
		})
		if _, err := f.uc.SendMessage(ctx, model.Scope{}, assistant.SendMessageInput{SessionID: sess.ID, Text: "write it"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := f.uc.SendMessage(ctx, model.Scope{}, assistant.SendMessageInput{SessionID: sess.ID, Text: "yes"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Applied == nil {
			t.Fatalf("expected an applied suggestion")
		}
		// The generic field id resolves to the focused field at apply time.
		if written.FieldID != "marketOpportunity" || written.SectionID != "marketAnalysis" {
			t.Errorf("suggestion landed on %s/%s, want marketAnalysis/marketOpportunity", written.SectionID, written.FieldID)
		}
		if written.Value != "Growing demand for mobile coffee." {
			t.Errorf("unexpected written value %q", written.Value)
		}
		if out.Session.State != assistant.StateIdle || out.Session.Pending != nil {
			t.Errorf("apply must reset the session: %+v", out.Session)
		}
		// The approval did not trigger a second provider call.
		if f.suggester.calls != 1 {
			t.Errorf("expected 1 provider call, got %d", f.suggester.calls)
		}
	})

	t.Run("Yes Without Pending Is A Normal Message", func(t *testing.T) {
		f := newFixture()
		sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1"})

		out, err := f.uc.SendMessage(ctx, model.Scope{}, assistant.SendMessageInput{SessionID: sess.ID, Text: "yes"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Applied != nil {
			t.Errorf("nothing pending, nothing to apply")
		}
		if f.suggester.calls != 1 {
			t.Errorf("expected the message to reach the provider")
		}
	})
}

func TestApplyAndDismiss(t *testing.T) {
	ctx := context.Background()

	showSuggestion := func(t *testing.T, f *fixture) assistant.Session {
		t.Helper()
		f.suggester.suggestFunc = func(req *suggest.Request) (*suggest.Response, error) {
			return &suggest.Response{Reply: "Draft ready.", FieldID: "mission", Content: "Serve great coffee."}, nil
		}
		sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1", FocusedSection: "companyDescription"})
		if _, err := f.uc.SendMessage(ctx, model.Scope{}, assistant.SendMessageInput{SessionID: sess.ID, Text: "draft my mission"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return sess
	}

	t.Run("Apply Writes Normalized Field", func(t *testing.T) {
		f := newFixture()
		var written businessplan.WriteFieldInput
		f.planUC.writeFieldFunc = func(input businessplan.WriteFieldInput) error {
			written = input
			return nil
		}
		sess := showSuggestion(t, f)

		out, err := f.uc.Apply(ctx, model.Scope{}, sess.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if written.FieldID != "missionStatement" {
			t.Errorf("expected normalized missionStatement, got %q", written.FieldID)
		}
		if written.SectionID != "companyDescription" {
			t.Errorf("expected the focused section, got %q", written.SectionID)
		}
		if out.Session.State != assistant.StateIdle {
			t.Errorf("expected idle after apply, got %s", out.Session.State)
		}
	})

	t.Run("Apply Without Pending", func(t *testing.T) {
		f := newFixture()
		sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1"})
		_, err := f.uc.Apply(ctx, model.Scope{}, sess.ID)
		if !errors.Is(err, assistant.ErrNoPendingSuggest) {
			t.Errorf("expected ErrNoPendingSuggest, got %v", err)
		}
	})

	t.Run("Write Failure Keeps Pending", func(t *testing.T) {
		f := newFixture()
		f.planUC.writeFieldFunc = func(input businessplan.WriteFieldInput) error {
			return errors.New("upstream down")
		}
		sess := showSuggestion(t, f)

		if _, err := f.uc.Apply(ctx, model.Scope{}, sess.ID); err == nil {
			t.Fatalf("expected write error")
		}
		got, _ := f.uc.GetSession(ctx, model.Scope{}, sess.ID)
		if got.Pending == nil || got.State != assistant.StateSuggestionShown {
			t.Errorf("a failed apply must keep the suggestion pending: %+v", got)
		}
	})

	t.Run("Dismiss Drops Pending", func(t *testing.T) {
		f := newFixture()
		sess := showSuggestion(t, f)

		out, err := f.uc.Dismiss(ctx, model.Scope{}, sess.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Pending != nil || out.State != assistant.StateIdle {
			t.Errorf("expected cleared session, got %+v", out)
		}
	})
}

func TestSetFocus(t *testing.T) {
	f := newFixture()
	sess := f.startSession(t, assistant.CreateSessionInput{PlanID: "p1"})

	out, err := f.uc.SetFocus(context.Background(), model.Scope{}, assistant.FocusInput{
		SessionID: sess.ID,
		SectionID: "marketAnalysis",
		FieldID:   "targetMarket",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FocusedSection != "marketAnalysis" || out.FocusedField != "targetMarket" {
		t.Errorf("unexpected focus: %+v", out)
	}
}
