package usecase_test

import (
	"context"
	"errors"

	"planboard/internal/businessplan"
	"planboard/internal/model"
	"planboard/pkg/suggest"
)

// mockLogger is a no-op logger for unit tests.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockConvRepo implements the conversation repository.
type mockConvRepo struct {
	getFunc  func(id string) (model.Conversation, error)
	saveFunc func(conv model.Conversation) error
	saved    []model.Conversation
}

func (m *mockConvRepo) GetConversation(ctx context.Context, sc model.Scope, id string) (model.Conversation, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Conversation{}, nil
}

func (m *mockConvRepo) SaveConversation(ctx context.Context, sc model.Scope, conv model.Conversation) error {
	m.saved = append(m.saved, conv)
	if m.saveFunc != nil {
		return m.saveFunc(conv)
	}
	return nil
}

// mockPlanUC implements businessplan.UseCase.
type mockPlanUC struct {
	detailFunc     func(id string) (businessplan.DetailOutput, error)
	writeFieldFunc func(input businessplan.WriteFieldInput) error
}

func (m *mockPlanUC) Detail(ctx context.Context, sc model.Scope, id string) (businessplan.DetailOutput, error) {
	if m.detailFunc != nil {
		return m.detailFunc(id)
	}
	return businessplan.DetailOutput{Plan: model.BusinessPlan{ID: id, Title: "Coffee Cart"}}, nil
}

func (m *mockPlanUC) Update(ctx context.Context, sc model.Scope, input businessplan.UpdateInput) (businessplan.UpdateOutput, error) {
	return businessplan.UpdateOutput{}, errors.New("not implemented")
}

func (m *mockPlanUC) SaveSection(ctx context.Context, sc model.Scope, input businessplan.SaveSectionInput) error {
	return errors.New("not implemented")
}

func (m *mockPlanUC) FieldValue(ctx context.Context, sc model.Scope, planID, sectionID, fieldID string) (string, error) {
	return "", nil
}

func (m *mockPlanUC) WriteField(ctx context.Context, sc model.Scope, input businessplan.WriteFieldInput) error {
	if m.writeFieldFunc != nil {
		return m.writeFieldFunc(input)
	}
	return nil
}

// mockSuggester serves canned suggestion responses.
type mockSuggester struct {
	suggestFunc func(req *suggest.Request) (*suggest.Response, error)
	calls       int
}

func (m *mockSuggester) Suggest(ctx context.Context, req *suggest.Request) (*suggest.Response, error) {
	m.calls++
	if m.suggestFunc != nil {
		return m.suggestFunc(req)
	}
	return &suggest.Response{Reply: "Here you go."}, nil
}
