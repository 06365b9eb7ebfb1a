package usecase_test

import (
	"context"
	"errors"

	"planboard/internal/actionitem/repository"
	"planboard/internal/model"
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

// mockRepo implements repository.Repository with overridable funcs.
type mockRepo struct {
	createItemFunc func(opt repository.CreateItemOptions) (model.ActionItem, error)
	listItemsFunc  func(opt repository.ListItemsOptions) ([]model.ActionItem, error)
	updateItemFunc func(opt repository.UpdateItemOptions) (model.ActionItem, error)
	deleteItemFunc func(id string) error
	listListsFunc  func(opt repository.ListListsOptions) ([]model.ActionList, error)
	getOneListFunc func(id string) (model.ActionList, error)
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.ActionItem, error) {
	if m.createItemFunc != nil {
		return m.createItemFunc(opt)
	}
	return model.ActionItem{}, errors.New("createItemFunc not set")
}

func (m *mockRepo) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.ActionItem, error) {
	if m.listItemsFunc != nil {
		return m.listItemsFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.ActionItem, error) {
	if m.updateItemFunc != nil {
		return m.updateItemFunc(opt)
	}
	return model.ActionItem{}, errors.New("updateItemFunc not set")
}

func (m *mockRepo) DeleteItem(ctx context.Context, id string) error {
	if m.deleteItemFunc != nil {
		return m.deleteItemFunc(id)
	}
	return nil
}

func (m *mockRepo) ListLists(ctx context.Context, opt repository.ListListsOptions) ([]model.ActionList, error) {
	if m.listListsFunc != nil {
		return m.listListsFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) GetOneList(ctx context.Context, id string) (model.ActionList, error) {
	if m.getOneListFunc != nil {
		return m.getOneListFunc(id)
	}
	return model.ActionList{}, nil
}
