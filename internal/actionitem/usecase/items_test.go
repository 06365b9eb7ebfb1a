package usecase_test

import (
	"context"
	"errors"
	"testing"

	"planboard/internal/actionitem"
	"planboard/internal/actionitem/repository"
	"planboard/internal/actionitem/usecase"
	"planboard/internal/model"
)

func TestCreate(t *testing.T) {
	t.Run("Empty Content Error", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})
		_, err := uc.Create(context.Background(), model.Scope{}, actionitem.CreateInput{Content: "   "})
		if !errors.Is(err, actionitem.ErrEmptyContent) {
			t.Errorf("expected ErrEmptyContent, got %v", err)
		}
	})

	t.Run("Label Preserved", func(t *testing.T) {
		repo := &mockRepo{
			createItemFunc: func(opt repository.CreateItemOptions) (model.ActionItem, error) {
				if opt.Content != "[Marketing] run ads" {
					t.Errorf("content must reach the repository untouched, got %q", opt.Content)
				}
				return model.ActionItem{ID: "i1", Content: opt.Content}, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		out, err := uc.Create(context.Background(), model.Scope{}, actionitem.CreateInput{Content: "[Marketing] run ads"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.ID != "i1" {
			t.Errorf("expected created item, got %+v", out.Item)
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		repo := &mockRepo{
			createItemFunc: func(opt repository.CreateItemOptions) (model.ActionItem, error) {
				return model.ActionItem{}, repository.ErrFailedToCreate
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		_, err := uc.Create(context.Background(), model.Scope{}, actionitem.CreateInput{Content: "x"})
		if !errors.Is(err, repository.ErrFailedToCreate) {
			t.Errorf("expected ErrFailedToCreate, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	items := []model.ActionItem{
		{ID: "1", Content: "[Marketing] run ads", IsCompleted: true},
		{ID: "2", Content: "[Marketing] book venue"},
		{ID: "3", Content: "plain item", ListID: "l1"},
		{ID: "4", Content: "another", ListID: "l2"},
	}

	newRepo := func() *mockRepo {
		return &mockRepo{
			listItemsFunc: func(opt repository.ListItemsOptions) ([]model.ActionItem, error) {
				return items, nil
			},
			listListsFunc: func(opt repository.ListListsOptions) ([]model.ActionList, error) {
				return []model.ActionList{
					{ID: "l1", Name: "Marketing"},
					{ID: "l2", Name: "Operations"},
				}, nil
			},
		}
	}

	t.Run("Category Matches Label And List Name", func(t *testing.T) {
		uc := usecase.New(newRepo(), &mockLogger{})
		out, err := uc.List(context.Background(), model.Scope{}, actionitem.ListInput{Category: "Marketing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Items 1 and 2 match by label, item 3 by list name.
		if out.Total != 3 {
			t.Fatalf("expected 3 items, got %d", out.Total)
		}
	})

	t.Run("Unknown Category Empty Result", func(t *testing.T) {
		uc := usecase.New(newRepo(), &mockLogger{})
		out, err := uc.List(context.Background(), model.Scope{}, actionitem.ListInput{Category: "Nothing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 0 {
			t.Errorf("expected empty result, got %d", out.Total)
		}
	})

	t.Run("Completed Filter", func(t *testing.T) {
		uc := usecase.New(newRepo(), &mockLogger{})
		out, err := uc.List(context.Background(), model.Scope{}, actionitem.ListInput{CompletedOnly: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 || out.Items[0].ID != "1" {
			t.Errorf("expected only the completed item, got %+v", out.Items)
		}
	})

	t.Run("Pending Filter", func(t *testing.T) {
		uc := usecase.New(newRepo(), &mockLogger{})
		out, err := uc.List(context.Background(), model.Scope{}, actionitem.ListInput{PendingOnly: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 3 {
			t.Errorf("expected 3 pending items, got %d", out.Total)
		}
	})

	t.Run("Fresh Fetch Passed Through", func(t *testing.T) {
		var gotFresh bool
		repo := &mockRepo{
			listItemsFunc: func(opt repository.ListItemsOptions) ([]model.ActionItem, error) {
				gotFresh = opt.FreshFetch
				return nil, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		if _, err := uc.List(context.Background(), model.Scope{}, actionitem.ListInput{FreshFetch: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !gotFresh {
			t.Errorf("FreshFetch must reach the repository")
		}
	})
}

func TestSetCompleted(t *testing.T) {
	t.Run("Sets Flag", func(t *testing.T) {
		repo := &mockRepo{
			updateItemFunc: func(opt repository.UpdateItemOptions) (model.ActionItem, error) {
				if opt.IsCompleted == nil || !*opt.IsCompleted {
					t.Errorf("expected IsCompleted=true in update options")
				}
				return model.ActionItem{ID: opt.ID, IsCompleted: true}, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		out, err := uc.SetCompleted(context.Background(), model.Scope{}, "i1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Item.IsCompleted {
			t.Errorf("expected completed item")
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &mockRepo{
			updateItemFunc: func(opt repository.UpdateItemOptions) (model.ActionItem, error) {
				return model.ActionItem{}, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		_, err := uc.SetCompleted(context.Background(), model.Scope{}, "missing", true)
		if !errors.Is(err, actionitem.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestListDetail(t *testing.T) {
	t.Run("Missing List", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})
		_, err := uc.ListDetail(context.Background(), model.Scope{}, "missing")
		if !errors.Is(err, actionitem.ErrListNotFound) {
			t.Errorf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("List With Items", func(t *testing.T) {
		repo := &mockRepo{
			getOneListFunc: func(id string) (model.ActionList, error) {
				return model.ActionList{ID: id, Name: "Marketing"}, nil
			},
			listItemsFunc: func(opt repository.ListItemsOptions) ([]model.ActionItem, error) {
				if opt.ListID != "l1" {
					t.Errorf("expected item fetch scoped to l1, got %q", opt.ListID)
				}
				return []model.ActionItem{{ID: "1", ListID: "l1"}}, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})
		out, err := uc.ListDetail(context.Background(), model.Scope{}, "l1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.List.Name != "Marketing" || len(out.Items) != 1 {
			t.Errorf("unexpected detail output: %+v", out)
		}
	})
}

func TestListTree(t *testing.T) {
	repo := &mockRepo{
		listListsFunc: func(opt repository.ListListsOptions) ([]model.ActionList, error) {
			return []model.ActionList{
				{ID: "c2", Name: "Child B", ParentID: "p1", Ordinal: 2},
				{ID: "p2", Name: "Parent Two", Ordinal: 2},
				{ID: "c1", Name: "Child A", ParentID: "p1", Ordinal: 1},
				{ID: "p1", Name: "Parent One", Ordinal: 1},
				{ID: "orphan", Name: "Orphan", ParentID: "gone", Ordinal: 1},
			}, nil
		},
	}
	uc := usecase.New(repo, &mockLogger{})

	out, err := uc.ListTree(context.Background(), model.Scope{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"p1", "c1", "c2", "p2", "orphan"}
	if len(out.Lists) != len(want) {
		t.Fatalf("expected %d lists, got %d", len(want), len(out.Lists))
	}
	for i, id := range want {
		if out.Lists[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, out.Lists[i].ID)
		}
	}
}
