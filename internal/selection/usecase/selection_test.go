package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"planboard/internal/category"
	"planboard/internal/model"
	"planboard/internal/selection"
	"planboard/internal/selection/store"
	"planboard/internal/selection/usecase"
)

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

// mockCategoryUC serves a fixed derived category set.
type mockCategoryUC struct {
	deriveFunc func() (category.DeriveOutput, error)
}

func (m *mockCategoryUC) Derive(ctx context.Context, sc model.Scope, input category.DeriveInput) (category.DeriveOutput, error) {
	if m.deriveFunc != nil {
		return m.deriveFunc()
	}
	return category.DeriveOutput{Categories: []model.Category{
		{Name: "Marketing Plan", IsParent: true},
		{Name: "Social Media", ParentName: "Marketing Plan"},
		{Name: "Operations", IsParent: true},
	}}, nil
}

func newUC(catUC *mockCategoryUC) selection.UseCase {
	return usecase.New(store.New(time.Minute), catUC, &mockLogger{})
}

func TestSelect(t *testing.T) {
	ctx := context.Background()

	t.Run("Child Selection Expands Parent", func(t *testing.T) {
		uc := newUC(&mockCategoryUC{})
		out, err := uc.Select(ctx, model.Scope{}, selection.SelectInput{
			SessionID: "s1",
			Category:  "Social Media",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.State.ShowChildren {
			t.Errorf("selecting a child must force showChildren")
		}
		if !out.State.IsExpanded("Marketing Plan") {
			t.Errorf("selecting a child must expand its parent")
		}
	})

	t.Run("Parent Selection No Forced Expand", func(t *testing.T) {
		uc := newUC(&mockCategoryUC{})
		out, err := uc.Select(ctx, model.Scope{}, selection.SelectInput{
			SessionID: "s1",
			Category:  "Operations",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.State.ShowChildren {
			t.Errorf("selecting an unparented category must not force showChildren")
		}
	})

	t.Run("Derivation Failure Still Selects", func(t *testing.T) {
		uc := newUC(&mockCategoryUC{
			deriveFunc: func() (category.DeriveOutput, error) {
				return category.DeriveOutput{}, errors.New("upstream down")
			},
		})
		out, err := uc.Select(ctx, model.Scope{}, selection.SelectInput{
			SessionID: "s1",
			Category:  "Social Media",
		})
		if err != nil {
			t.Fatalf("selection must survive a failed derivation: %v", err)
		}
		if out.State.SelectedCategory != "Social Media" {
			t.Errorf("expected selection recorded, got %+v", out.State)
		}
	})

	t.Run("Deep Link Matches State", func(t *testing.T) {
		uc := newUC(&mockCategoryUC{})
		out, _ := uc.Select(ctx, model.Scope{}, selection.SelectInput{
			SessionID: "s1",
			Category:  "Social Media",
			ListID:    "l9",
		})
		decoded := selection.DecodeDeepLink(out.DeepLink)
		if decoded.SelectedCategory != "Social Media" || decoded.SelectedListID != "l9" || !decoded.ShowChildren {
			t.Errorf("deep link does not reproduce the state: %+v", decoded)
		}
	})
}

func TestToggleParent(t *testing.T) {
	ctx := context.Background()
	uc := newUC(&mockCategoryUC{})

	out, _ := uc.ToggleParent(ctx, model.Scope{}, selection.ToggleParentInput{SessionID: "s1", Parent: "Operations"})
	if !out.State.IsExpanded("Operations") {
		t.Fatalf("expected expanded after first toggle")
	}

	out, _ = uc.ToggleParent(ctx, model.Scope{}, selection.ToggleParentInput{SessionID: "s1", Parent: "Operations"})
	if out.State.IsExpanded("Operations") {
		t.Errorf("expected collapsed after second toggle")
	}
}

// Snapshots handed to one request must stay stable while another request
// toggles parents on the same session.
func TestToggleParentConcurrentSnapshot(t *testing.T) {
	ctx := context.Background()
	uc := newUC(&mockCategoryUC{})

	for _, p := range []string{"A", "B", "C"} {
		uc.ToggleParent(ctx, model.Scope{}, selection.ToggleParentInput{SessionID: "s1", Parent: p})
	}

	snap, _ := uc.Get(ctx, model.Scope{}, "s1")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			uc.ToggleParent(ctx, model.Scope{}, selection.ToggleParentInput{SessionID: "s1", Parent: "A"})
		}
	}()

	for i := 0; i < 200; i++ {
		for j, p := range snap.State.ExpandedParents {
			want := []string{"A", "B", "C"}[j]
			if p != want {
				t.Fatalf("snapshot mutated by concurrent toggle: %v", snap.State.ExpandedParents)
			}
		}
	}
	wg.Wait()

	final, _ := uc.Get(ctx, model.Scope{}, "s1")
	if !final.State.IsExpanded("B") || !final.State.IsExpanded("C") {
		t.Errorf("untoggled parents must survive: %v", final.State.ExpandedParents)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	uc := newUC(&mockCategoryUC{})

	if _, err := uc.Select(ctx, model.Scope{}, selection.SelectInput{SessionID: "s1", Category: "Social Media"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := uc.Clear(ctx, model.Scope{}, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.State.IsAllItems() || out.State.ShowChildren || len(out.State.ExpandedParents) != 0 {
		t.Errorf("expected the cleared state, got %+v", out.State)
	}
	if out.DeepLink != "" {
		t.Errorf("cleared state must encode to an empty deep link, got %q", out.DeepLink)
	}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	uc := newUC(&mockCategoryUC{})

	out, err := uc.Restore(ctx, model.Scope{}, "s2", "category=Social+Media&listId=l9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State.SelectedCategory != "Social Media" || out.State.SelectedListID != "l9" {
		t.Errorf("unexpected restored state: %+v", out.State)
	}
	if !out.State.ShowChildren || !out.State.IsExpanded("Marketing Plan") {
		t.Errorf("restoring a child selection must re-apply the parent rule: %+v", out.State)
	}
}
