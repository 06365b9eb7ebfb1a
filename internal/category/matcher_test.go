package category

import "testing"

func TestMatchScore(t *testing.T) {
	t.Run("Containment Both Ways", func(t *testing.T) {
		// "marketing" is contained in "marketing plan" one way only.
		if got := MatchScore("Marketing Plan", "Marketing"); got < containmentScore {
			t.Errorf("expected containment score, got %d", got)
		}
	})

	t.Run("Shared Words", func(t *testing.T) {
		got := MatchScore("Annual Marketing Review", "Marketing Budget")
		if got != sharedWordScore {
			t.Errorf("expected %d for one shared word, got %d", sharedWordScore, got)
		}
	})

	t.Run("Short Words Ignored", func(t *testing.T) {
		// "to" and "the" are below the shared-word length cutoff.
		if got := MatchScore("to the office", "to the bank"); got != 0 {
			t.Errorf("expected 0 for short shared words, got %d", got)
		}
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		if MatchScore("MARKETING PLAN", "marketing") == 0 {
			t.Errorf("matching must ignore case")
		}
	})

	t.Run("Empty Inputs", func(t *testing.T) {
		if MatchScore("", "x") != 0 || MatchScore("x", "") != 0 {
			t.Errorf("empty input scores 0")
		}
	})
}

func TestInferParent(t *testing.T) {
	parents := []string{"Marketing Plan", "Operations", PlanStepsParent}

	t.Run("Containment Wins", func(t *testing.T) {
		if got := InferParent("Marketing", parents); got != "Marketing Plan" {
			t.Errorf("expected Marketing Plan, got %q", got)
		}
	})

	t.Run("Plan Section Short Circuit", func(t *testing.T) {
		if got := InferParent("Executive Summary", parents); got != PlanStepsParent {
			t.Errorf("expected %q, got %q", PlanStepsParent, got)
		}
		if got := InferParent("market analysis", parents); got != PlanStepsParent {
			t.Errorf("section match must ignore case, got %q", got)
		}
	})

	t.Run("Plan Section Without Fixed Parent", func(t *testing.T) {
		// When the fixed parent is not a candidate, the scoring heuristic
		// still runs.
		got := InferParent("Executive Summary", []string{"Operations"})
		if got != "" {
			t.Errorf("expected no parent, got %q", got)
		}
	})

	t.Run("Below Threshold Stays Unparented", func(t *testing.T) {
		if got := InferParent("Hiring", parents); got != "" {
			t.Errorf("expected no parent for unrelated name, got %q", got)
		}
	})

	t.Run("Exact Name Not Own Parent", func(t *testing.T) {
		if got := InferParent("Operations", parents); got != "" {
			t.Errorf("a category must not become its own parent, got %q", got)
		}
	})
}
