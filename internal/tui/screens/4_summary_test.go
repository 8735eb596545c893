//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package screens_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/venv-sweep/internal/config"
	"github.com/joe/venv-sweep/internal/sweeper"
	"github.com/joe/venv-sweep/internal/tui/screens"
	"github.com/joe/venv-sweep/internal/tui/shared"
)

func TestSummaryScreen_CompleteShowsCounts(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{RootPath: "/scan", MaxDepth: -1, UnusedDays: -1}
	outcome := &sweeper.DeletionOutcome{
		DeletedCount: 2,
		FreedBytes:   1536,
		Errors:       map[string]error{},
	}

	screen := *screens.NewSummaryScreen(cfg, shared.StateComplete, outcome, nil)
	view := stripANSI(screen.View())

	g.Expect(view).To(ContainSubstring("Successfully deleted: 2 folders"))
	g.Expect(view).To(ContainSubstring("Failed to delete: 0 folders"))
	g.Expect(view).To(ContainSubstring("Space freed: 1.5 KiB"))
	g.Expect(view).ShouldNot(ContainSubstring("Try these solutions"))
}

func TestSummaryScreen_CompleteListsFailuresWithSuggestions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{RootPath: "/scan", MaxDepth: -1, UnusedDays: -1}
	outcome := &sweeper.DeletionOutcome{
		DeletedCount: 1,
		FailedCount:  1,
		FreedBytes:   300,
		Errors: map[string]error{
			"/scan/b/.env": errors.New("remove /scan/b/.env: permission denied"),
		},
	}

	screen := *screens.NewSummaryScreen(cfg, shared.StateComplete, outcome, nil)
	view := stripANSI(screen.View())

	g.Expect(view).To(ContainSubstring("b/.env"))
	g.Expect(view).To(ContainSubstring("permission denied"))
	g.Expect(view).To(ContainSubstring("Try these solutions:"))
	g.Expect(view).To(ContainSubstring("chown"))
}

func TestSummaryScreen_Declined(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{RootPath: "/scan", MaxDepth: -1, UnusedDays: -1}
	screen := *screens.NewSummaryScreen(cfg, shared.StateDeclined, nil, nil)

	view := stripANSI(screen.View())

	g.Expect(view).To(ContainSubstring("Deletion cancelled"))
	g.Expect(view).To(ContainSubstring("No folders were deleted."))
}

func TestSummaryScreen_Cancelled(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{RootPath: "/scan", MaxDepth: -1, UnusedDays: -1}
	screen := *screens.NewSummaryScreen(cfg, shared.StateCancelled, nil, nil)

	view := stripANSI(screen.View())

	g.Expect(view).To(ContainSubstring("Analysis interrupted"))
	g.Expect(view).To(ContainSubstring("No folders were deleted."))
}

func TestSummaryScreen_ErrorShowsSuggestions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{RootPath: "/scan", MaxDepth: -1, UnusedDays: -1}
	scanErr := errors.New("lstat /scan: no such file or directory")
	screen := *screens.NewSummaryScreen(cfg, shared.StateError, nil, scanErr)

	view := stripANSI(screen.View())

	g.Expect(view).To(ContainSubstring("Error during analysis"))
	g.Expect(view).To(ContainSubstring("no such file or directory"))
	g.Expect(view).To(ContainSubstring("Try these solutions:"))
}
