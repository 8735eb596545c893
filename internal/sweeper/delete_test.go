//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package sweeper_test

import (
	"os"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/venv-sweep/internal/sweeper"
	"github.com/joe/venv-sweep/pkg/filesystem"
)

func TestDeleteFolders_RemovesEverySelectedFolder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := filesystem.NewMockFileSystem()
	mock.AddFile("/scan/a/venv/x", 100, time.Time{})
	mock.AddFile("/scan/b/.env/y", 200, time.Time{})

	engine := newMockEngine(mock, -1, -1)

	outcome := engine.DeleteFolders([]sweeper.FolderMetrics{
		{Path: "/scan/a/venv", SizeBytes: 100},
		{Path: "/scan/b/.env", SizeBytes: 200},
	})

	g.Expect(outcome.DeletedCount).To(Equal(2))
	g.Expect(outcome.FailedCount).To(BeZero())
	g.Expect(outcome.FreedBytes).To(Equal(int64(300)))
	g.Expect(mock.Exists("/scan/a/venv")).To(BeFalse())
	g.Expect(mock.Exists("/scan/b/.env")).To(BeFalse())
}

func TestDeleteFolders_MissingFolderCountsAsFailure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := filesystem.NewMockFileSystem()
	mock.AddFile("/scan/kept/venv/x", 500, time.Time{})

	engine := newMockEngine(mock, -1, -1)

	outcome := engine.DeleteFolders([]sweeper.FolderMetrics{
		{Path: "/scan/vanished/venv", SizeBytes: 999},
		{Path: "/scan/kept/venv", SizeBytes: 500},
	})

	g.Expect(outcome.DeletedCount).To(Equal(1))
	g.Expect(outcome.FailedCount).To(Equal(1))
	// A folder that disappeared before deletion frees nothing
	g.Expect(outcome.FreedBytes).To(Equal(int64(500)))
	g.Expect(outcome.Errors).To(HaveKey("/scan/vanished/venv"))
	g.Expect(outcome.Errors["/scan/vanished/venv"]).To(MatchError(os.ErrNotExist))
}

func TestDeleteFolders_FailureDoesNotAbortBatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := filesystem.NewMockFileSystem()
	mock.AddFile("/scan/first/venv/x", 100, time.Time{})
	mock.AddFile("/scan/locked/venv/y", 200, time.Time{})
	mock.AddFile("/scan/last/venv/z", 300, time.Time{})
	mock.FailRemove("/scan/locked/venv")

	engine := newMockEngine(mock, -1, -1)

	outcome := engine.DeleteFolders([]sweeper.FolderMetrics{
		{Path: "/scan/first/venv", SizeBytes: 100},
		{Path: "/scan/locked/venv", SizeBytes: 200},
		{Path: "/scan/last/venv", SizeBytes: 300},
	})

	g.Expect(outcome.DeletedCount).To(Equal(2))
	g.Expect(outcome.FailedCount).To(Equal(1))
	g.Expect(outcome.FreedBytes).To(Equal(int64(400)))
	g.Expect(outcome.Errors).To(HaveKey("/scan/locked/venv"))
	// The folders after the failure were still processed
	g.Expect(mock.Exists("/scan/last/venv")).To(BeFalse())
	g.Expect(mock.Exists("/scan/locked/venv")).To(BeTrue())
}

func TestDeleteFolders_EveryFolderAccountedFor(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := filesystem.NewMockFileSystem()
	mock.AddFile("/scan/a/venv/x", 10, time.Time{})
	mock.AddFile("/scan/b/venv/y", 20, time.Time{})
	mock.FailRemove("/scan/b/venv")

	engine := newMockEngine(mock, -1, -1)

	selection := []sweeper.FolderMetrics{
		{Path: "/scan/a/venv", SizeBytes: 10},
		{Path: "/scan/b/venv", SizeBytes: 20},
		{Path: "/scan/gone/venv", SizeBytes: 30},
	}
	outcome := engine.DeleteFolders(selection)

	g.Expect(outcome.DeletedCount + outcome.FailedCount).To(Equal(len(selection)))
	g.Expect(outcome.Errors).To(HaveLen(outcome.FailedCount))
}

func TestDeleteFolders_EmptySelectionIsNoOp(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := filesystem.NewMockFileSystem()
	mock.AddFile("/scan/a/venv/x", 10, time.Time{})

	engine := newMockEngine(mock, -1, -1)

	outcome := engine.DeleteFolders(nil)

	g.Expect(outcome.DeletedCount).To(BeZero())
	g.Expect(outcome.FailedCount).To(BeZero())
	g.Expect(outcome.FreedBytes).To(BeZero())
	g.Expect(mock.Exists("/scan/a/venv")).To(BeTrue())
}

func TestDeleteFolders_EmitsPerFolderEvents(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mock := filesystem.NewMockFileSystem()
	mock.AddFile("/scan/ok/venv/x", 100, time.Time{})
	mock.AddFile("/scan/bad/venv/y", 200, time.Time{})
	mock.FailRemove("/scan/bad/venv")

	engine := newMockEngine(mock, -1, -1)
	collector := &eventCollector{}
	engine.SetEventEmitter(collector)

	engine.DeleteFolders([]sweeper.FolderMetrics{
		{Path: "/scan/ok/venv", SizeBytes: 100},
		{Path: "/scan/bad/venv", SizeBytes: 200},
	})

	g.Expect(collector.ofType("DeleteStarted")).To(HaveLen(1))
	g.Expect(collector.ofType("FolderDeleted")).To(HaveLen(1))
	g.Expect(collector.ofType("DeleteFailed")).To(HaveLen(1))
	g.Expect(collector.ofType("DeleteComplete")).To(HaveLen(1))
}
