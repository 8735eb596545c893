//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package sweeper_test

import (
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/venv-sweep/internal/config"
	"github.com/joe/venv-sweep/internal/sweeper"
)

// eventCollector records every emitted event for later inspection.
type eventCollector struct {
	mu     sync.Mutex
	events []sweeper.Event
}

func (c *eventCollector) Emit(event sweeper.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *eventCollector) ofType(name string) []sweeper.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	var matched []sweeper.Event
	for _, event := range c.events {
		if reflect.TypeOf(event).Name() == name {
			matched = append(matched, event)
		}
	}

	return matched
}

// buildFixtureTree lays out two venvs and one ordinary project on disk:
//
//	projA/venv     three files, 1500 bytes total
//	projB/.env     pyvenv.cfg, 200 bytes
//	projC/data     not a venv
func buildFixtureTree(g *WithT, root string) {
	venvA := filepath.Join(root, "projA", "venv")
	g.Expect(os.MkdirAll(filepath.Join(venvA, "lib"), 0o755)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(venvA, "pyvenv.cfg"), make([]byte, 100), 0o644)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(venvA, "lib", "a.py"), make([]byte, 700), 0o644)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(venvA, "lib", "b.py"), make([]byte, 700), 0o644)).To(Succeed())

	envB := filepath.Join(root, "projB", ".env")
	g.Expect(os.MkdirAll(envB, 0o755)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(envB, "pyvenv.cfg"), make([]byte, 200), 0o644)).To(Succeed())

	data := filepath.Join(root, "projC", "data")
	g.Expect(os.MkdirAll(data, 0o755)).To(Succeed())
	g.Expect(os.WriteFile(filepath.Join(data, "notes.txt"), make([]byte, 50), 0o644)).To(Succeed())
}

func TestScan_EndToEndOnRealFilesystem(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	buildFixtureTree(g, root)

	engine := sweeper.NewEngine(&config.Config{RootPath: root, MaxDepth: -1, UnusedDays: -1})

	report, err := engine.Scan()
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(report.TotalCount).To(Equal(2))
	g.Expect(report.TotalSizeBytes).To(Equal(int64(1700)))
	g.Expect(report.RankedBySize).To(HaveLen(2))
	g.Expect(report.RankedBySize[0].Path).To(Equal(filepath.Join(root, "projA", "venv")))
	g.Expect(report.RankedBySize[0].SizeBytes).To(Equal(int64(1500)))
	g.Expect(report.RankedBySize[1].Path).To(Equal(filepath.Join(root, "projB", ".env")))
	g.Expect(report.RankedBySize[1].SizeBytes).To(Equal(int64(200)))
	g.Expect(report.UnusedSet).To(BeEmpty())
}

func TestScan_EmitsPipelineEvents(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	buildFixtureTree(g, root)

	engine := sweeper.NewEngine(&config.Config{RootPath: root, MaxDepth: -1, UnusedDays: -1})
	collector := &eventCollector{}
	engine.SetEventEmitter(collector)

	_, err := engine.Scan()
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(collector.ofType("ScanStarted")).To(HaveLen(1))
	g.Expect(collector.ofType("CandidateFound")).To(HaveLen(2))
	g.Expect(collector.ofType("ScanComplete")).To(HaveLen(1))
	g.Expect(collector.ofType("MeasureProgress")).To(HaveLen(2))
	g.Expect(collector.ofType("AnalysisComplete")).To(HaveLen(1))
}

func TestScan_EmptyRootYieldsEmptyReport(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	engine := sweeper.NewEngine(&config.Config{RootPath: root, MaxDepth: -1, UnusedDays: -1})

	report, err := engine.Scan()
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(report.TotalCount).To(BeZero())
	g.Expect(report.TotalSizeBytes).To(BeZero())
	g.Expect(report.RankedBySize).To(BeEmpty())
}

func TestScanThenDelete_EndToEndOnRealFilesystem(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	root := t.TempDir()
	buildFixtureTree(g, root)

	engine := sweeper.NewEngine(&config.Config{RootPath: root, MaxDepth: -1, UnusedDays: -1})

	report, err := engine.Scan()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(report.TotalCount).To(Equal(2))

	// Someone removes one venv between the scan and the confirmed deletion
	g.Expect(os.RemoveAll(filepath.Join(root, "projB", ".env"))).To(Succeed())

	outcome := engine.DeleteFolders(report.RankedBySize)

	g.Expect(outcome.DeletedCount).To(Equal(1))
	g.Expect(outcome.FailedCount).To(Equal(1))
	g.Expect(outcome.FreedBytes).To(Equal(int64(1500)))
	g.Expect(outcome.Errors).To(HaveKey(filepath.Join(root, "projB", ".env")))

	_, statErr := os.Lstat(filepath.Join(root, "projA", "venv"))
	g.Expect(os.IsNotExist(statErr)).To(BeTrue())
	// The non-venv project is untouched
	_, statErr = os.Lstat(filepath.Join(root, "projC", "data"))
	g.Expect(statErr).ShouldNot(HaveOccurred())
}

func TestReport_TopLargestCopiesPrefix(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	report := &sweeper.Report{
		RankedBySize: []sweeper.FolderMetrics{
			{Path: "/a", SizeBytes: 300},
			{Path: "/b", SizeBytes: 200},
			{Path: "/c", SizeBytes: 100},
		},
	}

	top := report.TopLargest(2)
	g.Expect(top).To(HaveLen(2))
	g.Expect(top[0].Path).To(Equal("/a"))

	// Mutating the copy leaves the report intact
	top[0].Path = "/mutated"
	g.Expect(report.RankedBySize[0].Path).To(Equal("/a"))

	g.Expect(report.TopLargest(10)).To(HaveLen(3))
	g.Expect(report.TopLargest(0)).To(BeEmpty())
}
