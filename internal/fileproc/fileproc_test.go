package fileproc

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"testing"

	"github.com/sitecrawl/sitecrawl/internal/concurrent"
)

func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		filepath.Join(dir, "a.txt"): "alpha",
		filepath.Join(dir, "b.bin"): "binary",
		filepath.Join(sub, "c.txt"): "gamma",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestPoolProcessesAllMatchingFiles(t *testing.T) {
	dir := writeTree(t)
	filter := regexp.MustCompile(`.*\.txt$`)

	var mu sync.Mutex
	var merged []string

	pool := NewPool(
		[]string{dir},
		filter,
		2,
		func() []string { return nil },
		func(path string, local *[]string) bool {
			*local = append(*local, filepath.Base(path))
			return true
		},
		func(local []string) {
			mu.Lock()
			defer mu.Unlock()
			merged = append(merged, local...)
		},
	)
	pool.Run()

	sort.Strings(merged)
	want := []string{"a.txt", "c.txt"}
	if len(merged) != len(want) {
		t.Fatalf("merged = %v, want %v", merged, want)
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Errorf("merged[%d] = %q, want %q", i, merged[i], want[i])
		}
	}
}

func TestFileFinderSkipsMissingPaths(t *testing.T) {
	queue := concurrent.NewQueue[string]()
	finder := NewFileFinder(queue, regexp.MustCompile(`.*`))
	finder.AddPath(filepath.Join(t.TempDir(), "does-not-exist"))
	finder.Start()
	finder.Wait()

	if finder.FoundFiles != 0 {
		t.Errorf("FoundFiles = %d, want 0", finder.FoundFiles)
	}
}
