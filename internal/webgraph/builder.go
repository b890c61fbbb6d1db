package webgraph

import (
	"os"
	"regexp"
	"strings"

	"github.com/sitecrawl/sitecrawl/internal/fileproc"
	"github.com/sitecrawl/sitecrawl/internal/urlutil"
)

// edge is a discovered link keyed by URL, accumulated in worker-local
// state before being folded into the shared graph under the pool's mutex.
// Mirrors the original FileWebgraphBuilder's private edges vector.
type edge struct {
	source string
	dest   string
}

// Build walks every HTML file under paths (matching fileFilterRegexp),
// extracts its outbound links restricted to domain, and assembles a
// Webgraph over all discovered URLs. It reuses the fileproc pool following
// the original's WebgraphBuilder/FileWebgraphBuilder split.
func Build(paths []string, domain string, fileFilterRegexp *regexp.Regexp, workers int) *Webgraph {
	graph := New()

	pool := fileproc.NewPool(
		paths,
		fileFilterRegexp,
		workers,
		func() []edge { return nil },
		func(path string, local *[]edge) bool {
			data, err := os.ReadFile(path)
			if err != nil {
				return false
			}

			fileURL := path
			if idx := strings.Index(path, domain); idx >= 0 {
				fileURL = path[idx:]
			}

			for _, link := range urlutil.ExtractLinks(domain, string(data)) {
				if !urlutil.IsAllowed(domain, link) {
					continue
				}
				*local = append(*local, edge{
					source: fileURL,
					dest:   urlutil.AddHTMLExtension(link),
				})
			}
			return true
		},
		func(local []edge) {
			for _, e := range local {
				src := graph.AddURL(e.source)
				dst := graph.AddURL(e.dest)
				_ = graph.AddLink(src, dst)
			}
		},
	)
	pool.Run()

	return graph
}
