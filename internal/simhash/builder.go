package simhash

import (
	"os"
	"regexp"

	"github.com/sitecrawl/sitecrawl/internal/extract"
	"github.com/sitecrawl/sitecrawl/internal/fileproc"
	"github.com/sitecrawl/sitecrawl/internal/logging"
)

// Build walks every file under path matching fileFilterRegexp, reduces its
// HTML to inner text via extractor and fingerprints it, following the
// original SimhashBuilder/FileSimhashBuilder split.
func Build(path string, fileFilterRegexp *regexp.Regexp, workers int, extractor extract.TextExtractor, logger logging.Logger) []DocumentSimilarityInfo {
	var infos []DocumentSimilarityInfo

	pool := fileproc.NewPool(
		[]string{path},
		fileFilterRegexp,
		workers,
		func() []DocumentSimilarityInfo { return nil },
		func(p string, local *[]DocumentSimilarityInfo) bool {
			data, err := os.ReadFile(p)
			if err != nil {
				logger.Println(err)
				return false
			}

			text, err := extractor.Extract(string(data))
			if err != nil {
				logger.Printf("failed to parse %s: %v", p, err)
				text = string(data)
			}

			var calc Calculator
			*local = append(*local, DocumentSimilarityInfo{
				Path:    p,
				Simhash: calc.Calculate(text),
				Size:    len(text),
			})
			return true
		},
		func(local []DocumentSimilarityInfo) {
			infos = append(infos, local...)
		},
	)
	pool.Run()

	return infos
}

// WithIDs assigns a stable, order-preserving id to each DocumentSimilarityInfo.
func WithIDs(infos []DocumentSimilarityInfo) []DocumentInfo {
	out := make([]DocumentInfo, len(infos))
	for i, info := range infos {
		out[i] = DocumentInfo{ID: i, Path: info.Path, Simhash: info.Simhash, Size: info.Size}
	}
	return out
}
