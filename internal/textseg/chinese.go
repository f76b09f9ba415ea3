package textseg

import (
	"fmt"
	"sync"

	"github.com/go-ego/gse"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// chineseSegmenter loads the default jieba-style dictionary once per
// process. The segmenter is read-only after LoadDict and safe for
// concurrent Cut calls.
var chineseSegmenter = sync.OnceValues(func() (*gse.Segmenter, error) {
	var seg gse.Segmenter
	if err := seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("load chinese dictionary: %w", err)
	}
	return &seg, nil
})

func segmentChinese(text string) ([]string, error) {
	seg, err := chineseSegmenter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSegmentationFailed, err)
	}
	return segmentRuns(text, func(run string) []string {
		return seg.Cut(run, true)
	}), nil
}
