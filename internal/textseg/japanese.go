package textseg

import (
	"fmt"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// japaneseTokenizer builds the IPA-dictionary lattice tokenizer once per
// process. The dictionary is compiled into the binary, so construction
// cannot touch the filesystem.
var japaneseTokenizer = sync.OnceValues(func() (*tokenizer.Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("load japanese dictionary: %w", err)
	}
	return t, nil
})

func segmentJapanese(text string) ([]string, error) {
	tok, err := japaneseTokenizer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSegmentationFailed, err)
	}
	return segmentRuns(text, func(run string) []string {
		morphemes := tok.Tokenize(run)
		out := make([]string, 0, len(morphemes))
		for _, m := range morphemes {
			if m.Class == tokenizer.DUMMY {
				continue
			}
			out = append(out, m.Surface)
		}
		return out
	}), nil
}
