package article

import (
	"sync"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

var _ segmenter = &segmenterMock{}

type segmenterMock struct {
	SegmentFunc func(text string, lang domain.Language) ([]string, error)

	calls struct {
		Segment []struct {
			Text string
			Lang domain.Language
		}
	}
	lockSegment sync.RWMutex
}

func (mock *segmenterMock) Segment(text string, lang domain.Language) ([]string, error) {
	if mock.SegmentFunc == nil {
		panic("segmenterMock.SegmentFunc: method is nil but segmenter.Segment was just called")
	}
	callInfo := struct {
		Text string
		Lang domain.Language
	}{Text: text, Lang: lang}
	mock.lockSegment.Lock()
	mock.calls.Segment = append(mock.calls.Segment, callInfo)
	mock.lockSegment.Unlock()
	return mock.SegmentFunc(text, lang)
}

func (mock *segmenterMock) SegmentCalls() []struct {
	Text string
	Lang domain.Language
} {
	mock.lockSegment.RLock()
	calls := mock.calls.Segment
	mock.lockSegment.RUnlock()
	return calls
}
