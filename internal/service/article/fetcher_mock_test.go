package article

import (
	"context"
	"sync"

	"github.com/heartmarshall/lingreader-backend/internal/fetch"
)

var _ pageFetcher = &pageFetcherMock{}

type pageFetcherMock struct {
	FetchFunc func(ctx context.Context, rawURL string) (*fetch.Extract, error)

	calls struct {
		Fetch []struct {
			Ctx    context.Context
			RawURL string
		}
	}
	lockFetch sync.RWMutex
}

func (mock *pageFetcherMock) Fetch(ctx context.Context, rawURL string) (*fetch.Extract, error) {
	if mock.FetchFunc == nil {
		panic("pageFetcherMock.FetchFunc: method is nil but pageFetcher.Fetch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RawURL string
	}{Ctx: ctx, RawURL: rawURL}
	mock.lockFetch.Lock()
	mock.calls.Fetch = append(mock.calls.Fetch, callInfo)
	mock.lockFetch.Unlock()
	return mock.FetchFunc(ctx, rawURL)
}

func (mock *pageFetcherMock) FetchCalls() []struct {
	Ctx    context.Context
	RawURL string
} {
	mock.lockFetch.RLock()
	calls := mock.calls.Fetch
	mock.lockFetch.RUnlock()
	return calls
}
