package middleware

import (
	"sync"
	"time"
)

var _ httpMetrics = &httpMetricsMock{}

type httpMetricsMock struct {
	ObserveFunc func(method, route string, code int, duration time.Duration)

	calls struct {
		Observe []struct {
			Method   string
			Route    string
			Code     int
			Duration time.Duration
		}
	}
	lockObserve sync.RWMutex
}

func (mock *httpMetricsMock) Observe(method, route string, code int, duration time.Duration) {
	if mock.ObserveFunc == nil {
		panic("httpMetricsMock.ObserveFunc: method is nil but httpMetrics.Observe was just called")
	}
	callInfo := struct {
		Method   string
		Route    string
		Code     int
		Duration time.Duration
	}{Method: method, Route: route, Code: code, Duration: duration}
	mock.lockObserve.Lock()
	mock.calls.Observe = append(mock.calls.Observe, callInfo)
	mock.lockObserve.Unlock()
	mock.ObserveFunc(method, route, code, duration)
}

func (mock *httpMetricsMock) ObserveCalls() []struct {
	Method   string
	Route    string
	Code     int
	Duration time.Duration
} {
	mock.lockObserve.RLock()
	calls := mock.calls.Observe
	mock.lockObserve.RUnlock()
	return calls
}
