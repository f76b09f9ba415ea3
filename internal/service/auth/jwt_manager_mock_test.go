package auth

import (
	"sync"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	IssueFunc                func(user domain.ClaimsUser) (string, error)
	DecodeExpiredFunc        func(token string) (domain.ClaimsUser, error)
	GenerateRefreshTokenFunc func() (string, string, error)

	calls struct {
		Issue []struct {
			User domain.ClaimsUser
		}
		DecodeExpired []struct {
			Token string
		}
		GenerateRefreshToken []struct{}
	}
	lockIssue                sync.RWMutex
	lockDecodeExpired        sync.RWMutex
	lockGenerateRefreshToken sync.RWMutex
}

func (mock *tokenManagerMock) Issue(user domain.ClaimsUser) (string, error) {
	if mock.IssueFunc == nil {
		panic("tokenManagerMock.IssueFunc: method is nil but tokenManager.Issue was just called")
	}
	callInfo := struct {
		User domain.ClaimsUser
	}{User: user}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(user)
}

func (mock *tokenManagerMock) IssueCalls() []struct {
	User domain.ClaimsUser
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenManagerMock) DecodeExpired(token string) (domain.ClaimsUser, error) {
	if mock.DecodeExpiredFunc == nil {
		panic("tokenManagerMock.DecodeExpiredFunc: method is nil but tokenManager.DecodeExpired was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockDecodeExpired.Lock()
	mock.calls.DecodeExpired = append(mock.calls.DecodeExpired, callInfo)
	mock.lockDecodeExpired.Unlock()
	return mock.DecodeExpiredFunc(token)
}

func (mock *tokenManagerMock) DecodeExpiredCalls() []struct{ Token string } {
	mock.lockDecodeExpired.RLock()
	calls := mock.calls.DecodeExpired
	mock.lockDecodeExpired.RUnlock()
	return calls
}

func (mock *tokenManagerMock) GenerateRefreshToken() (string, string, error) {
	if mock.GenerateRefreshTokenFunc == nil {
		panic("tokenManagerMock.GenerateRefreshTokenFunc: method is nil but tokenManager.GenerateRefreshToken was just called")
	}
	mock.lockGenerateRefreshToken.Lock()
	mock.calls.GenerateRefreshToken = append(mock.calls.GenerateRefreshToken, struct{}{})
	mock.lockGenerateRefreshToken.Unlock()
	return mock.GenerateRefreshTokenFunc()
}

func (mock *tokenManagerMock) GenerateRefreshTokenCalls() []struct{} {
	mock.lockGenerateRefreshToken.RLock()
	calls := mock.calls.GenerateRefreshToken
	mock.lockGenerateRefreshToken.RUnlock()
	return calls
}
