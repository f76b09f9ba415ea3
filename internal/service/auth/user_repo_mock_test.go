package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc      func(ctx context.Context, username string) (*domain.User, error)
	CreateFunc             func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateRefreshTokenFunc func(ctx context.Context, userID uuid.UUID, tokenHash string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		UpdateRefreshToken []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			TokenHash string
		}
	}
	lockGetByID            sync.RWMutex
	lockGetByUsername      sync.RWMutex
	lockCreate             sync.RWMutex
	lockUpdateRefreshToken sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	if mock.UpdateRefreshTokenFunc == nil {
		panic("userRepoMock.UpdateRefreshTokenFunc: method is nil but userRepo.UpdateRefreshToken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		TokenHash string
	}{Ctx: ctx, UserID: userID, TokenHash: tokenHash}
	mock.lockUpdateRefreshToken.Lock()
	mock.calls.UpdateRefreshToken = append(mock.calls.UpdateRefreshToken, callInfo)
	mock.lockUpdateRefreshToken.Unlock()
	return mock.UpdateRefreshTokenFunc(ctx, userID, tokenHash)
}

func (mock *userRepoMock) UpdateRefreshTokenCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	TokenHash string
} {
	mock.lockUpdateRefreshToken.RLock()
	calls := mock.calls.UpdateRefreshToken
	mock.lockUpdateRefreshToken.RUnlock()
	return calls
}
