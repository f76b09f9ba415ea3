package article

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	FindFunc    func(ctx context.Context, filter domain.ArticleFilter) ([]domain.SimpleArticle, int, error)
	CreateFunc  func(ctx context.Context, article *domain.Article) (*domain.Article, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Find []struct {
			Ctx    context.Context
			Filter domain.ArticleFilter
		}
		Create []struct {
			Ctx     context.Context
			Article *domain.Article
		}
	}
	lockGetByID sync.RWMutex
	lockFind    sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *articleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if mock.GetByIDFunc == nil {
		panic("articleRepoMock.GetByIDFunc: method is nil but articleRepo.GetByID was just called")
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

func (mock *articleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *articleRepoMock) Find(ctx context.Context, filter domain.ArticleFilter) ([]domain.SimpleArticle, int, error) {
	if mock.FindFunc == nil {
		panic("articleRepoMock.FindFunc: method is nil but articleRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ArticleFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, filter)
}

func (mock *articleRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Filter domain.ArticleFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *articleRepoMock) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleRepoMock.CreateFunc: method is nil but articleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Article *domain.Article
	}{Ctx: ctx, Article: article}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, article)
}

func (mock *articleRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Article *domain.Article
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
