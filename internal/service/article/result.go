package article

import "github.com/heartmarshall/lingreader-backend/internal/domain"

// ListResult is one page of an article listing plus the total match count
// across all pages.
type ListResult struct {
	Articles []domain.SimpleArticle
	Total    int
}
