package repository

import (
	"context"

	"github.com/brainboard/backend/domain"
)

// SearchItemRepository manages the auxiliary search catalog. Ids are
// sequential integers assigned by the repository on create.
type SearchItemRepository interface {
	List(ctx context.Context) ([]domain.SearchItem, error)
	Create(ctx context.Context, item *domain.SearchItem) error
	Delete(ctx context.Context, id int) error
}
