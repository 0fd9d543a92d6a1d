package jsonfile

import (
	"context"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/internal/infrastructure/jsonstore"
)

// SearchItemRepository stores the auxiliary search catalog. Unlike the other
// collections it appends at the end and assigns sequential integer ids.
type SearchItemRepository struct {
	store *jsonstore.Store
}

func NewSearchItemRepository(store *jsonstore.Store) *SearchItemRepository {
	return &SearchItemRepository{store: store}
}

func (r *SearchItemRepository) List(ctx context.Context) ([]domain.SearchItem, error) {
	out := []domain.SearchItem{}
	r.store.View(func(doc *jsonstore.Document) {
		out = append(out, doc.SearchData...)
	})
	return out, nil
}

// Create assigns the next id (max existing id + 1) and appends the item.
func (r *SearchItemRepository) Create(ctx context.Context, item *domain.SearchItem) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		maxID := 0
		for _, existing := range doc.SearchData {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		item.ID = maxID + 1
		doc.SearchData = append(doc.SearchData, *item)
		return nil
	})
}

func (r *SearchItemRepository) Delete(ctx context.Context, id int) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.SearchData {
			if doc.SearchData[i].ID == id {
				doc.SearchData = append(doc.SearchData[:i], doc.SearchData[i+1:]...)
				return nil
			}
		}
		return domain.ErrSearchItemNotFound
	})
}
