package jsonfile

import (
	"context"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/internal/infrastructure/jsonstore"
	"github.com/brainboard/backend/repository"
)

// TaskRepository stores tasks in the shared JSON document, newest first.
type TaskRepository struct {
	store *jsonstore.Store
}

func NewTaskRepository(store *jsonstore.Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	out := []domain.Task{}
	r.store.View(func(doc *jsonstore.Document) {
		for _, t := range doc.Tasks {
			if filter.Status != "" && t.Status != filter.Status {
				continue
			}
			if filter.Priority != "" && t.Priority != filter.Priority {
				continue
			}
			out = append(out, t)
		}
	})
	return out, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var found *domain.Task
	r.store.View(func(doc *jsonstore.Document) {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID == id {
				t := doc.Tasks[i]
				found = &t
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrTaskNotFound
	}
	return found, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		doc.Tasks = append([]domain.Task{*t}, doc.Tasks...)
		return nil
	})
}

func (r *TaskRepository) Update(ctx context.Context, id string, mutate func(*domain.Task)) (*domain.Task, error) {
	var updated *domain.Task
	err := r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID == id {
				mutate(&doc.Tasks[i])
				t := doc.Tasks[i]
				updated = &t
				return nil
			}
		}
		return domain.ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID == id {
				doc.Tasks = append(doc.Tasks[:i], doc.Tasks[i+1:]...)
				return nil
			}
		}
		return domain.ErrTaskNotFound
	})
}
