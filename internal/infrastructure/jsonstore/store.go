package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/brainboard/backend/domain"
)

// Document is the complete persisted state: four collections serialized as a
// single JSON object. Every write rewrites the whole document, so the four
// collections always land on disk together.
type Document struct {
	Notifications []domain.Notification `json:"notifications"`
	Messages      []domain.Message      `json:"messages"`
	Tasks         []domain.Task         `json:"tasks"`
	SearchData    []domain.SearchItem   `json:"searchData"`
}

// PersistStats describes the persistence health surfaced by the health endpoint.
type PersistStats struct {
	Path        string     `json:"path"`
	Persists    int        `json:"persists"`
	Failures    int        `json:"failures"`
	LastPersist *time.Time `json:"lastPersist,omitempty"`
	LastError   string     `json:"lastError,omitempty"`
}

// Store is the in-memory mirror of the document plus full-overwrite
// persistence. A single mutex serializes every mutation together with its
// persist, so no partial state is ever observable or written.
type Store struct {
	path   string
	logger *zap.Logger

	mu    sync.Mutex
	doc   Document
	stats PersistStats
}

// Open loads the document from path. A missing or unparseable file is not an
// error: the store starts from four empty collections and logs what happened.
func Open(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		path:   path,
		logger: logger,
		stats:  PersistStats{Path: path},
	}
	s.doc = s.load()
	return s
}

func (s *Store) load() Document {
	empty := Document{
		Notifications: []domain.Notification{},
		Messages:      []domain.Message{},
		Tasks:         []domain.Task{},
		SearchData:    []domain.SearchItem{},
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("failed to read data file, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return empty
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Error("failed to parse data file, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return empty
	}

	// Keep the collections non-nil so the document always serializes as
	// four arrays.
	if doc.Notifications == nil {
		doc.Notifications = []domain.Notification{}
	}
	if doc.Messages == nil {
		doc.Messages = []domain.Message{}
	}
	if doc.Tasks == nil {
		doc.Tasks = []domain.Task{}
	}
	if doc.SearchData == nil {
		doc.SearchData = []domain.SearchItem{}
	}
	return doc
}

// View runs fn with a read-only view of the document.
func (s *Store) View(fn func(doc *Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.doc)
}

// Update runs fn against the document and, if fn succeeds, persists the whole
// document. A persist failure is logged and counted but not returned: the
// in-memory mutation stands and callers report success, accepting that memory
// and disk can diverge until the next successful write.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.doc); err != nil {
		return err
	}
	s.persistLocked()
	return nil
}

func (s *Store) persistLocked() {
	payload, err := json.MarshalIndent(s.doc, "", "  ")
	if err == nil {
		if dir := filepath.Dir(s.path); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		err = os.WriteFile(s.path, payload, 0o644)
	}
	if err != nil {
		s.stats.Failures++
		s.stats.LastError = err.Error()
		s.logger.Error("failed to persist data file",
			zap.String("path", s.path), zap.Error(err))
		return
	}
	now := time.Now()
	s.stats.Persists++
	s.stats.LastPersist = &now
	s.stats.LastError = ""
}

// Stats returns a snapshot of the persistence counters.
func (s *Store) Stats() PersistStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Close flushes the current document to disk one last time.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked()
	if s.stats.LastError != "" {
		return domain.NewError(domain.ErrCodeInternal, s.stats.LastError)
	}
	return nil
}
