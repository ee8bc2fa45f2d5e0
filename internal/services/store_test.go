package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeStore keeps documents in memory and counts calls so tests can assert on side effects
type fakeStore struct {
	mu      sync.Mutex
	docs    map[string][]database.Document
	inserts int
	finds   int
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string][]database.Document{}}
}

func (s *fakeStore) CreateDocument(_ context.Context, collection string, doc interface{}) (database.DocumentID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return database.DocumentID{}, s.err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return database.DocumentID{}, err
	}
	stored := database.Document{}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return database.DocumentID{}, err
	}

	s.inserts++
	id := database.NewDocumentID(fmt.Sprintf("id-%d", s.inserts))
	stored["_id"] = id
	s.docs[collection] = append(s.docs[collection], stored)
	return id, nil
}

func (s *fakeStore) GetDocuments(_ context.Context, collection string, _ database.Filter, limit int64) ([]database.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finds++
	if s.err != nil {
		return nil, s.err
	}

	docs := make([]database.Document, 0, len(s.docs[collection]))
	for _, d := range s.docs[collection] {
		copied := database.Document{}
		for k, v := range d {
			copied[k] = v
		}
		docs = append(docs, copied)
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
	}
	return docs, nil
}

func (s *fakeStore) ListCollections(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	return names, nil
}

func (s *fakeStore) Name() string { return "fake" }

func (s *fakeStore) Ping(context.Context) error { return s.err }

func (s *fakeStore) Close(context.Context) error { return nil }

// setupSQLiteStore opens a private in-memory SQLite document store
func setupSQLiteStore(t *testing.T) database.Store {
	t.Helper()
	cfg, err := database.NewDatabaseConfig("file:"+uuid.New().String()+"?mode=memory&cache=shared", "test")
	require.NoError(t, err)

	store, err := database.InitDatabase(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}
