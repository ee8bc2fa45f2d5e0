package database

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// documentRecord is the row layout used to keep documents in a relational database
type documentRecord struct {
	Seq        uint   `gorm:"primaryKey;autoIncrement"`
	DocumentID string `gorm:"uniqueIndex;size:36;not null"`
	Collection string `gorm:"index;size:128;not null"`
	Body       string `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (documentRecord) TableName() string {
	return "documents"
}

// document decodes the stored body and attaches the identifier
func (r documentRecord) document() (Document, error) {
	doc := Document{}
	if err := json.Unmarshal([]byte(r.Body), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", r.DocumentID, err)
	}
	doc["_id"] = NewDocumentID(r.DocumentID)
	return doc, nil
}

// SQLStore is a Store that keeps JSON documents in a single GORM-managed table
type SQLStore struct {
	db   *gorm.DB
	name string
	now  func() time.Time
}

// NewSQLStore creates the documents table when missing and returns the store
func NewSQLStore(db *gorm.DB, name string) (*SQLStore, error) {
	if err := db.AutoMigrate(&documentRecord{}); err != nil {
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}
	return &SQLStore{db: db, name: name, now: time.Now}, nil
}

func (s *SQLStore) CreateDocument(ctx context.Context, collection string, doc interface{}) (DocumentID, error) {
	now := s.now().UTC()
	body, err := toJSONDocument(doc, now)
	if err != nil {
		return DocumentID{}, storeError("insert", collection, err)
	}

	record := documentRecord{
		DocumentID: uuid.New().String(),
		Collection: collection,
		Body:       string(body),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return DocumentID{}, storeError("insert", collection, err)
	}
	return NewDocumentID(record.DocumentID), nil
}

func (s *SQLStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	query := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("seq")
	// Filters are evaluated on decoded bodies, so the row limit only applies without one
	if len(filter) == 0 && limit > 0 {
		query = query.Limit(int(limit))
	}

	var records []documentRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, storeError("find", collection, err)
	}

	want, err := normalizeFilter(filter)
	if err != nil {
		return nil, storeError("find", collection, err)
	}

	docs := make([]Document, 0, len(records))
	for _, record := range records {
		doc, err := record.document()
		if err != nil {
			return nil, storeError("decode", collection, err)
		}
		if !matchesFilter(doc, want) {
			continue
		}
		docs = append(docs, doc)
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
	}
	return docs, nil
}

func (s *SQLStore) ListCollections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&documentRecord{}).
		Distinct().
		Order("collection").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, storeError("list collections", "", err)
	}
	return names, nil
}

func (s *SQLStore) Name() string {
	return s.name
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return storeError("ping", "", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return storeError("ping", "", err)
	}
	return nil
}

func (s *SQLStore) Close(_ context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// toJSONDocument converts an entity into the JSON body to store, stamped with creation times
func toJSONDocument(doc interface{}, now time.Time) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	body := map[string]interface{}{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("document must encode to a JSON object: %w", err)
	}

	// The identifier is owned by the row, never by the body
	delete(body, "_id")
	body["created_at"] = now
	body["updated_at"] = now
	return json.Marshal(body)
}

// normalizeFilter gives filter values the same types decoded JSON bodies have
func normalizeFilter(filter Filter) (map[string]interface{}, error) {
	if len(filter) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return out, nil
}

func matchesFilter(doc Document, want map[string]interface{}) bool {
	for key, value := range want {
		if key == "_id" {
			if id, ok := doc[key].(DocumentID); !ok || id.String() != fmt.Sprint(value) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(doc[key], value) {
			return false
		}
	}
	return true
}
