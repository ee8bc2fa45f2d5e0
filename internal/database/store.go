package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Document is a stored record as returned by a Store.
// Its identifier lives under the "_id" key in the store-native type.
type Document map[string]interface{}

// Filter is an equality filter on top-level document fields; nil matches every document
type Filter map[string]interface{}

// DocumentID is the opaque identifier a Store assigns to an inserted document
type DocumentID struct {
	value string
}

// NewDocumentID wraps the string form of a store identifier
func NewDocumentID(value string) DocumentID {
	return DocumentID{value: value}
}

func (id DocumentID) String() string {
	return id.value
}

// IsZero reports whether the identifier is empty
func (id DocumentID) IsZero() bool {
	return id.value == ""
}

func (id DocumentID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// Store is a generic document database addressed by collection name
type Store interface {
	// CreateDocument serializes doc, inserts it into collection and returns the generated identifier
	CreateDocument(ctx context.Context, collection string, doc interface{}) (DocumentID, error)
	// GetDocuments returns the documents of collection matching filter, at most limit of them when limit > 0
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)
	// ListCollections returns the names of the collections holding documents
	ListCollections(ctx context.Context) ([]string, error)
	// Name returns the database name
	Name() string
	// Ping checks that the database is reachable
	Ping(ctx context.Context) error
	// Close releases the underlying connection
	Close(ctx context.Context) error
}

// ErrStoreUnavailable is returned when no database is configured
var ErrStoreUnavailable = errors.New("database not available")

// StoreError wraps any failure reported by the underlying database
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op, collection string, err error) error {
	return &StoreError{Op: op, Collection: collection, Err: err}
}
