package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore is a Store backed by a MongoDB database
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// NewMongoStore creates the MongoDB client for cfg. No round trip to the server is made.
func NewMongoStore(ctx context.Context, cfg DatabaseConfig) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(cfg.DSN()).
		SetServerSelectionTimeout(pingTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(cfg.Name),
		now:    time.Now,
	}, nil
}

func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc interface{}) (DocumentID, error) {
	body, err := toBSONDocument(doc, s.now().UTC())
	if err != nil {
		return DocumentID{}, storeError("insert", collection, err)
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, body)
	if err != nil {
		return DocumentID{}, storeError("insert", collection, err)
	}
	return idFromInserted(res.InsertedID), nil
}

func (s *MongoStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	query := bson.M{}
	if filter != nil {
		query = bson.M(filter)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, query, findOptions)
	if err != nil {
		return nil, storeError("find", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, storeError("decode", collection, err)
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, Document(normalizeMap(m)))
	}
	return docs, nil
}

func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, storeError("list collections", "", err)
	}
	return names, nil
}

func (s *MongoStore) Name() string {
	return s.db.Name()
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return storeError("ping", "", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// toBSONDocument converts an entity into the document to insert, stamped with creation times
func toBSONDocument(doc interface{}, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	var body bson.M
	if err := bson.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	body["created_at"] = now
	body["updated_at"] = now
	return body, nil
}

func idFromInserted(id interface{}) DocumentID {
	switch v := id.(type) {
	case primitive.ObjectID:
		return NewDocumentID(v.Hex())
	case string:
		return NewDocumentID(v)
	case fmt.Stringer:
		return NewDocumentID(v.String())
	default:
		return NewDocumentID(fmt.Sprint(v))
	}
}

// normalizeMap turns driver container types into plain maps and slices so documents
// serialize to JSON the same way regardless of the adapter. Identifiers are kept as is.
func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v interface{}) interface{} {
	switch value := v.(type) {
	case bson.M:
		return normalizeMap(value)
	case map[string]interface{}:
		return normalizeMap(value)
	case bson.D:
		out := make(map[string]interface{}, len(value))
		for _, elem := range value {
			out[elem.Key] = normalizeValue(elem.Value)
		}
		return out
	case bson.A:
		out := make([]interface{}, 0, len(value))
		for _, elem := range value {
			out = append(out, normalizeValue(elem))
		}
		return out
	case primitive.DateTime:
		return value.Time().UTC()
	default:
		return v
	}
}
