package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bsonPizza struct {
	Name        string  `bson:"name"`
	Description *string `bson:"description"`
	PriceSmall  float64 `bson:"price_small"`
}

func TestToBSONDocument(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	body, err := toBSONDocument(bsonPizza{Name: "Margherita", PriceSmall: 7}, now)
	require.NoError(t, err)

	assert.Equal(t, "Margherita", body["name"])
	assert.Equal(t, 7.0, body["price_small"])
	assert.Contains(t, body, "description")
	assert.Nil(t, body["description"])
	assert.Equal(t, now, body["created_at"])
	assert.Equal(t, now, body["updated_at"])
}

func TestToBSONDocumentRejectsNonDocuments(t *testing.T) {
	_, err := toBSONDocument("not a document", time.Now())
	assert.Error(t, err)
}

func TestIDFromInserted(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), idFromInserted(oid).String())
	assert.Equal(t, "custom", idFromInserted("custom").String())
	assert.Equal(t, "7", idFromInserted(int32(7)).String())
}

func TestNormalizeMap(t *testing.T) {
	oid := primitive.NewObjectID()
	when := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

	doc := normalizeMap(bson.M{
		"_id":        oid,
		"created_at": primitive.NewDateTimeFromTime(when),
		"items": bson.A{
			bson.M{"name": "Margherita", "quantity": int32(2)},
			bson.D{{Key: "name", Value: "Pepperoni"}},
		},
		"customer": bson.D{{Key: "name", Value: "Jane"}},
	})

	assert.Equal(t, oid, doc["_id"])
	assert.Equal(t, when, doc["created_at"])

	items, ok := doc["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, map[string]interface{}{"name": "Margherita", "quantity": int32(2)}, items[0])
	assert.Equal(t, map[string]interface{}{"name": "Pepperoni"}, items[1])
	assert.Equal(t, map[string]interface{}{"name": "Jane"}, doc["customer"])
}
