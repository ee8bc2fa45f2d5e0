package models

import (
	"fmt"
	"reflect"
	"strings"
)

// IDField is the key under which every stored document keeps its identifier
const IDField = "_id"

// collectionNamer lets an entity override its derived collection name
type collectionNamer interface {
	CollectionName() string
}

// CollectionName returns the collection an entity is stored in.
// It is the lower-cased type name unless the entity provides its own CollectionName method.
func CollectionName(entity interface{}) string {
	if namer, ok := entity.(collectionNamer); ok {
		return namer.CollectionName()
	}
	t := reflect.TypeOf(entity)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return strings.ToLower(t.Name())
}

type hexer interface {
	Hex() string
}

// StringifyID replaces the store-native identifier of a document with its string form.
// The document is modified in place and returned for convenience.
func StringifyID(doc map[string]interface{}) map[string]interface{} {
	switch id := doc[IDField].(type) {
	case nil, string:
	case hexer:
		// ObjectID.String() wraps the value as ObjectID("..."), Hex is the plain form
		doc[IDField] = id.Hex()
	case fmt.Stringer:
		doc[IDField] = id.String()
	default:
		doc[IDField] = fmt.Sprint(id)
	}
	return doc
}
