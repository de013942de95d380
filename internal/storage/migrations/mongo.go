package migrations

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB error codes
const (
	mongoErrNamespaceExists = 48 // NamespaceExists
)

// CollectionResult reports what EnsureCollections did for one collection.
type CollectionResult struct {
	Name    string
	Created bool
}

// IndexResult reports an index declared on a collection.
type IndexResult struct {
	Collection string
	Name       string
}

// EnsureCollections creates every schema collection missing from db.
// Existing collections are left untouched.
func EnsureCollections(ctx context.Context, db *mongo.Database, schema *Schema) ([]CollectionResult, error) {
	existing, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}

	results := make([]CollectionResult, 0, len(schema.Collections))
	for _, c := range schema.Collections {
		if present[c.Name] {
			results = append(results, CollectionResult{Name: c.Name})
			continue
		}

		if err := db.CreateCollection(ctx, c.Name); err != nil {
			// Created by a concurrent run after the listing.
			if isNamespaceExists(err) {
				results = append(results, CollectionResult{Name: c.Name})
				continue
			}
			return results, fmt.Errorf("create collection %s: %w", c.Name, err)
		}
		results = append(results, CollectionResult{Name: c.Name, Created: true})
	}

	return results, nil
}

// EnsureIndexes declares every schema index, collection by collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database, schema *Schema) ([]IndexResult, error) {
	results := make([]IndexResult, 0, schema.IndexCount())
	for _, c := range schema.Collections {
		declared, err := EnsureCollectionIndexes(ctx, db, c)
		results = append(results, declared...)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// EnsureCollectionIndexes declares the indexes of one collection. Declaring
// an index identical to an existing one is a no-op on the server; a
// conflicting index (same key, different options) fails with the driver's
// error.
func EnsureCollectionIndexes(ctx context.Context, db *mongo.Database, c CollectionSchema) ([]IndexResult, error) {
	view := db.Collection(c.Name).Indexes()
	results := make([]IndexResult, 0, len(c.Indexes))
	for _, spec := range c.Indexes {
		name, err := view.CreateOne(ctx, IndexModel(spec))
		if err != nil {
			return results, fmt.Errorf("create index %s on %s: %w", spec.Name(), c.Name, err)
		}
		results = append(results, IndexResult{Collection: c.Name, Name: name})
	}
	return results, nil
}

// IndexModel converts spec into the driver's index model.
func IndexModel(spec IndexSpec) mongo.IndexModel {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: spec.Field, Value: spec.Direction()}},
	}

	if spec.Unique || spec.Sparse {
		opts := options.Index()
		if spec.Unique {
			opts.SetUnique(true)
		}
		if spec.Sparse {
			opts.SetSparse(true)
		}
		model.Options = opts
	}
	return model
}

func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == mongoErrNamespaceExists
	}
	return false
}
