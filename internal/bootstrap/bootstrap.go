// Package bootstrap prepares an empty or partially initialized gorrillazz
// database: collections, secondary indexes and the seed price record.
// Flow: collections → indexes → seed price
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"gorrillazz-bootstrap/internal/domain"
	"gorrillazz-bootstrap/internal/observability"
	"gorrillazz-bootstrap/internal/storage"
	"gorrillazz-bootstrap/internal/storage/migrations"
	mongostore "gorrillazz-bootstrap/internal/storage/mongo"
)

// Bootstrapper runs the initialization steps against one database.
// Every step except the seed insert is idempotent; there is no
// transaction across steps, so a failed run can simply be repeated.
type Bootstrapper struct {
	db         *mongo.Database
	schema     *migrations.Schema
	priceStore storage.PriceStore
	metrics    *observability.Metrics
	logger     *log.Logger
	now        func() time.Time
}

// Options for creating Bootstrapper.
type Options struct {
	// Required
	DB     *mongo.Database
	Schema *migrations.Schema

	// Optional
	PriceStore storage.PriceStore     // defaults to the MongoDB store on DB
	Metrics    *observability.Metrics // nil disables metrics
	Logger     *log.Logger            // nil discards status output
	Now        func() time.Time       // defaults to time.Now
}

// New creates a new Bootstrapper.
func New(opts Options) *Bootstrapper {
	b := &Bootstrapper{
		db:         opts.DB,
		schema:     opts.Schema,
		priceStore: opts.PriceStore,
		metrics:    opts.Metrics,
		logger:     opts.Logger,
		now:        opts.Now,
	}
	if b.priceStore == nil && b.db != nil {
		b.priceStore = mongostore.NewPriceStore(b.db)
	}
	if b.logger == nil {
		b.logger = log.New(io.Discard, "", 0)
	}
	if b.now == nil {
		b.now = time.Now
	}
	return b
}

// Report describes what a run did.
type Report struct {
	Database      string
	Collections   []migrations.CollectionResult
	Indexes       []migrations.IndexResult
	SeedID        string
	SeedTimestamp time.Time
}

// Created returns the names of collections created by the run.
func (r *Report) Created() []string {
	var names []string
	for _, c := range r.Collections {
		if c.Created {
			names = append(names, c.Name)
		}
	}
	return names
}

// Run executes the initialization steps in order and stops at the first error.
// Steps:
//  1. Create missing collections
//  2. Declare indexes per collection
//  3. Insert the seed price
func (b *Bootstrapper) Run(ctx context.Context) (*Report, error) {
	if b.db == nil || b.schema == nil {
		return nil, fmt.Errorf("bootstrap: database and schema are required")
	}

	report := &Report{Database: b.db.Name()}
	b.logger.Printf("Initializing %s MongoDB database...", report.Database)

	// Step 1: Collections
	collections, err := migrations.EnsureCollections(ctx, b.db, b.schema)
	for _, c := range collections {
		b.logCollection(c)
		if b.metrics != nil {
			b.metrics.RecordCollection(c.Created)
		}
	}
	report.Collections = collections
	if err != nil {
		return report, fmt.Errorf("step 1 (collections) failed: %w", err)
	}

	// Step 2: Indexes
	for _, c := range b.schema.Collections {
		b.logger.Printf("Creating indexes for %s...", c.Name)
		indexes, err := migrations.EnsureCollectionIndexes(ctx, b.db, c)
		report.Indexes = append(report.Indexes, indexes...)
		if b.metrics != nil {
			for _, idx := range indexes {
				b.metrics.RecordIndex(idx.Collection)
			}
		}
		if err != nil {
			return report, fmt.Errorf("step 2 (indexes) failed: %w", err)
		}
	}

	// Step 3: Seed price
	b.logger.Println("Setting initial GORR price...")
	seed := domain.NewSeedPrice(b.now())
	id, err := b.priceStore.Insert(ctx, seed)
	if err != nil {
		return report, fmt.Errorf("step 3 (seed price) failed: %w", err)
	}
	report.SeedID = id
	report.SeedTimestamp = seed.Timestamp
	if b.metrics != nil {
		b.metrics.RecordSeed()
	}

	return report, nil
}

func (b *Bootstrapper) logCollection(c migrations.CollectionResult) {
	if c.Created {
		b.logger.Printf("%s collection: %s", created("Created"), c.Name)
		return
	}
	b.logger.Printf("%s collection already exists: %s", skipped("Skipped"), c.Name)
}
