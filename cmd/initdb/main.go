// Package main initializes the gorrillazz MongoDB database:
// collections, secondary indexes and the initial GORR price.
// It is run once per deployment and takes no arguments.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload" // load .env if present

	"gorrillazz-bootstrap/internal/bootstrap"
	"gorrillazz-bootstrap/internal/config"
	"gorrillazz-bootstrap/internal/observability"
	"gorrillazz-bootstrap/internal/storage/migrations"
	mongostore "gorrillazz-bootstrap/internal/storage/mongo"
)

func main() {
	logger := log.New(os.Stdout, "[initdb] ", log.LstdFlags)

	if len(os.Args) > 1 {
		logger.Fatalf("Unexpected arguments %q: initdb takes no arguments, configure it with MONGODB_URI", os.Args[1:])
	}

	if err := run(context.Background(), logger); err != nil {
		logger.Fatalf("Error: %v", err)
	}
}

func run(ctx context.Context, logger *log.Logger) (err error) {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics("")
	if cfg.MetricsFile != "" {
		defer func() {
			metrics.RecordRun(start, time.Now(), err)
			if werr := metrics.WriteTextfile(cfg.MetricsFile); werr != nil {
				logger.Printf("Failed to write metrics: %v", werr)
			}
		}()
	}

	schema, err := migrations.LoadSchema()
	if err != nil {
		return err
	}

	client, err := mongostore.Connect(ctx, cfg.MongoURI, schema.Database)
	if err != nil {
		return err
	}
	closed := false
	defer func() {
		if !closed {
			_ = client.Close(ctx)
		}
	}()

	report, err := bootstrap.New(bootstrap.Options{
		DB:      client.DB(),
		Schema:  schema,
		Metrics: metrics,
		Logger:  logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	closed = true
	if err := client.Close(ctx); err != nil {
		return fmt.Errorf("close connection: %w", err)
	}

	report.PrintSummary(logger)
	logger.Println("Gorrillazz platform is ready to launch!")
	return nil
}
