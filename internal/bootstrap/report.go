package bootstrap

import (
	"log"

	"github.com/fatih/color"
)

var (
	created = color.New(color.FgGreen, color.Bold).SprintFunc()
	skipped = color.New(color.FgYellow).SprintFunc()
	success = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// PrintSummary writes the success summary for r.
func (r *Report) PrintSummary(logger *log.Logger) {
	logger.Println(success("MongoDB initialization complete!"))
	logger.Printf("Database: %s", r.Database)
	logger.Printf("Collections: %d (%d created)", len(r.Collections), len(r.Created()))
	logger.Printf("Indexes declared: %d", len(r.Indexes))
	logger.Printf("Seed price %s at %s", r.SeedID, r.SeedTimestamp.Format("2006-01-02T15:04:05.000Z07:00"))
}
