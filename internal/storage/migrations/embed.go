package migrations

import "embed"

// MongoFS embeds the MongoDB schema definition.
//
//go:embed mongo/*.yaml
var MongoFS embed.FS
