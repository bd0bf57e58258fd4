// Package migrations ships the launch ledger schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects. Bump it with every new
// migration pair.
const Version = 1
