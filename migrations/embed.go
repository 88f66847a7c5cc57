// Package migrations holds the embedded schema migrations, one directory
// per logical database this service owns. The ledger and bank databases
// are migrated by their owning services and have no directory here.
package migrations

import "embed"

//go:embed payinmaindb/*.sql payinpaymentdb/*.sql payoutmaindb/*.sql
var FS embed.FS
