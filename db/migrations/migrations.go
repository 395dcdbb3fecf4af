package migrations

import "embed"

// FS holds the campaigns schema. Files follow the golang-migrate naming
// scheme and are read through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version this build of the service runs against.
const Version = 1
