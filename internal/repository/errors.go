// Package repository defines error types that are reused across the
// dataset repositories.  These sentinel values let higher layers such as
// the catalog and the handlers tell a broken data source apart from an
// empty one.
package repository

import "errors"

// ErrEmptyCatalog is returned when a source yields no dinosaurs or no
// ticket types.  The service refuses to start on an empty catalog and a
// reload that hits it keeps the previous snapshot.
var ErrEmptyCatalog = errors.New("empty catalog")
