// Package layout provides the embedded labyrinth definition and utilities for
// loading it.
package layout

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
