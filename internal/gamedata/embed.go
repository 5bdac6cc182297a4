// Package gamedata holds the building catalog: kinds, spawn weights and the
// decorations each building can be furnished with.
package gamedata

import "embed"

// dataFS is the catalog shipped with the binary.
//
//go:embed *.json
var dataFS embed.FS
