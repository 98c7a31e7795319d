// Package data embeds the default network dataset.
package data

import "embed"

// SampleFile is the path of the default dataset inside FS.
const SampleFile = "sample-data.json"

//go:embed sample-data.json
var FS embed.FS
