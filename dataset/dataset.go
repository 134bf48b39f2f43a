// Package dataset embeds the location catalog and default bookmarks shipped
// with the application.
package dataset

import (
	"bytes"
	"embed"
	"io"
)

// LocationsFile is the name of the embedded catalog CSV.
const LocationsFile = "locations.csv"

// Bundle is the read-only area shipped with the application. Besides the
// catalog it holds JSON defaults such as default_bookmarks.json.
//
//go:embed locations.csv default_bookmarks.json
var Bundle embed.FS

// Locations returns a reader over the embedded catalog CSV.
func Locations() io.Reader {
	data, err := Bundle.ReadFile(LocationsFile)
	if err != nil {
		// The file is embedded at build time.
		panic(err)
	}
	return bytes.NewReader(data)
}
