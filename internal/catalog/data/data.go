// Package data carries the embedded inventory snapshots the static
// catalog adapter serves.
package data

import _ "embed"

//go:embed flights.json
var Flights []byte

//go:embed airports.json
var Airports []byte

//go:embed hotels.json
var Hotels []byte
