package main

import (
	"encoding/json"
	"io"
)

// printJSON writes v to w as indented JSON. HTML escaping is off so paths
// and expressions like "a&b" or "<dir>" print as typed.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
