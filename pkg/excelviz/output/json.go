// Package output serializes analysis results.
package output

import (
	"encoding/json"
	"os"
)

// ToJSON encodes v, indented with two spaces when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteFile encodes v and writes it to path with a trailing newline.
func WriteFile(path string, v interface{}, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
