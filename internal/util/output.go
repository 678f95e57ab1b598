package util

import (
	"encoding/json"
	"fmt"
	"io"
)

// Envelope is the payload shape used for every --json response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PrintJSON writes the provided value as indented JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// StructuredResult builds the envelope for a JSON response.
func StructuredResult(success bool, message string, data interface{}) Envelope {
	return Envelope{Success: success, Message: message, Data: data}
}

// PrintLines prints each string on a new line.
func PrintLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
