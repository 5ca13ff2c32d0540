//go:build !stdjson

package json

import json "github.com/goccy/go-json"

// Implementation is a string representation of the JSON implementation used
const Implementation = "goccy/go-json"

var (
	// Marshal is a JSON marshal function
	Marshal = json.Marshal
	// Unmarshal is a JSON unmarshal function
	Unmarshal = json.Unmarshal
	// NewEncoder creates a new JSON encoder
	NewEncoder = json.NewEncoder
	// NewDecoder creates a new JSON decoder
	NewDecoder = json.NewDecoder
	// MarshalIndent is a JSON marshal indent function
	MarshalIndent = json.MarshalIndent
	// Valid reports whether data is a valid JSON encoding
	Valid = json.Valid
)

// RawMessage is a raw encoded JSON value
type RawMessage = json.RawMessage

// Number represents a JSON number literal
type Number = json.Number
