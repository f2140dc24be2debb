package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Payload wraps the raw profile document bytes and their origin. Loaders
// return a Payload; Decode turns it into the typed Document.
type Payload struct {
	source Source
	raw    []byte
}

// NewPayload constructs a Payload wrapper while validating the inputs.
func NewPayload(src Source, raw []byte) (Payload, error) {
	if src == nil {
		return Payload{}, errors.New("profile: source is required")
	}
	if len(raw) == 0 {
		return Payload{}, errors.New("profile: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Payload{source: src, raw: clone}, nil
}

// MustNewPayload panics if the payload cannot be created. Useful for tests.
func MustNewPayload(src Source, raw []byte) Payload {
	p, err := NewPayload(src, raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the origin metadata for the payload.
func (p Payload) Source() Source {
	return p.source
}

// Raw returns a copy of the document bytes; the payload stays immutable.
func (p Payload) Raw() []byte {
	return append([]byte(nil), p.raw...)
}

// Location returns the string identifier for the origin.
func (p Payload) Location() string {
	if p.source == nil {
		return ""
	}
	return p.source.Location()
}

// Decode unmarshals the payload into the typed Document. Unknown fields are
// ignored so the document schema can grow without breaking older data files.
func (p Payload) Decode() (Document, error) {
	if len(p.raw) == 0 {
		return Document{}, errors.New("profile: payload is empty")
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(p.raw))
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("profile: decode document: %w", err)
	}
	return doc, nil
}
