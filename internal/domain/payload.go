package domain

import (
	"bytes"
	"encoding/json"
	"maps"
)

// StatusKey is the reserved payload field that carries an entity's
// operational status in proposals.
const StatusKey = "status"

// Payload is a type-specific JSON object describing a governed entity.
type Payload map[string]any

// Clone returns a shallow copy of p. Nested values are shared.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

// Merge returns a copy of p with the top-level fields of patch written over it.
func (p Payload) Merge(patch Payload) Payload {
	out := make(Payload, len(p)+len(patch))
	maps.Copy(out, p)
	maps.Copy(out, patch)
	return out
}

// Status returns the reserved status field if present and valid.
func (p Payload) Status() (EntityStatus, bool) {
	raw, ok := p[StatusKey].(string)
	if !ok {
		return "", false
	}
	s := EntityStatus(raw)
	return s, s.IsValid()
}

// Canonical returns the canonical JSON encoding of p. encoding/json sorts map
// keys, so equal payloads encode to equal bytes.
func (p Payload) Canonical() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return json.Marshal(p)
}

// Equal reports whether two payloads have identical canonical encodings.
// Numbers decoded from JSON are float64 on both sides, so 1 and 1.0 match.
func (p Payload) Equal(other Payload) bool {
	a, err := normalize(p).Canonical()
	if err != nil {
		return false
	}
	b, err := normalize(other).Canonical()
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// normalize round-trips p through JSON so that Go-typed values (ints, structs)
// compare equal to their decoded counterparts.
func normalize(p Payload) Payload {
	if p == nil {
		return nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return p
	}
	var out Payload
	if err := json.Unmarshal(raw, &out); err != nil {
		return p
	}
	return out
}
