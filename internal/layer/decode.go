package layer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonLayer mirrors Layer for (un)marshaling, with the polymorphic "points"
// field carried as raw JSON so the two persisted forms can be told apart.
type jsonLayer struct {
	*layerAlias
	Points json.RawMessage `json:"points,omitempty"`
}

// layerAlias strips Layer's methods so the default codec handles the plain
// fields without recursing into UnmarshalJSON.
type layerAlias Layer

// UnmarshalJSON decodes a persisted layer record. It resolves the
// polymorphic "points" field (vertex array for polygon/path, numeric count
// for star) and applies legacy type inference, both exactly once, here at
// the boundary.
func (l *Layer) UnmarshalJSON(data []byte) error {
	aux := jsonLayer{layerAlias: (*layerAlias)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if err := l.decodePoints(aux.Points); err != nil {
		return err
	}
	l.Normalize()
	return nil
}

// MarshalJSON re-emits the record with "points" in whichever form the layer
// carries, so a decoded layer round-trips through the same field set.
func (l *Layer) MarshalJSON() ([]byte, error) {
	aux := jsonLayer{layerAlias: (*layerAlias)(l)}
	switch {
	case l.Points != nil:
		raw, err := json.Marshal(l.Points)
		if err != nil {
			return nil, err
		}
		aux.Points = raw
	case l.PointCount != nil:
		raw, err := json.Marshal(*l.PointCount)
		if err != nil {
			return nil, err
		}
		aux.Points = raw
	}
	return json.Marshal(aux)
}

// decodePoints splits the persisted "points" field into Points (vertex
// array) or PointCount (star point count). Anything else is a malformed
// record and rejected outright: that is a caller contract violation, not a
// data-quality condition the kernel absorbs.
func (l *Layer) decodePoints(raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &l.Points)
	}
	var count float64
	if err := json.Unmarshal(trimmed, &count); err != nil {
		return fmt.Errorf("layer %q: points is neither a vertex array nor a count: %w", l.ID, err)
	}
	l.PointCount = &count
	return nil
}

// Parse decodes a single layer record from JSON.
func Parse(data []byte) (*Layer, error) {
	var l Layer
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode layer: %w", err)
	}
	return &l, nil
}

// ParseList decodes an ordered layer collection from a JSON array. Order is
// preserved: it is the order the layer store supplies, and the order the
// hit-test stage iterates in.
func ParseList(data []byte) ([]*Layer, error) {
	var layers []*Layer
	if err := json.Unmarshal(data, &layers); err != nil {
		return nil, fmt.Errorf("failed to decode layer list: %w", err)
	}
	return layers, nil
}
