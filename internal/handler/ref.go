package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PlaceRef is a place referred to by a request. Clients either send the id of the place or the
// place itself as they received it populated. Both are reduced to the id.
type PlaceRef uint

func (p *PlaceRef) UnmarshalJSON(data []byte) error {
	id, err := unmarshalRef(data, "place")
	*p = PlaceRef(id)
	return err
}

// GroupRef is a group referred to by a request, sent as an id or as a populated group.
type GroupRef uint

func (g *GroupRef) UnmarshalJSON(data []byte) error {
	id, err := unmarshalRef(data, "group")
	*g = GroupRef(id)
	return err
}

// GroupIDs returns the ids of the referenced groups.
func GroupIDs(refs []GroupRef) []uint {
	ids := make([]uint, len(refs))
	for i, r := range refs {
		ids[i] = uint(r)
	}
	return ids
}

// unmarshalRef accepts a number, a numeric string, an object with an "id" or null. Null is 0.
func unmarshalRef(data []byte, kind string) (uint, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, nil
	}

	switch data[0] {
	case '{':
		var object struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &object); err != nil {
			return 0, fmt.Errorf("invalid %s: %v", kind, err)
		}
		if len(object.ID) == 0 || object.ID[0] == '{' {
			return 0, fmt.Errorf("invalid %s: object has no id", kind)
		}
		return unmarshalRef(object.ID, kind)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, fmt.Errorf("invalid %s: %v", kind, err)
		}
		return parseRef(s, kind)
	default:
		return parseRef(string(data), kind)
	}
}

func parseRef(s, kind string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not a valid id", kind, s)
	}
	return uint(id), nil
}
