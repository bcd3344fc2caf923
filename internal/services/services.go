// package services implements the HTTP client for the Spotify Web API
package services

import (
	"encoding/json"
	"fmt"

	"github.com/desertthunder/spotify-backup/internal/shared"
)

// Object is one decoded JSON object with keyed access to its members.
//
// Members stay undecoded until a caller asks for them, so a page can be walked without knowing the shape of its items.
type Object map[string]json.RawMessage

// Object returns the member at key as an [Object].
//
// Missing, null and non-object members all yield an empty Object.
func (o Object) Object(key string) Object {
	raw, ok := o[key]
	if !ok {
		return Object{}
	}

	var sub Object
	if err := json.Unmarshal(raw, &sub); err != nil || sub == nil {
		return Object{}
	}
	return sub
}

// Items returns the "items" member of a page. Missing, null and non-array members yield an empty slice.
func (o Object) Items() []json.RawMessage {
	raw, ok := o["items"]
	if !ok {
		return []json.RawMessage{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []json.RawMessage{}
	}
	return items
}

// Next returns the cursor of the following page, or "" when the page is the last one.
func (o Object) Next() string {
	raw, ok := o["next"]
	if !ok {
		return ""
	}

	var next *string
	if err := json.Unmarshal(raw, &next); err != nil || next == nil {
		return ""
	}
	return *next
}

// Decode unmarshals the whole object into v.
func (o Object) Decode(v any) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// DecodeItems unmarshals each raw item into a T, keeping order.
func DecodeItems[T any](items []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, raw := range items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: failed to decode item %d: %v", shared.ErrAPIRequest, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
