package content

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Announcements accepts both published shapes: a bare list of items or an
// object wrapping the list under "items".
type Announcements struct {
	Items []*Announcement
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Announcements) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &a.Items)
	}
	var wrapped struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	// A wrapper whose items is not a list counts as empty.
	items := bytes.TrimSpace(wrapped.Items)
	if len(items) == 0 || items[0] != '[' {
		a.Items = nil
		return nil
	}
	return json.Unmarshal(items, &a.Items)
}

// MarshalJSON always writes the wrapped shape.
func (a Announcements) MarshalJSON() ([]byte, error) {
	items := a.Items
	if items == nil {
		items = []*Announcement{}
	}
	return json.Marshal(struct {
		Items []*Announcement `json:"items"`
	}{items})
}

// Len reports the number of items, nil-safe.
func (a *Announcements) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Items)
}

// Sorted returns the items newest first by date string. Items with equal
// dates keep their input order. The returned slice shares item pointers with
// the receiver.
func (a *Announcements) Sorted() []*Announcement {
	if a == nil {
		return nil
	}
	out := make([]*Announcement, 0, len(a.Items))
	for _, it := range a.Items {
		if it != nil {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
