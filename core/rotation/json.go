package rotation

import (
	"encoding/json"
	"time"
)

// categoryStateJSON is the wire form of CategoryState; the worn set is
// persisted as a sorted name list.
type categoryStateJSON struct {
	Worn        []string  `json:"worn"`
	TotalCount  int       `json:"total_count"`
	LastUpdated time.Time `json:"last_updated"`
}

func (s CategoryState) MarshalJSON() ([]byte, error) {
	return json.Marshal(categoryStateJSON{
		Worn:        s.WornNames(),
		TotalCount:  s.TotalCount,
		LastUpdated: s.LastUpdated,
	})
}

func (s *CategoryState) UnmarshalJSON(data []byte) error {
	var wire categoryStateJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	worn := make(map[string]struct{}, len(wire.Worn))
	for _, name := range wire.Worn {
		worn[name] = struct{}{}
	}
	*s = CategoryState{
		Worn:        worn,
		TotalCount:  wire.TotalCount,
		LastUpdated: wire.LastUpdated,
	}
	return nil
}
