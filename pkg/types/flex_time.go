package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FlexTime accepts either an RFC 3339 timestamp or a bare YYYY-MM-DD date in
// JSON. Clients send expiry dates in both shapes.
type FlexTime struct {
	time.Time
}

var flexTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex time: expected a string, got %s", string(data))
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("flex time: empty value")
	}
	for _, layout := range flexTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("flex time: unrecognized value %q", raw)
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339))
}
