package filter

import (
	"encoding/json"
	"fmt"
	"time"
)

// Item is the view of a resource a filter sees: its JSON document, with
// timestamps decoded to time.Time so they compare against date helpers.
type Item map[string]any

// ToItem converts any JSON-shaped value, typically a resource struct of a
// manager client, to an Item.
func ToItem(v any) (Item, error) {
	if item, ok := v.(Item); ok {
		return item, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("item is not a JSON object: %w", err)
	}

	return Item(convertTimes(doc).(map[string]any)), nil
}

// Name returns the display name of the item, empty when it has none
func (i Item) Name() string {
	for _, key := range []string{"title", "artistName", "authorName", "name", "label"} {
		if s, ok := i[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// zeroTime is how the managers encode an unset date
var zeroTime = time.Time{}

func convertTimes(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			val[k] = convertTimes(child)
		}
		return val
	case []any:
		for i, child := range val {
			val[i] = convertTimes(child)
		}
		return val
	case string:
		// Only full timestamps, so titles like "1984" stay strings.
		if len(val) < len("2006-01-02T15:04:05Z") {
			return val
		}
		if t, err := time.Parse(time.RFC3339Nano, val); err == nil {
			if t.Equal(zeroTime) {
				return nil
			}
			return t
		}
		return val
	default:
		return v
	}
}
