package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// decodeJSONColumn unmarshals a JSON column into dst. Legacy rows written
// by the old admin panel sometimes hold a JSON string that itself contains
// encoded JSON, so if the first pass yields a quoted string we decode once
// more. dst is left untouched when the column is empty or unparseable.
func decodeJSONColumn(col datatypes.JSON, dst any) {
	raw := []byte(col)
	if len(raw) == 0 {
		return
	}

	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = []byte(inner)
	}

	_ = json.Unmarshal(raw, dst)
}

func decodeStringList(col datatypes.JSON) []string {
	out := []string{}
	decodeJSONColumn(col, &out)
	return out
}

// MustJSON marshals v into a JSON column value, falling back to an empty
// array so a bad value never writes SQL NULL into a NOT NULL column.
func MustJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}
