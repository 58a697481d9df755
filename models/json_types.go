package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// WeekList custom type for JSON storage of testing intervals (week numbers)
type WeekList []int

func (w WeekList) Value() (driver.Value, error) {
	if w == nil {
		w = WeekList{}
	}
	return json.Marshal(w)
}

func (w *WeekList) Scan(value interface{}) error {
	return scanJSON(value, w)
}

// JSONPayload stores an opaque JSON document supplied by the client.
// Cycle definitions come in more than one shape (day-indexed entries
// and freeze/thaw hour counts), so the column keeps whatever was
// written and returns it unchanged.
type JSONPayload []byte

func (p JSONPayload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

func (p *JSONPayload) UnmarshalJSON(data []byte) error {
	if p == nil {
		return errors.New("models.JSONPayload: UnmarshalJSON on nil pointer")
	}
	if string(data) == "null" {
		*p = nil
		return nil
	}
	*p = append((*p)[0:0], data...)
	return nil
}

func (p JSONPayload) Value() (driver.Value, error) {
	if len(p) == 0 || string(p) == "null" {
		return nil, nil
	}
	return []byte(p), nil
}

func (p *JSONPayload) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*p = append((*p)[0:0], v...)
	case string:
		*p = JSONPayload(v)
	default:
		return errors.New("type assertion to []byte failed")
	}
	return nil
}

// scanJSON unmarshals a database value into dest, accepting both the
// []byte the postgres driver returns and the string sqlite may return
func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, dest)
}
