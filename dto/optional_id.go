package dto

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// OptionalID is a reference field that may legitimately be absent.
// Absent, null and empty-string input all decode to "no value"; anything
// else must parse as a UUID.
type OptionalID struct {
	Value string
	Valid bool
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || *raw == "" {
		*o = OptionalID{}
		return nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return fmt.Errorf("invalid reference id %q: %w", *raw, err)
	}
	*o = OptionalID{Value: id.String(), Valid: true}
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the id as a nullable string for storage
func (o OptionalID) Ptr() *string {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
