package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalIDUnmarshal(t *testing.T) {
	type payload struct {
		TemplateID OptionalID `json:"scheduleTemplateId"`
	}

	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantValid bool
		wantValue string
	}{
		{
			name:      "absent field means no value",
			body:      `{}`,
			wantValid: false,
		},
		{
			name:      "null means no value",
			body:      `{"scheduleTemplateId": null}`,
			wantValid: false,
		},
		{
			name:      "empty string means no value",
			body:      `{"scheduleTemplateId": ""}`,
			wantValid: false,
		},
		{
			name:      "valid uuid is kept",
			body:      `{"scheduleTemplateId": "a2e8d9a2-48a8-4c5c-9f0a-30c1b1d6cbbf"}`,
			wantValid: true,
			wantValue: "a2e8d9a2-48a8-4c5c-9f0a-30c1b1d6cbbf",
		},
		{
			name:    "garbage is rejected",
			body:    `{"scheduleTemplateId": "not-a-uuid"}`,
			wantErr: true,
		},
		{
			name:    "non-string is rejected",
			body:    `{"scheduleTemplateId": 42}`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			err := json.Unmarshal([]byte(tc.body), &p)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantValid, p.TemplateID.Valid)
			if tc.wantValid {
				assert.Equal(t, tc.wantValue, p.TemplateID.Value)
				require.NotNil(t, p.TemplateID.Ptr())
				assert.Equal(t, tc.wantValue, *p.TemplateID.Ptr())
			} else {
				assert.Nil(t, p.TemplateID.Ptr())
			}
		})
	}
}

func TestOptionalIDMarshal(t *testing.T) {
	unset, err := json.Marshal(OptionalID{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(unset))

	set, err := json.Marshal(OptionalID{Value: "a2e8d9a2-48a8-4c5c-9f0a-30c1b1d6cbbf", Valid: true})
	require.NoError(t, err)
	assert.Equal(t, `"a2e8d9a2-48a8-4c5c-9f0a-30c1b1d6cbbf"`, string(set))
}
