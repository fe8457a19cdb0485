package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalStringAndNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ID
	}{
		{"string id", `"42"`, ID("42")},
		{"numeric id", `42`, ID("42")},
		{"large numeric id keeps digits", `9007199254740993`, ID("9007199254740993")},
		{"null is empty", `null`, ID("")},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tc.input), &id))
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestID_UnmarshalRejectsNonScalar(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &id))
}

func TestLostItem_NumericIDDecodes(t *testing.T) {
	data := []byte(`{"id": 7, "title": "Phone"}`)

	var item LostItem
	require.NoError(t, json.Unmarshal(data, &item))
	assert.Equal(t, ID("7"), item.ID)
	assert.Equal(t, "Phone", item.Title)
}
