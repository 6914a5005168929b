package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewInvocationID(t *testing.T) {
	id1 := NewInvocationID()
	id2 := NewInvocationID()

	assert.False(t, id1.IsZero(), "new ID should not be zero")
	assert.NotEqual(t, id1.String(), id2.String(), "two new IDs should be different")
}

func Test_ParseInvocationID(t *testing.T) {
	validUUID := "123e4567-e89b-12d3-a456-426614174000"

	id, err := ParseInvocationID(validUUID)
	require.NoError(t, err)
	assert.Equal(t, validUUID, id.String())
}

func Test_ParseInvocationID_Invalid(t *testing.T) {
	for _, tt := range []string{"", "invalid", "123", "not-a-uuid"} {
		t.Run(tt, func(t *testing.T) {
			_, err := ParseInvocationID(tt)
			assert.Error(t, err)
		})
	}
}

func Test_MustParseInvocationID_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustParseInvocationID("invalid")
	})
}

func Test_InvocationID_JSON(t *testing.T) {
	id := MustParseInvocationID("123e4567-e89b-12d3-a456-426614174000")

	data, err := json.Marshal(map[string]InvocationID{"id": id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"123e4567-e89b-12d3-a456-426614174000"}`, string(data))

	var decoded map[string]InvocationID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, id, decoded["id"])
}

func Test_InvocationID_ZeroValue(t *testing.T) {
	var id InvocationID
	assert.True(t, id.IsZero())
}
