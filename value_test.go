package martindb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueEquality(t *testing.T) {
	assert.Equal(t, NewInt(1), NewInt(1))
	assert.NotEqual(t, NewInt(1), NewInt(2))
	assert.Equal(t, NewText("a"), NewText("a"))

	// Variants never compare equal across kinds.
	assert.NotEqual(t, NewInt(1), NewText("1"))
	assert.NotEqual(t, Null, NewText(""))
	assert.NotEqual(t, Null, NewInt(0))

	// Comparable, so usable directly as a map key.
	set := map[Value]struct{}{NewInt(1): {}}
	_, ok := set[NewInt(1)]
	assert.True(t, ok)
	_, ok = set[NewText("1")]
	assert.False(t, ok)
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		value   Value
		encoded string
	}{
		{NewInt(42), `{"int":42}`},
		{NewInt(-1), `{"int":-1}`},
		{NewText("Martin"), `{"text":"Martin"}`},
		{NewText(""), `{"text":""}`},
		{Null, `null`},
	}

	for _, test := range tests {
		data, err := json.Marshal(test.value)
		require.NoError(t, err)
		assert.Equal(t, test.encoded, string(data))

		var decoded Value
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, test.value, decoded)
	}
}
