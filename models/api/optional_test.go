package apimodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	type payload struct {
		Email Optional[string] `json:"email"`
		Phone Optional[string] `json:"phone"`
	}

	t.Run(`absent, null and value are distinguishable`, func(t *testing.T) {
		var p payload
		require.Nil(t, json.Unmarshal([]byte(`{"email": null}`), &p))
		require.True(t, p.Email.Set)
		require.False(t, p.Email.Valid)
		require.False(t, p.Phone.Set)

		p = payload{}
		require.Nil(t, json.Unmarshal([]byte(`{"phone": "+7 900"}`), &p))
		require.False(t, p.Email.Set)
		require.True(t, p.Phone.Set)
		require.True(t, p.Phone.Valid)
		require.Equal(t, "+7 900", p.Phone.Value)
	})

	t.Run(`wrong type is an error`, func(t *testing.T) {
		var p payload
		require.NotNil(t, json.Unmarshal([]byte(`{"email": 12}`), &p))
	})
}
