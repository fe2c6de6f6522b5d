package idempotency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPayload(t *testing.T) {
	type body struct {
		AmountCents int64  `json:"amount_cents"`
		Method      string `json:"method"`
	}

	testCases := []struct {
		name    string
		payload any
		other   any
		same    bool
	}{
		{
			name:    "identical_bodies_match",
			payload: &body{AmountCents: 100, Method: "card"},
			other:   &body{AmountCents: 100, Method: "card"},
			same:    true,
		},
		{
			name:    "different_amounts_differ",
			payload: &body{AmountCents: 100, Method: "card"},
			other:   &body{AmountCents: 200, Method: "card"},
			same:    false,
		},
		{
			name:    "different_methods_differ",
			payload: &body{AmountCents: 100, Method: "card"},
			other:   &body{AmountCents: 100, Method: "cash"},
			same:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := hashPayload(tc.payload)
			b := hashPayload(tc.other)
			assert.NotEmpty(t, a)
			assert.NotEmpty(t, b)
			if tc.same {
				assert.Equal(t, a, b)
			} else {
				assert.NotEqual(t, a, b)
			}
		})
	}
}

func TestHashPayloadNilIsEmpty(t *testing.T) {
	assert.Empty(t, hashPayload(nil))
}
