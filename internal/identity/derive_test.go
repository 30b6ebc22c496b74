package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveIDDeterministic(t *testing.T) {
	first := DeriveID("alice")
	second := DeriveID("alice")

	assert.Equal(t, first, second)
}

func TestDeriveIDRange(t *testing.T) {
	inputs := []string{"", "alice", "bob", "a-much-longer-external-identifier", "üñïçödé", "42"}

	for _, input := range inputs {
		id := DeriveID(input)
		assert.Less(t, id, uint(Modulus), "input %q", input)
	}
}

func TestDeriveIDDistinguishesInputs(t *testing.T) {
	assert.NotEqual(t, DeriveID("alice"), DeriveID("bob"))
}
