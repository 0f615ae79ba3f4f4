package nft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"list fresh asset", StatusMinted, StatusListed, true},
		{"auction fresh asset", StatusMinted, StatusAuction, true},
		{"offer accepted on unlisted asset", StatusMinted, StatusSold, true},
		{"auction settles", StatusAuction, StatusSold, true},
		{"auction closes with no bids", StatusAuction, StatusMinted, true},
		{"cannot list mid auction", StatusAuction, StatusListed, false},
		{"new owner relists", StatusSold, StatusListed, true},
		{"new owner reauctions", StatusSold, StatusAuction, true},
		{"cannot burn sold asset", StatusSold, StatusBurned, false},
		{"burn listed asset", StatusListed, StatusBurned, true},
		{"burned is terminal", StatusBurned, StatusMinted, false},
		{"burned stays burned", StatusBurned, StatusListed, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CanTransition(c.from, c.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusBurned.IsTerminal())
	assert.False(t, StatusSold.IsTerminal())
}
