package nft

// Status is the shared listing vocabulary read and written by the
// auction engine and offer negotiation. Transitions are one-directional
// per edge; burned is terminal.
type Status string

const (
	StatusMinted  Status = "minted"
	StatusListed  Status = "listed"
	StatusAuction Status = "auction"
	StatusSold    Status = "sold"
	StatusBurned  Status = "burned"
)

var transitions = map[Status]map[Status]bool{
	StatusMinted: {
		StatusMinted:  true, // manual transfer resets a fresh asset
		StatusListed:  true,
		StatusAuction: true,
		StatusSold:    true, // offer accepted on an unlisted asset
		StatusBurned:  true,
	},
	StatusListed: {
		StatusMinted:  true, // manual transfer discards the listing
		StatusAuction: true,
		StatusSold:    true,
		StatusBurned:  true,
	},
	StatusAuction: {
		StatusMinted: true, // auction closed with no bids
		StatusSold:   true,
		StatusBurned: true,
	},
	StatusSold: {
		// re-listing by the new owner starts a fresh cycle
		StatusMinted:  true,
		StatusListed:  true,
		StatusAuction: true,
	},
	StatusBurned: {},
}

func ValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving from one status to another is a
// legal edge of the listing state machine.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

func (s Status) IsTerminal() bool {
	return s == StatusBurned
}
