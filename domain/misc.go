package domain

import "strings"

// Address identifies a principal (owner, seller, bidder, buyer).
// It is an opaque reference resolved by the authentication service,
// never ambient request state.
type Address string

const EmptyAddress = Address("")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is the unique token identifier of an NFT, kept as an opaque
// string the same way contract addresses and transaction hashes are.
type TokenId string

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)
