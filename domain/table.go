package domain

// Table is a mongo collection name
type Table string

const (
	TableAccounts           Table = "accounts"
	TableNfts               Table = "nfts"
	TableAuctions           Table = "auctions"
	TableBids               Table = "bids"
	TableOffers             Table = "offers"
	TableOwnershipHistories Table = "ownership_histories"
)
