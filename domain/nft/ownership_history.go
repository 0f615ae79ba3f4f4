package nft

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

// OwnershipHistory is one ledger entry: who held the asset after a
// given transfer, at what price, under which transaction reference.
// Entries are append-only.
type OwnershipHistory struct {
	ObjectId       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	NftId          primitive.ObjectID `json:"nftId" bson:"nftId"`
	Owner          domain.Address     `json:"owner" bson:"owner"`
	TransactionRef string             `json:"transactionRef" bson:"transactionRef"`
	Price          string             `json:"price" bson:"price"`
	Timestamp      time.Time          `json:"timestamp" bson:"timestamp"`
}

type OwnershipHistoryRepo interface {
	Insert(ctx ctx.Ctx, entry *OwnershipHistory) error
	// FindByNft returns entries newest first
	FindByNft(ctx ctx.Ctx, nftId primitive.ObjectID) ([]*OwnershipHistory, error)
}
