package auction

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

// Bid is immutable once created, the bids collection is the append-only
// log of an auction.
type Bid struct {
	ObjectId  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	AuctionId primitive.ObjectID `json:"auctionId" bson:"auctionId"`
	Bidder    domain.Address     `json:"bidder" bson:"bidder"`
	Amount    string             `json:"amount" bson:"amount"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}

type BidRepo interface {
	Insert(ctx ctx.Ctx, bid *Bid) error
	// FindByAuction returns bids newest first
	FindByAuction(ctx ctx.Ctx, auctionId primitive.ObjectID) ([]*Bid, error)
}
