package auction

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

// Auction is the per-asset bidding lifecycle. At most one active
// auction exists per NFT. CurrentBid/HighestBidder always reflect the
// highest accepted bid; both are nil until the first bid lands.
type Auction struct {
	ObjectId primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	NftId    primitive.ObjectID `json:"nftId" bson:"nftId"`
	Seller   domain.Address     `json:"seller" bson:"seller"`

	StartPrice string `json:"startPrice" bson:"startPrice"`
	// ReservePrice is informational only, never enforced as a
	// settlement floor.
	ReservePrice *string `json:"reservePrice" bson:"reservePrice"`

	CurrentBid    *string         `json:"currentBid" bson:"currentBid"`
	HighestBidder *domain.Address `json:"highestBidder" bson:"highestBidder"`

	StartTime time.Time `json:"startTime" bson:"startTime"`
	EndTime   time.Time `json:"endTime" bson:"endTime"`

	// Active means bidding is open. Settled means the close ran to
	// completion. They are separate flags because a late bid closes
	// bidding lazily while settlement still belongs to EndAuction.
	Active  bool `json:"active" bson:"active"`
	Settled bool `json:"settled" bson:"settled"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (a *Auction) Ended(now time.Time) bool {
	return !now.Before(a.EndTime)
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id primitive.ObjectID) (*Auction, error)
	FindActiveByNft(ctx ctx.Ctx, nftId primitive.ObjectID) (*Auction, error)
	Create(ctx ctx.Ctx, a *Auction) (primitive.ObjectID, error)

	// UpdateBid commits a new highest bid only while the auction is
	// still active and CurrentBid still equals prev. Returns
	// domain.ErrNotFound when the selector no longer matches, which
	// callers interpret as a lost race.
	UpdateBid(ctx ctx.Ctx, id primitive.ObjectID, prev *string, amount string, bidder domain.Address) error

	// Deactivate closes bidding. Returns domain.ErrNotFound when
	// bidding was already closed.
	Deactivate(ctx ctx.Ctx, id primitive.ObjectID) error

	// MarkSettled claims the one-shot settlement marker and closes
	// bidding. Returns domain.ErrNotFound when the auction was
	// already settled, regardless of whether bidding was closed
	// lazily before.
	MarkSettled(ctx ctx.Ctx, id primitive.ObjectID) error

	// SettleByNft claims the settlement marker of whatever unsettled
	// auction exists on the NFT. Returns domain.ErrNotFound when
	// there is none.
	SettleByNft(ctx ctx.Ctx, nftId primitive.ObjectID) error
}

type CreateAuctionArgs struct {
	NftId        primitive.ObjectID
	Seller       domain.Address
	StartPrice   string
	ReservePrice *string
	StartTime    time.Time
	EndTime      time.Time
}

type EndAuctionResult struct {
	// Settled is true when a winner existed and ownership transferred
	Settled bool
}

type UseCase interface {
	CreateAuction(ctx ctx.Ctx, args CreateAuctionArgs) (*Auction, error)
	// PlaceBid returns the auction state after the accepted bid
	PlaceBid(ctx ctx.Ctx, auctionId primitive.ObjectID, bidder domain.Address, amount string) (*Auction, error)
	EndAuction(ctx ctx.Ctx, auctionId primitive.ObjectID, requester domain.Address) (*EndAuctionResult, error)
	GetAuction(ctx ctx.Ctx, auctionId primitive.ObjectID) (*Auction, error)
	GetAuctionByNft(ctx ctx.Ctx, nftId primitive.ObjectID) (*Auction, error)
	GetBids(ctx ctx.Ctx, auctionId primitive.ObjectID) ([]*Bid, error)
}
