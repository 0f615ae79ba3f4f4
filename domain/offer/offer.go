package offer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	// StatusExpired is only ever assigned by an external sweep, the
	// core stores ExpiresAt and refuses acceptance past it.
	StatusExpired Status = "expired"
)

// Offer is a direct purchase proposal on an NFT. Any number of pending
// offers may coexist per NFT and per buyer. Terminal states are final.
type Offer struct {
	ObjectId  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	NftId     primitive.ObjectID `json:"nftId" bson:"nftId"`
	Buyer     domain.Address     `json:"buyer" bson:"buyer"`
	Amount    string             `json:"amount" bson:"amount"`
	Currency  string             `json:"currency" bson:"currency"`
	ExpiresAt *time.Time         `json:"expiresAt" bson:"expiresAt"`
	Status    Status             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

func (o *Offer) Expired(now time.Time) bool {
	return o.ExpiresAt != nil && now.After(*o.ExpiresAt)
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id primitive.ObjectID) (*Offer, error)
	Create(ctx ctx.Ctx, o *Offer) (primitive.ObjectID, error)

	// UpdateStatus flips the status only when the stored status still
	// equals prev. Returns domain.ErrNotFound on a selector miss so the
	// caller can tell a lost race from success.
	UpdateStatus(ctx ctx.Ctx, id primitive.ObjectID, prev, next Status) error

	// RejectAllPending marks every still-pending offer on the NFT
	// rejected and returns how many were flipped.
	RejectAllPending(ctx ctx.Ctx, nftId primitive.ObjectID) (int64, error)

	FindByNft(ctx ctx.Ctx, nftId primitive.ObjectID) ([]*Offer, error)
	FindByBuyer(ctx ctx.Ctx, buyer domain.Address) ([]*Offer, error)
}

type CreateOfferArgs struct {
	NftId     primitive.ObjectID
	Buyer     domain.Address
	Amount    string
	Currency  string
	ExpiresAt *time.Time
}

type UseCase interface {
	CreateOffer(ctx ctx.Ctx, args CreateOfferArgs) (*Offer, error)
	AcceptOffer(ctx ctx.Ctx, offerId primitive.ObjectID, caller domain.Address) error
	RejectOffer(ctx ctx.Ctx, offerId primitive.ObjectID, caller domain.Address) error
	GetOffersByNft(ctx ctx.Ctx, nftId primitive.ObjectID) ([]*Offer, error)
	GetOffersByBuyer(ctx ctx.Ctx, buyer domain.Address) ([]*Offer, error)
}
