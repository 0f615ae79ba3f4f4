package nft

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

type Nft struct {
	ObjectId    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TokenId     domain.TokenId     `json:"tokenId" bson:"tokenId"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	ImageUrl    string             `json:"imageUrl" bson:"imageUrl"`

	Owner   domain.Address `json:"owner" bson:"owner"`
	Creator domain.Address `json:"creator" bson:"creator"`

	// opaque chain references, never interpreted
	ContractAddress string `json:"contractAddress" bson:"contractAddress"`
	Blockchain      string `json:"blockchain" bson:"blockchain"`
	TokenStandard   string `json:"tokenStandard" bson:"tokenStandard"`

	Price    string `json:"price" bson:"price"` // exact decimal string
	Currency string `json:"currency" bson:"currency"`
	IsListed bool   `json:"isListed" bson:"isListed"`
	Status   Status `json:"status" bson:"status"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// PatchableNft carries the mutable marketplace fields. Nil fields are
// left untouched by Repo.Patch.
type PatchableNft struct {
	Owner     *domain.Address `bson:"owner"`
	Price     *string         `bson:"price"`
	Currency  *string         `bson:"currency"`
	IsListed  *bool           `bson:"isListed"`
	Status    *Status         `bson:"status"`
	UpdatedAt *time.Time      `bson:"updatedAt"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id primitive.ObjectID) (*Nft, error)
	Create(ctx ctx.Ctx, item *Nft) (primitive.ObjectID, error)
	Patch(ctx ctx.Ctx, id primitive.ObjectID, patchable PatchableNft) error
}

// TransferArgs is the single atomic ownership-change primitive all
// settlement paths funnel through.
type TransferArgs struct {
	NftId primitive.ObjectID

	// From is the owner the caller observed. The transfer aborts with
	// a conflict when ownership moved since that read.
	From domain.Address

	NewOwner        domain.Address
	Price           string
	TransactionRef  string
	ResultingStatus Status
}

type MintArgs struct {
	TokenId         domain.TokenId
	Name            string
	Description     string
	ImageUrl        string
	Creator         domain.Address
	ContractAddress string
	Blockchain      string
	TokenStandard   string
	Currency        string
}

type Usecase interface {
	Get(ctx ctx.Ctx, id primitive.ObjectID) (*Nft, error)
	Mint(ctx ctx.Ctx, args MintArgs) (*Nft, error)

	// Transfer atomically appends a ledger entry and updates
	// owner/isListed/status/price. Either all effects commit or none.
	Transfer(ctx ctx.Ctx, args TransferArgs) error

	// FinalizeTransfer runs the post-commit side effects of a
	// transfer, cache invalidation and the async notification.
	// Transfer runs them itself when it owns the transaction; a
	// caller that joined Transfer into its own transaction calls this
	// after that transaction commits.
	FinalizeTransfer(ctx ctx.Ctx, id primitive.ObjectID, newOwner domain.Address, price, ref string)

	ManualTransfer(ctx ctx.Ctx, id primitive.ObjectID, currentOwner, newOwnerRef domain.Address, txHash string) error
	ListForSale(ctx ctx.Ctx, id primitive.ObjectID, owner domain.Address, price, currency string) error
	Burn(ctx ctx.Ctx, id primitive.ObjectID, owner domain.Address) error
	GetOwnershipHistory(ctx ctx.Ctx, id primitive.ObjectID) ([]*OwnershipHistory, error)
}
