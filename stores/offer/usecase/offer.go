package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/nft"
	"github.com/mintora/goapi/domain/offer"
	"github.com/mintora/goapi/service/query"
)

const defaultCurrency = "ETH"

type OfferUseCaseCfg struct {
	OfferRepo  offer.Repo
	NftRepo    nft.Repo
	NftUsecase nft.Usecase
	Q          query.Mongo
}

type impl struct {
	offerRepo  offer.Repo
	nftRepo    nft.Repo
	nftUsecase nft.Usecase
	q          query.Mongo

	timeNow func() time.Time
}

func New(cfg *OfferUseCaseCfg) offer.UseCase {
	return &impl{
		offerRepo:  cfg.OfferRepo,
		nftRepo:    cfg.NftRepo,
		nftUsecase: cfg.NftUsecase,
		q:          cfg.Q,
		timeNow:    time.Now,
	}
}

func (im *impl) CreateOffer(c ctx.Ctx, args offer.CreateOfferArgs) (*offer.Offer, error) {
	amt, err := decimal.NewFromString(args.Amount)
	if err != nil || !amt.IsPositive() {
		return nil, domain.ErrWithReason(domain.ErrValidation, "invalid offer amount")
	}
	now := im.timeNow()
	if args.ExpiresAt != nil && !args.ExpiresAt.After(now) {
		return nil, domain.ErrWithReason(domain.ErrValidation, "expiry must be in the future")
	}

	item, err := im.nftRepo.FindOne(c, args.NftId)
	if err != nil {
		return nil, err
	}
	if item.Status.IsTerminal() {
		return nil, domain.ErrWithReason(domain.ErrConflict, "asset is burned")
	}

	currency := args.Currency
	if len(currency) == 0 {
		currency = defaultCurrency
	}
	o := &offer.Offer{
		NftId:     args.NftId,
		Buyer:     args.Buyer.ToLower(),
		Amount:    args.Amount,
		Currency:  currency,
		ExpiresAt: args.ExpiresAt,
		Status:    offer.StatusPending,
		CreatedAt: now,
	}
	if _, err := im.offerRepo.Create(c, o); err != nil {
		return nil, err
	}
	return o, nil
}

// AcceptOffer settles the offer in one transaction: the accepted offer
// flips pending to accepted with a compare-and-swap, every other
// pending offer on the NFT is rejected, and ownership transfers at the
// offered amount. A concurrent acceptance of another offer on the same
// NFT will have rejected this one, making the swap miss and the whole
// unit roll back.
func (im *impl) AcceptOffer(c ctx.Ctx, offerId primitive.ObjectID, caller domain.Address) error {
	o, err := im.offerRepo.FindOne(c, offerId)
	if err != nil {
		return err
	}
	item, err := im.nftRepo.FindOne(c, o.NftId)
	if err != nil {
		return err
	}
	if !item.Owner.Equals(caller) {
		return domain.ErrWithReason(domain.ErrPermission, "only owner can accept offers")
	}
	// a live auction owns the asset until it closes
	if item.Status == nft.StatusAuction {
		return domain.ErrWithReason(domain.ErrConflict, "asset is on auction")
	}
	if o.Status != offer.StatusPending {
		return domain.ErrWithReason(domain.ErrConflict, "offer is not pending")
	}
	if o.Expired(im.timeNow()) {
		return domain.ErrWithReason(domain.ErrConflict, "offer has expired")
	}

	err = im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.offerRepo.UpdateStatus(c, offerId, offer.StatusPending, offer.StatusAccepted); err != nil {
			if err == domain.ErrNotFound {
				return domain.ErrWithReason(domain.ErrConflict, "offer is not pending")
			}
			return err
		}
		rejected, err := im.offerRepo.RejectAllPending(c, o.NftId)
		if err != nil {
			return err
		}
		c.WithFields(log.Fields{
			"offerId":  offerId,
			"nftId":    o.NftId,
			"rejected": rejected,
		}).Info("offer accepted")

		return im.nftUsecase.Transfer(c, nft.TransferArgs{
			NftId:           o.NftId,
			From:            item.Owner,
			NewOwner:        o.Buyer,
			Price:           o.Amount,
			TransactionRef:  "offer:" + offerId.Hex(),
			ResultingStatus: nft.StatusSold,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"offerId": offerId,
		}).Error("accept offer failed")
		return err
	}
	im.nftUsecase.FinalizeTransfer(c, o.NftId, o.Buyer, o.Amount, "offer:"+offerId.Hex())
	return nil
}

func (im *impl) RejectOffer(c ctx.Ctx, offerId primitive.ObjectID, caller domain.Address) error {
	o, err := im.offerRepo.FindOne(c, offerId)
	if err != nil {
		return err
	}
	item, err := im.nftRepo.FindOne(c, o.NftId)
	if err != nil {
		return err
	}
	if !item.Owner.Equals(caller) {
		return domain.ErrWithReason(domain.ErrPermission, "only owner can reject offers")
	}

	if err := im.offerRepo.UpdateStatus(c, offerId, offer.StatusPending, offer.StatusRejected); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrWithReason(domain.ErrConflict, "offer is not pending")
		}
		return err
	}
	return nil
}

func (im *impl) GetOffersByNft(c ctx.Ctx, nftId primitive.ObjectID) ([]*offer.Offer, error) {
	return im.offerRepo.FindByNft(c, nftId)
}

func (im *impl) GetOffersByBuyer(c ctx.Ctx, buyer domain.Address) ([]*offer.Offer, error) {
	return im.offerRepo.FindByBuyer(c, buyer.ToLower())
}
