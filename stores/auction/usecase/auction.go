package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/base/ptr"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/auction"
	"github.com/mintora/goapi/domain/nft"
	"github.com/mintora/goapi/service/query"
)

type AuctionUseCaseCfg struct {
	AuctionRepo auction.Repo
	BidRepo     auction.BidRepo
	NftRepo     nft.Repo
	NftUsecase  nft.Usecase
	Q           query.Mongo
}

type impl struct {
	auctionRepo auction.Repo
	bidRepo     auction.BidRepo
	nftRepo     nft.Repo
	nftUsecase  nft.Usecase
	q           query.Mongo

	// swapped in tests to drive the deadline checks
	timeNow func() time.Time
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &impl{
		auctionRepo: cfg.AuctionRepo,
		bidRepo:     cfg.BidRepo,
		nftRepo:     cfg.NftRepo,
		nftUsecase:  cfg.NftUsecase,
		q:           cfg.Q,
		timeNow:     time.Now,
	}
}

func (im *impl) CreateAuction(c ctx.Ctx, args auction.CreateAuctionArgs) (*auction.Auction, error) {
	if _, err := decimal.NewFromString(args.StartPrice); err != nil {
		return nil, domain.ErrWithReason(domain.ErrValidation, "invalid start price")
	}
	if args.ReservePrice != nil {
		if _, err := decimal.NewFromString(*args.ReservePrice); err != nil {
			return nil, domain.ErrWithReason(domain.ErrValidation, "invalid reserve price")
		}
	}
	if !args.EndTime.After(args.StartTime) {
		return nil, domain.ErrWithReason(domain.ErrValidation, "end time must be after start time")
	}

	item, err := im.nftRepo.FindOne(c, args.NftId)
	if err != nil {
		return nil, err
	}
	if !item.Owner.Equals(args.Seller) {
		return nil, domain.ErrWithReason(domain.ErrPermission, "only owner can create auction")
	}
	if !nft.CanTransition(item.Status, nft.StatusAuction) {
		return nil, domain.ErrWithReason(domain.ErrConflict,
			fmt.Sprintf("cannot auction %s asset", item.Status))
	}

	now := im.timeNow()
	a := &auction.Auction{
		NftId:        args.NftId,
		Seller:       args.Seller.ToLower(),
		StartPrice:   args.StartPrice,
		ReservePrice: args.ReservePrice,
		StartTime:    args.StartTime,
		EndTime:      args.EndTime,
		Active:       true,
		CreatedAt:    now,
	}
	err = im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		// checked inside the transaction: two racing creates both patch
		// the same nft, so the loser is retried on the write conflict
		// and re-reads the winner's committed auction here
		if _, err := im.auctionRepo.FindActiveByNft(c, args.NftId); err == nil {
			return domain.ErrWithReason(domain.ErrConflict, "active auction already exists")
		} else if err != domain.ErrNotFound {
			return err
		}
		if _, err := im.auctionRepo.Create(c, a); err != nil {
			return err
		}
		status := nft.StatusAuction
		return im.nftRepo.Patch(c, args.NftId, nft.PatchableNft{
			IsListed:  ptr.Bool(false),
			Status:    &status,
			UpdatedAt: &now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"nftId": args.NftId,
		}).Error("create auction failed")
		return nil, err
	}
	return a, nil
}

// PlaceBid accepts a bid only while the auction is live and the amount
// strictly exceeds the current bid (or meets the start price for the
// first bid). The highest-bid swap is a compare-and-swap against the
// bid the caller raced with, so concurrent equal raises cannot both
// win.
func (im *impl) PlaceBid(c ctx.Ctx, auctionId primitive.ObjectID, bidder domain.Address, amount string) (*auction.Auction, error) {
	a, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return nil, err
	}
	if !a.Active {
		return nil, domain.ErrWithReason(domain.ErrConflict, "auction has ended")
	}
	now := im.timeNow()
	if a.Ended(now) {
		// lazily close so later reads agree with the deadline
		if err := im.auctionRepo.Deactivate(c, auctionId); err != nil && err != domain.ErrNotFound {
			return nil, err
		}
		return nil, domain.ErrWithReason(domain.ErrConflict, "auction has ended")
	}
	if now.Before(a.StartTime) {
		return nil, domain.ErrWithReason(domain.ErrConflict, "auction has not started")
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil || !amt.IsPositive() {
		return nil, domain.ErrWithReason(domain.ErrValidation, "invalid bid amount")
	}
	if a.CurrentBid != nil {
		cur, err := decimal.NewFromString(*a.CurrentBid)
		if err != nil {
			return nil, err
		}
		if amt.LessThanOrEqual(cur) {
			return nil, domain.ErrWithReason(domain.ErrConflict, "bid must be higher than current bid")
		}
	} else {
		start, err := decimal.NewFromString(a.StartPrice)
		if err != nil {
			return nil, err
		}
		if amt.LessThan(start) {
			return nil, domain.ErrWithReason(domain.ErrConflict, "bid must be at least the start price")
		}
	}

	bidderLower := bidder.ToLower()
	bid := &auction.Bid{
		AuctionId: auctionId,
		Bidder:    bidderLower,
		Amount:    amount,
		Timestamp: now,
	}
	err = im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.auctionRepo.UpdateBid(c, auctionId, a.CurrentBid, amount, bidderLower); err != nil {
			if err == domain.ErrNotFound {
				// another bid committed between our read and the swap
				return domain.ErrWithReason(domain.ErrConcurrency, "bid lost race, retry")
			}
			return err
		}
		return im.bidRepo.Insert(c, bid)
	})
	if err != nil {
		return nil, err
	}

	a.CurrentBid = &amount
	a.HighestBidder = &bidderLower
	return a, nil
}

// EndAuction closes the auction and settles it in one transaction. The
// settle is a compare-and-swap on the settled marker, so out of any number
// of concurrent EndAuction calls exactly one settles and the rest observe
// a conflict. Bidding may already have been closed lazily by a late bid;
// that never blocks the settle.
func (im *impl) EndAuction(c ctx.Ctx, auctionId primitive.ObjectID, requester domain.Address) (*auction.EndAuctionResult, error) {
	a, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return nil, err
	}
	if !a.Seller.Equals(requester) {
		return nil, domain.ErrWithReason(domain.ErrPermission, "only the seller can end the auction")
	}

	res := &auction.EndAuctionResult{}
	err = im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.auctionRepo.MarkSettled(c, auctionId); err != nil {
			if err == domain.ErrNotFound {
				return domain.ErrWithReason(domain.ErrConflict, "auction already ended")
			}
			return err
		}
		// re-read inside the transaction, a bid may have landed after
		// the first read
		a, err = im.auctionRepo.FindOne(c, auctionId)
		if err != nil {
			return err
		}

		if a.HighestBidder == nil {
			now := im.timeNow()
			status := nft.StatusMinted
			return im.nftRepo.Patch(c, a.NftId, nft.PatchableNft{
				IsListed:  ptr.Bool(false),
				Status:    &status,
				UpdatedAt: &now,
			})
		}
		if err := im.nftUsecase.Transfer(c, nft.TransferArgs{
			NftId:           a.NftId,
			From:            a.Seller,
			NewOwner:        *a.HighestBidder,
			Price:           *a.CurrentBid,
			TransactionRef:  "auction:" + auctionId.Hex(),
			ResultingStatus: nft.StatusSold,
		}); err != nil {
			return err
		}
		res.Settled = true
		return nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("end auction failed")
		return nil, err
	}
	if res.Settled {
		im.nftUsecase.FinalizeTransfer(c, a.NftId, *a.HighestBidder, *a.CurrentBid, "auction:"+auctionId.Hex())
	}
	return res, nil
}

func (im *impl) GetAuction(c ctx.Ctx, auctionId primitive.ObjectID) (*auction.Auction, error) {
	return im.auctionRepo.FindOne(c, auctionId)
}

func (im *impl) GetAuctionByNft(c ctx.Ctx, nftId primitive.ObjectID) (*auction.Auction, error) {
	return im.auctionRepo.FindActiveByNft(c, nftId)
}

func (im *impl) GetBids(c ctx.Ctx, auctionId primitive.ObjectID) ([]*auction.Bid, error) {
	return im.bidRepo.FindByAuction(c, auctionId)
}
