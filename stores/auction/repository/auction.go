package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/auction"
	"github.com/mintora/goapi/service/query"
)

type auctionRepoImpl struct {
	q query.Mongo
}

func NewAuction(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func (im *auctionRepoImpl) FindOne(ctx ctx.Ctx, id primitive.ObjectID) (*auction.Auction, error) {
	var a auction.Auction
	err := im.q.FindOne(ctx, domain.TableAuctions, bson.M{"_id": id}, &a)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return &a, nil
}

func (im *auctionRepoImpl) FindActiveByNft(ctx ctx.Ctx, nftId primitive.ObjectID) (*auction.Auction, error) {
	var a auction.Auction
	err := im.q.FindOne(ctx, domain.TableAuctions, bson.M{"nftId": nftId, "active": true}, &a)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"nftId": nftId,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return &a, nil
}

func (im *auctionRepoImpl) Create(ctx ctx.Ctx, a *auction.Auction) (primitive.ObjectID, error) {
	if a.ObjectId.IsZero() {
		a.ObjectId = primitive.NewObjectID()
	}
	if err := im.q.Insert(ctx, domain.TableAuctions, a); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"nftId": a.NftId,
		}).Error("q.Insert failed")
		return primitive.NilObjectID, err
	}
	return a.ObjectId, nil
}

// UpdateBid commits the new highest bid with a selector carrying the
// expected prior state, so two racing bidders can never both win
// against the same stale currentBid.
func (im *auctionRepoImpl) UpdateBid(ctx ctx.Ctx, id primitive.ObjectID, prev *string, amount string, bidder domain.Address) error {
	selector := bson.M{
		"_id":    id,
		"active": true,
	}
	if prev == nil {
		selector["currentBid"] = nil
	} else {
		selector["currentBid"] = *prev
	}
	updater := bson.M{
		"currentBid":    amount,
		"highestBidder": bidder,
	}
	err := im.q.Patch(ctx, domain.TableAuctions, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"amount": amount,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Deactivate(ctx ctx.Ctx, id primitive.ObjectID) error {
	err := im.q.Patch(ctx, domain.TableAuctions, bson.M{"_id": id, "active": true}, bson.M{"active": false})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

// MarkSettled swaps on settled rather than active, so an auction whose
// bidding a late bid already closed can still be settled exactly once.
func (im *auctionRepoImpl) MarkSettled(ctx ctx.Ctx, id primitive.ObjectID) error {
	err := im.q.Patch(ctx, domain.TableAuctions,
		bson.M{"_id": id, "settled": false},
		bson.M{"settled": true, "active": false})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) SettleByNft(ctx ctx.Ctx, nftId primitive.ObjectID) error {
	err := im.q.Patch(ctx, domain.TableAuctions,
		bson.M{"nftId": nftId, "settled": false},
		bson.M{"settled": true, "active": false})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"nftId": nftId,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
