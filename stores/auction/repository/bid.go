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

type bidRepoImpl struct {
	q query.Mongo
}

func NewBid(q query.Mongo) auction.BidRepo {
	return &bidRepoImpl{q}
}

func (im *bidRepoImpl) Insert(ctx ctx.Ctx, bid *auction.Bid) error {
	if err := im.q.Insert(ctx, domain.TableBids, bid); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"auctionId": bid.AuctionId,
			"bidder":    bid.Bidder,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *bidRepoImpl) FindByAuction(ctx ctx.Ctx, auctionId primitive.ObjectID) ([]*auction.Bid, error) {
	bids := []*auction.Bid{}
	// amounts are zero-padded nowhere, mongo sorts them as strings, so
	// order by insertion time and let callers compare decimals
	err := im.q.SearchNSorts(ctx, domain.TableBids, 0, 0, []string{"-timestamp"}, bson.M{"auctionId": auctionId}, &bids)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("q.SearchNSorts failed")
		return nil, err
	}
	return bids, nil
}
