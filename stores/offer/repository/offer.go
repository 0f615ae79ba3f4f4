package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/offer"
	"github.com/mintora/goapi/service/query"
)

type offerRepoImpl struct {
	q query.Mongo
}

func New(q query.Mongo) offer.Repo {
	return &offerRepoImpl{q}
}

func (im *offerRepoImpl) FindOne(ctx ctx.Ctx, id primitive.ObjectID) (*offer.Offer, error) {
	var o offer.Offer
	err := im.q.FindOne(ctx, domain.TableOffers, bson.M{"_id": id}, &o)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return &o, nil
}

func (im *offerRepoImpl) Create(ctx ctx.Ctx, o *offer.Offer) (primitive.ObjectID, error) {
	if o.ObjectId.IsZero() {
		o.ObjectId = primitive.NewObjectID()
	}
	if err := im.q.Insert(ctx, domain.TableOffers, o); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"nftId": o.NftId,
			"buyer": o.Buyer,
		}).Error("q.Insert failed")
		return primitive.NilObjectID, err
	}
	return o.ObjectId, nil
}

// UpdateStatus is the compare-and-swap on offer status, the selector
// misses when another settlement got there first.
func (im *offerRepoImpl) UpdateStatus(ctx ctx.Ctx, id primitive.ObjectID, prev, next offer.Status) error {
	selector := bson.M{"_id": id, "status": prev}
	err := im.q.Patch(ctx, domain.TableOffers, selector, bson.M{"status": next})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"id":   id,
			"prev": prev,
			"next": next,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *offerRepoImpl) RejectAllPending(ctx ctx.Ctx, nftId primitive.ObjectID) (int64, error) {
	selector := bson.M{"nftId": nftId, "status": offer.StatusPending}
	modified, err := im.q.PatchAll(ctx, domain.TableOffers, selector, bson.M{"status": offer.StatusRejected})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"nftId": nftId,
		}).Error("q.PatchAll failed")
		return 0, err
	}
	return modified, nil
}

func (im *offerRepoImpl) FindByNft(ctx ctx.Ctx, nftId primitive.ObjectID) ([]*offer.Offer, error) {
	offers := []*offer.Offer{}
	err := im.q.Search(ctx, domain.TableOffers, 0, 0, "-createdAt", bson.M{"nftId": nftId}, &offers)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"nftId": nftId,
		}).Error("q.Search failed")
		return nil, err
	}
	return offers, nil
}

func (im *offerRepoImpl) FindByBuyer(ctx ctx.Ctx, buyer domain.Address) ([]*offer.Offer, error) {
	offers := []*offer.Offer{}
	err := im.q.Search(ctx, domain.TableOffers, 0, 0, "-createdAt", bson.M{"buyer": buyer.ToLower()}, &offers)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"buyer": buyer,
		}).Error("q.Search failed")
		return nil, err
	}
	return offers, nil
}
