package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/database/mongoclient"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/nft"
	"github.com/mintora/goapi/service/query"
)

type nftRepoImpl struct {
	q query.Mongo
}

func NewNft(q query.Mongo) nft.Repo {
	return &nftRepoImpl{q}
}

func (im *nftRepoImpl) FindOne(ctx ctx.Ctx, id primitive.ObjectID) (*nft.Nft, error) {
	var item nft.Nft
	err := im.q.FindOne(ctx, domain.TableNfts, bson.M{"_id": id}, &item)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return &item, nil
}

func (im *nftRepoImpl) Create(ctx ctx.Ctx, item *nft.Nft) (primitive.ObjectID, error) {
	if item.ObjectId.IsZero() {
		item.ObjectId = primitive.NewObjectID()
	}
	if err := im.q.Insert(ctx, domain.TableNfts, item); err != nil {
		if err == query.ErrDuplicateKey {
			return primitive.NilObjectID, domain.ErrWithReason(domain.ErrConflict, "token id already minted")
		}
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": item.TokenId,
		}).Error("q.Insert failed")
		return primitive.NilObjectID, err
	}
	return item.ObjectId, nil
}

func (im *nftRepoImpl) Patch(ctx ctx.Ctx, id primitive.ObjectID, patchable nft.PatchableNft) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("MakeBsonM failed")
		return err
	}
	err = im.q.Patch(ctx, domain.TableNfts, bson.M{"_id": id}, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"id":      id,
			"updater": updater,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
