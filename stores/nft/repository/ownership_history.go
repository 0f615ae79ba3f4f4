package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/nft"
	"github.com/mintora/goapi/service/query"
)

type historyRepoImpl struct {
	q query.Mongo
}

func NewOwnershipHistory(q query.Mongo) nft.OwnershipHistoryRepo {
	return &historyRepoImpl{q}
}

func (im *historyRepoImpl) Insert(ctx ctx.Ctx, entry *nft.OwnershipHistory) error {
	if err := im.q.Insert(ctx, domain.TableOwnershipHistories, entry); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"nftId": entry.NftId,
			"ref":   entry.TransactionRef,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *historyRepoImpl) FindByNft(ctx ctx.Ctx, nftId primitive.ObjectID) ([]*nft.OwnershipHistory, error) {
	entries := []*nft.OwnershipHistory{}
	err := im.q.Search(ctx, domain.TableOwnershipHistories, 0, 0, "-timestamp", bson.M{"nftId": nftId}, &entries)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"nftId": nftId,
		}).Error("q.Search failed")
		return nil, err
	}
	return entries, nil
}
