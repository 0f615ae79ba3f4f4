package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/account"
	"github.com/mintora/goapi/service/query"
)

type accountRepoImpl struct {
	q query.Mongo
}

func New(q query.Mongo) account.Repo {
	return &accountRepoImpl{q}
}

func (im *accountRepoImpl) Get(ctx ctx.Ctx, address domain.Address) (*account.Account, error) {
	qry := bson.M{"address": address.ToLower()}

	var acc account.Account
	err := im.q.FindOne(ctx, domain.TableAccounts, qry, &acc)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return &acc, nil
}

func (im *accountRepoImpl) Create(ctx ctx.Ctx, acc *account.Account) error {
	acc.Address = acc.Address.ToLower()
	if err := im.q.Insert(ctx, domain.TableAccounts, acc); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": acc.Address,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}
