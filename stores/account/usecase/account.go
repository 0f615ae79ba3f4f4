package usecase

import (
	"time"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/account"
)

type impl struct {
	repo account.Repo
}

func New(repo account.Repo) account.Usecase {
	return &impl{repo}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	return im.repo.Get(c, address.ToLower())
}

func (im *impl) Create(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	if address.IsEmpty() {
		return nil, domain.ErrWithReason(domain.ErrValidation, "address is required")
	}

	now := time.Now()
	acc := &account.Account{
		Address:   address.ToLower(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := im.repo.Create(c, acc); err != nil {
		// a concurrent signin already registered the account
		if err == domain.ErrConflict {
			return im.repo.Get(c, address.ToLower())
		}
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("repo.Create failed")
		return nil, err
	}
	return acc, nil
}
