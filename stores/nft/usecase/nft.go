package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/base/ptr"
	"github.com/mintora/goapi/base/validator"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/account"
	"github.com/mintora/goapi/domain/auction"
	"github.com/mintora/goapi/domain/nft"
	"github.com/mintora/goapi/service/cache"
	"github.com/mintora/goapi/service/notification"
	"github.com/mintora/goapi/service/query"
)

// manualTransferStatus is the explicit policy for what a manual
// transfer leaves behind. The reference behavior discards any listing
// state and resets to minted; changing the policy is this one line.
const manualTransferStatus = nft.StatusMinted

type NftUseCaseCfg struct {
	NftRepo     nft.Repo
	HistoryRepo nft.OwnershipHistoryRepo
	AccountRepo account.Repo
	AuctionRepo auction.Repo
	Q           query.Mongo
	Cache       cache.Service
	Notifier    notification.Service
}

type impl struct {
	nftRepo     nft.Repo
	historyRepo nft.OwnershipHistoryRepo
	accountRepo account.Repo
	auctionRepo auction.Repo
	q           query.Mongo
	cache       cache.Service
	notifier    notification.Service
}

func New(cfg *NftUseCaseCfg) nft.Usecase {
	return &impl{
		nftRepo:     cfg.NftRepo,
		historyRepo: cfg.HistoryRepo,
		accountRepo: cfg.AccountRepo,
		auctionRepo: cfg.AuctionRepo,
		q:           cfg.Q,
		cache:       cfg.Cache,
		notifier:    cfg.Notifier,
	}
}

func (im *impl) Get(c ctx.Ctx, id primitive.ObjectID) (*nft.Nft, error) {
	item := &nft.Nft{}
	err := im.cache.GetByFunc(c, id.Hex(), item, func() (interface{}, error) {
		return im.nftRepo.FindOne(c, id)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (im *impl) Mint(c ctx.Ctx, args nft.MintArgs) (*nft.Nft, error) {
	if len(args.TokenId) == 0 {
		return nil, domain.ErrWithReason(domain.ErrValidation, "token id is required")
	}
	if args.Creator.IsEmpty() {
		return nil, domain.ErrWithReason(domain.ErrValidation, "creator is required")
	}

	now := time.Now()
	item := &nft.Nft{
		TokenId:         args.TokenId,
		Name:            args.Name,
		Description:     args.Description,
		ImageUrl:        args.ImageUrl,
		Owner:           args.Creator.ToLower(),
		Creator:         args.Creator.ToLower(),
		ContractAddress: args.ContractAddress,
		Blockchain:      args.Blockchain,
		TokenStandard:   args.TokenStandard,
		Currency:        args.Currency,
		IsListed:        false,
		Status:          nft.StatusMinted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := im.nftRepo.Create(c, item); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": args.TokenId,
		}).Error("nftRepo.Create failed")
		return nil, err
	}
	return item, nil
}

// Transfer is the single atomic ownership-change primitive. Ledger
// append and the owner/isListed/status/price writes commit together or
// not at all; no caller ever observes an intermediate state.
func (im *impl) Transfer(c ctx.Ctx, args nft.TransferArgs) error {
	if args.NewOwner.IsEmpty() {
		return domain.ErrWithReason(domain.ErrValidation, "new owner is required")
	}
	if args.From.IsEmpty() {
		return domain.ErrWithReason(domain.ErrValidation, "current owner is required")
	}

	err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		item, err := im.nftRepo.FindOne(c, args.NftId)
		if err != nil {
			return err
		}
		// ownership is re-checked inside the transaction, the caller's
		// read may be stale by now
		if !item.Owner.Equals(args.From) {
			return domain.ErrWithReason(domain.ErrConflict, "asset changed owner")
		}
		if !nft.CanTransition(item.Status, args.ResultingStatus) {
			return domain.ErrWithReason(domain.ErrConflict,
				fmt.Sprintf("cannot move %s asset to %s", item.Status, args.ResultingStatus))
		}

		now := time.Now()
		entry := &nft.OwnershipHistory{
			NftId:          args.NftId,
			Owner:          args.NewOwner.ToLower(),
			TransactionRef: args.TransactionRef,
			Price:          args.Price,
			Timestamp:      now,
		}
		if err := im.historyRepo.Insert(c, entry); err != nil {
			return err
		}

		newOwner := args.NewOwner.ToLower()
		patch := nft.PatchableNft{
			Owner:     &newOwner,
			IsListed:  ptr.Bool(false),
			Status:    &args.ResultingStatus,
			UpdatedAt: &now,
		}
		if len(args.Price) > 0 {
			patch.Price = &args.Price
		}
		return im.nftRepo.Patch(c, args.NftId, patch)
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"nftId": args.NftId,
			"ref":   args.TransactionRef,
		}).Error("transfer failed")
		return err
	}

	if im.q.InTransaction(c) {
		// joined an outer settlement, the owner of that transaction
		// finalizes after it commits
		return nil
	}
	im.FinalizeTransfer(c, args.NftId, args.NewOwner, args.Price, args.TransactionRef)
	return nil
}

func (im *impl) FinalizeTransfer(c ctx.Ctx, id primitive.ObjectID, newOwner domain.Address, price, ref string) {
	im.cache.Del(c, id.Hex())
	im.notifier.NotifyTransfer(c, notification.Event{
		NftId:          id.Hex(),
		NewOwner:       newOwner.ToLower(),
		Price:          price,
		TransactionRef: ref,
		Timestamp:      time.Now(),
	})
}

func (im *impl) ManualTransfer(c ctx.Ctx, id primitive.ObjectID, currentOwner, newOwnerRef domain.Address, txHash string) error {
	item, err := im.nftRepo.FindOne(c, id)
	if err != nil {
		return err
	}
	if !item.Owner.Equals(currentOwner) {
		return domain.ErrWithReason(domain.ErrPermission, "only owner can transfer")
	}
	// a live auction owns the asset until it closes
	if item.Status == nft.StatusAuction {
		return domain.ErrWithReason(domain.ErrConflict, "asset is on auction")
	}
	if _, err := im.accountRepo.Get(c, newOwnerRef); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrWithReason(domain.ErrNotFound, "recipient not found")
		}
		return err
	}

	// off-chain transfers carry no hash, mint a reference so the ledger
	// entry stays traceable
	if len(txHash) == 0 {
		txHash = "manual:" + uuid.NewString()
	}

	return im.Transfer(c, nft.TransferArgs{
		NftId:           id,
		From:            item.Owner,
		NewOwner:        newOwnerRef,
		Price:           item.Price,
		TransactionRef:  txHash,
		ResultingStatus: manualTransferStatus,
	})
}

func (im *impl) ListForSale(c ctx.Ctx, id primitive.ObjectID, owner domain.Address, price, currency string) error {
	item, err := im.nftRepo.FindOne(c, id)
	if err != nil {
		return err
	}
	if !item.Owner.Equals(owner) {
		return domain.ErrWithReason(domain.ErrPermission, "only owner can list for sale")
	}
	if !validator.IsValidAmount(price) {
		return domain.ErrWithReason(domain.ErrValidation, "price is required")
	}
	// re-pricing an already listed asset is fine, anything else must be
	// a legal edge
	if item.Status != nft.StatusListed && !nft.CanTransition(item.Status, nft.StatusListed) {
		return domain.ErrWithReason(domain.ErrConflict,
			fmt.Sprintf("cannot list %s asset", item.Status))
	}

	now := time.Now()
	status := nft.StatusListed
	patch := nft.PatchableNft{
		Price:     &price,
		IsListed:  ptr.Bool(true),
		Status:    &status,
		UpdatedAt: &now,
	}
	if len(currency) > 0 {
		patch.Currency = &currency
	}
	if err := im.nftRepo.Patch(c, id, patch); err != nil {
		return err
	}
	im.cache.Del(c, id.Hex())
	return nil
}

func (im *impl) Burn(c ctx.Ctx, id primitive.ObjectID, owner domain.Address) error {
	item, err := im.nftRepo.FindOne(c, id)
	if err != nil {
		return err
	}
	if !item.Owner.Equals(owner) {
		return domain.ErrWithReason(domain.ErrPermission, "only owner can burn")
	}
	if !nft.CanTransition(item.Status, nft.StatusBurned) {
		return domain.ErrWithReason(domain.ErrConflict,
			fmt.Sprintf("cannot burn %s asset", item.Status))
	}

	now := time.Now()
	status := nft.StatusBurned
	patch := nft.PatchableNft{
		IsListed:  ptr.Bool(false),
		Status:    &status,
		UpdatedAt: &now,
	}
	err = im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		// burning mid-auction forfeits the sale; the auction is settled
		// empty in the same transaction so a later close cannot try to
		// sell a burned asset
		if item.Status == nft.StatusAuction {
			if err := im.auctionRepo.SettleByNft(c, id); err != nil && err != domain.ErrNotFound {
				return err
			}
		}
		return im.nftRepo.Patch(c, id, patch)
	})
	if err != nil {
		return err
	}
	im.cache.Del(c, id.Hex())
	return nil
}

func (im *impl) GetOwnershipHistory(c ctx.Ctx, id primitive.ObjectID) ([]*nft.OwnershipHistory, error) {
	entries, err := im.historyRepo.FindByNft(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"nftId": id,
		}).Error("historyRepo.FindByNft failed")
		return nil, err
	}
	return entries, nil
}
