package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	bCtx "github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/account"
	accountMocks "github.com/mintora/goapi/domain/account/mocks"
	auctionMocks "github.com/mintora/goapi/domain/auction/mocks"
	"github.com/mintora/goapi/domain/nft"
	nftMocks "github.com/mintora/goapi/domain/nft/mocks"
	"github.com/mintora/goapi/service/cache"
	cacheProvider "github.com/mintora/goapi/service/cache/provider/primitive"
	"github.com/mintora/goapi/service/notification"
	queryMocks "github.com/mintora/goapi/service/query/mocks"
)

type nftUsecaseSuite struct {
	suite.Suite

	nftRepo     *nftMocks.Repo
	historyRepo *nftMocks.OwnershipHistoryRepo
	accountRepo *accountMocks.Repo
	auctionRepo *auctionMocks.Repo
	q           *queryMocks.Mongo
	im          *impl
}

func TestNftUsecaseSuite(t *testing.T) {
	suite.Run(t, new(nftUsecaseSuite))
}

func (s *nftUsecaseSuite) SetupTest() {
	s.nftRepo = &nftMocks.Repo{}
	s.historyRepo = &nftMocks.OwnershipHistoryRepo{}
	s.accountRepo = &accountMocks.Repo{}
	s.auctionRepo = &auctionMocks.Repo{}
	s.q = &queryMocks.Mongo{}

	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) },
	)

	s.im = New(&NftUseCaseCfg{
		NftRepo:     s.nftRepo,
		HistoryRepo: s.historyRepo,
		AccountRepo: s.accountRepo,
		AuctionRepo: s.auctionRepo,
		Q:           s.q,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "nft-test",
			Cache: cacheProvider.NewPrimitive("nft-test", 16),
		}),
		Notifier: notification.New(1, notification.NewLogSender()),
	}).(*impl)
}

func (s *nftUsecaseSuite) TestTransfer() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()
	buyer := domain.Address("0xBuYeR")

	item := &nft.Nft{
		ObjectId: id,
		Owner:    "0xseller",
		Status:   nft.StatusListed,
		Price:    "2",
	}
	s.q.On("InTransaction", mock.Anything).Return(false)
	s.nftRepo.On("FindOne", mock.Anything, id).Return(item, nil)
	s.historyRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *nft.OwnershipHistory) bool {
		return e.NftId == id && e.Owner == buyer.ToLower() && e.Price == "6" && e.TransactionRef == "tx-1"
	})).Return(nil)
	s.nftRepo.On("Patch", mock.Anything, id, mock.MatchedBy(func(p nft.PatchableNft) bool {
		return p.Owner != nil && *p.Owner == buyer.ToLower() &&
			p.IsListed != nil && !*p.IsListed &&
			p.Status != nil && *p.Status == nft.StatusSold &&
			p.Price != nil && *p.Price == "6"
	})).Return(nil)

	err := s.im.Transfer(ctx, nft.TransferArgs{
		NftId:           id,
		From:            "0xseller",
		NewOwner:        buyer,
		Price:           "6",
		TransactionRef:  "tx-1",
		ResultingStatus: nft.StatusSold,
	})
	s.Require().NoError(err)
	s.historyRepo.AssertExpectations(s.T())
	s.nftRepo.AssertExpectations(s.T())
}

func (s *nftUsecaseSuite) TestTransferBurnedAsset() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xseller",
		Status:   nft.StatusBurned,
	}, nil)

	err := s.im.Transfer(ctx, nft.TransferArgs{
		NftId:           id,
		From:            "0xseller",
		NewOwner:        "0xbuyer",
		ResultingStatus: nft.StatusSold,
	})
	s.Require().ErrorIs(err, domain.ErrConflict)
	s.historyRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

// Ownership moved between the caller's read and the settlement, the
// transfer must refuse instead of settling an asset the caller no
// longer owns.
func (s *nftUsecaseSuite) TestTransferOwnerMoved() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xeve",
		Status:   nft.StatusListed,
	}, nil)

	err := s.im.Transfer(ctx, nft.TransferArgs{
		NftId:           id,
		From:            "0xalice",
		NewOwner:        "0xbuyer",
		Price:           "1",
		TransactionRef:  "tx-2",
		ResultingStatus: nft.StatusSold,
	})
	s.Require().ErrorIs(err, domain.ErrConflict)
	s.historyRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
	s.nftRepo.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

// A transfer that joined an outer settlement must not touch the cache
// or notify before that transaction commits; the transaction owner
// finalizes afterwards.
func (s *nftUsecaseSuite) TestTransferInSettlementDefersSideEffects() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	item := &nft.Nft{
		ObjectId: id,
		Owner:    "0xseller",
		Status:   nft.StatusListed,
	}

	// warm the cache with the pre-transfer state
	s.nftRepo.On("FindOne", mock.Anything, id).Return(item, nil).Once()
	got, err := s.im.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.Address("0xseller"), got.Owner)

	s.q.On("InTransaction", mock.Anything).Return(true)
	s.nftRepo.On("FindOne", mock.Anything, id).Return(item, nil).Once()
	s.historyRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.nftRepo.On("Patch", mock.Anything, id, mock.Anything).Return(nil)

	s.Require().NoError(s.im.Transfer(ctx, nft.TransferArgs{
		NftId:           id,
		From:            "0xseller",
		NewOwner:        "0xbuyer",
		Price:           "1",
		TransactionRef:  "tx-3",
		ResultingStatus: nft.StatusSold,
	}))

	// the cached pre-transfer state survives until the outer commit
	got, err = s.im.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.Address("0xseller"), got.Owner)

	s.im.FinalizeTransfer(ctx, id, "0xbuyer", "1", "tx-3")

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xbuyer",
		Status:   nft.StatusSold,
	}, nil).Once()
	got, err = s.im.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.Address("0xbuyer"), got.Owner)
}

func (s *nftUsecaseSuite) TestManualTransfer() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	item := &nft.Nft{
		ObjectId: id,
		Owner:    "0xalice",
		Status:   nft.StatusListed,
		Price:    "3",
	}
	s.q.On("InTransaction", mock.Anything).Return(false)
	s.nftRepo.On("FindOne", mock.Anything, id).Return(item, nil)
	s.accountRepo.On("Get", mock.Anything, domain.Address("0xbob")).Return(&account.Account{Address: "0xbob"}, nil)
	s.historyRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	s.nftRepo.On("Patch", mock.Anything, id, mock.MatchedBy(func(p nft.PatchableNft) bool {
		// manual transfer discards the listing and resets to minted
		return p.Status != nil && *p.Status == nft.StatusMinted &&
			p.Owner != nil && *p.Owner == "0xbob"
	})).Return(nil)

	err := s.im.ManualTransfer(ctx, id, "0xAlice", "0xBob", "tx-9")
	s.Require().NoError(err)
	s.nftRepo.AssertExpectations(s.T())
}

func (s *nftUsecaseSuite) TestManualTransferNotOwner() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xalice",
		Status:   nft.StatusMinted,
	}, nil)

	err := s.im.ManualTransfer(ctx, id, "0xmallory", "0xbob", "tx")
	s.Require().ErrorIs(err, domain.ErrPermission)
}

func (s *nftUsecaseSuite) TestManualTransferDuringAuction() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xalice",
		Status:   nft.StatusAuction,
	}, nil)

	err := s.im.ManualTransfer(ctx, id, "0xalice", "0xbob", "tx")
	s.Require().ErrorIs(err, domain.ErrConflict)
	s.accountRepo.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
	s.historyRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *nftUsecaseSuite) TestManualTransferUnknownRecipient() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xalice",
		Status:   nft.StatusMinted,
	}, nil)
	s.accountRepo.On("Get", mock.Anything, domain.Address("0xghost")).Return(nil, domain.ErrNotFound)

	err := s.im.ManualTransfer(ctx, id, "0xalice", "0xghost", "tx")
	s.Require().ErrorIs(err, domain.ErrNotFound)
	s.historyRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *nftUsecaseSuite) TestListForSale() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xalice",
		Status:   nft.StatusMinted,
	}, nil)
	s.nftRepo.On("Patch", mock.Anything, id, mock.MatchedBy(func(p nft.PatchableNft) bool {
		return p.Price != nil && *p.Price == "1.5" &&
			p.IsListed != nil && *p.IsListed &&
			p.Status != nil && *p.Status == nft.StatusListed
	})).Return(nil)

	s.Require().NoError(s.im.ListForSale(ctx, id, "0xalice", "1.5", "ETH"))
	s.nftRepo.AssertExpectations(s.T())
}

func (s *nftUsecaseSuite) TestListForSaleInvalidPrice() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xalice",
		Status:   nft.StatusMinted,
	}, nil)

	err := s.im.ListForSale(ctx, id, "0xalice", "not-a-number", "ETH")
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *nftUsecaseSuite) TestBurnSoldAsset() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xalice",
		Status:   nft.StatusSold,
	}, nil)

	err := s.im.Burn(ctx, id, "0xalice")
	s.Require().ErrorIs(err, domain.ErrConflict)
}

// Burning mid-auction forfeits the sale: the open auction is settled
// empty in the same transaction so a later close cannot sell the
// burned asset.
func (s *nftUsecaseSuite) TestBurnDuringAuctionSettlesIt() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xalice",
		Status:   nft.StatusAuction,
	}, nil)
	s.auctionRepo.On("SettleByNft", mock.Anything, id).Return(nil)
	s.nftRepo.On("Patch", mock.Anything, id, mock.MatchedBy(func(p nft.PatchableNft) bool {
		return p.Status != nil && *p.Status == nft.StatusBurned &&
			p.IsListed != nil && !*p.IsListed
	})).Return(nil)

	s.Require().NoError(s.im.Burn(ctx, id, "0xalice"))
	s.auctionRepo.AssertExpectations(s.T())
	s.nftRepo.AssertExpectations(s.T())
}

func (s *nftUsecaseSuite) TestMintValidation() {
	ctx := bCtx.Background()

	_, err := s.im.Mint(ctx, nft.MintArgs{Creator: "0xalice"})
	s.Require().ErrorIs(err, domain.ErrValidation)

	_, err = s.im.Mint(ctx, nft.MintArgs{TokenId: "42"})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *nftUsecaseSuite) TestGetUsesCache() {
	ctx := bCtx.Background()
	id := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, id).Return(&nft.Nft{
		ObjectId: id,
		Owner:    "0xalice",
		Status:   nft.StatusMinted,
	}, nil).Once()

	got, err := s.im.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.Address("0xalice"), got.Owner)

	// second read is served from cache, FindOne only allowed once
	got, err = s.im.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.Address("0xalice"), got.Owner)
	s.nftRepo.AssertExpectations(s.T())
}
