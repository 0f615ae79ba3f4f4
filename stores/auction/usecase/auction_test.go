package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	bCtx "github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/auction"
	auctionMocks "github.com/mintora/goapi/domain/auction/mocks"
	"github.com/mintora/goapi/domain/nft"
	nftMocks "github.com/mintora/goapi/domain/nft/mocks"
	queryMocks "github.com/mintora/goapi/service/query/mocks"
)

type auctionUsecaseSuite struct {
	suite.Suite

	auctionRepo *auctionMocks.Repo
	bidRepo     *auctionMocks.BidRepo
	nftRepo     *nftMocks.Repo
	nftUsecase  *nftMocks.Usecase
	q           *queryMocks.Mongo
	im          *impl

	now time.Time
}

func TestAuctionUsecaseSuite(t *testing.T) {
	suite.Run(t, new(auctionUsecaseSuite))
}

func (s *auctionUsecaseSuite) SetupTest() {
	s.auctionRepo = &auctionMocks.Repo{}
	s.bidRepo = &auctionMocks.BidRepo{}
	s.nftRepo = &nftMocks.Repo{}
	s.nftUsecase = &nftMocks.Usecase{}
	s.q = &queryMocks.Mongo{}

	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) },
	)

	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.im = New(&AuctionUseCaseCfg{
		AuctionRepo: s.auctionRepo,
		BidRepo:     s.bidRepo,
		NftRepo:     s.nftRepo,
		NftUsecase:  s.nftUsecase,
		Q:           s.q,
	}).(*impl)
	s.im.timeNow = func() time.Time { return s.now }
}

func (s *auctionUsecaseSuite) liveAuction(currentBid *string, bidder *domain.Address) *auction.Auction {
	return &auction.Auction{
		ObjectId:      primitive.NewObjectID(),
		NftId:         primitive.NewObjectID(),
		Seller:        "0xseller",
		StartPrice:    "0.5",
		CurrentBid:    currentBid,
		HighestBidder: bidder,
		StartTime:     s.now.Add(-time.Hour),
		EndTime:       s.now.Add(time.Hour),
		Active:        true,
	}
}

func (s *auctionUsecaseSuite) TestCreateAuction() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xseller",
		Status:   nft.StatusMinted,
	}, nil)
	s.auctionRepo.On("FindActiveByNft", mock.Anything, nftId).Return(nil, domain.ErrNotFound)
	s.auctionRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.NftId == nftId && a.Active && a.StartPrice == "0.5"
	})).Return(primitive.NewObjectID(), nil)
	s.nftRepo.On("Patch", mock.Anything, nftId, mock.MatchedBy(func(p nft.PatchableNft) bool {
		return p.Status != nil && *p.Status == nft.StatusAuction
	})).Return(nil)

	a, err := s.im.CreateAuction(ctx, auction.CreateAuctionArgs{
		NftId:      nftId,
		Seller:     "0xSeller",
		StartPrice: "0.5",
		StartTime:  s.now,
		EndTime:    s.now.Add(24 * time.Hour),
	})
	s.Require().NoError(err)
	s.True(a.Active)
	s.auctionRepo.AssertExpectations(s.T())
	s.nftRepo.AssertExpectations(s.T())
}

func (s *auctionUsecaseSuite) TestCreateAuctionAlreadyExists() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xseller",
		Status:   nft.StatusMinted,
	}, nil)
	s.auctionRepo.On("FindActiveByNft", mock.Anything, nftId).Return(s.liveAuction(nil, nil), nil)

	_, err := s.im.CreateAuction(ctx, auction.CreateAuctionArgs{
		NftId:      nftId,
		Seller:     "0xseller",
		StartPrice: "1",
		StartTime:  s.now,
		EndTime:    s.now.Add(time.Hour),
	})
	s.Require().ErrorIs(err, domain.ErrConflict)
	// the duplicate check runs inside the transactional unit, so a
	// racing create retried on the nft write conflict sees it too
	s.q.AssertCalled(s.T(), "RunWithTransaction", mock.Anything, mock.Anything)
	s.auctionRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *auctionUsecaseSuite) TestCreateAuctionNotOwner() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xseller",
		Status:   nft.StatusMinted,
	}, nil)

	_, err := s.im.CreateAuction(ctx, auction.CreateAuctionArgs{
		NftId:      nftId,
		Seller:     "0xintruder",
		StartPrice: "1",
		StartTime:  s.now,
		EndTime:    s.now.Add(time.Hour),
	})
	s.Require().ErrorIs(err, domain.ErrPermission)
}

// Bid sequence 0.4, 0.5, 1.0, 0.8, 3.0 against a 0.5 start price: the
// 0.4 opener misses the start price, the 0.8 raise loses to the
// standing 1.0, everything else is accepted.
func (s *auctionUsecaseSuite) TestPlaceBidMonotonic() {
	ctx := bCtx.Background()

	cases := []struct {
		amount     string
		currentBid *string
		accepted   bool
	}{
		{"0.4", nil, false},
		{"0.5", nil, true},
		{"1.0", strPtr("0.5"), true},
		{"0.8", strPtr("1.0"), false},
		{"3.0", strPtr("1.0"), true},
	}

	for _, c := range cases {
		s.SetupTest()
		a := s.liveAuction(c.currentBid, nil)
		s.auctionRepo.On("FindOne", mock.Anything, a.ObjectId).Return(a, nil)
		if c.accepted {
			s.auctionRepo.On("UpdateBid", mock.Anything, a.ObjectId, c.currentBid, c.amount, domain.Address("0xbidder")).Return(nil)
			s.bidRepo.On("Insert", mock.Anything, mock.MatchedBy(func(b *auction.Bid) bool {
				return b.AuctionId == a.ObjectId && b.Amount == c.amount
			})).Return(nil)
		}

		got, err := s.im.PlaceBid(ctx, a.ObjectId, "0xBidder", c.amount)
		if c.accepted {
			s.Require().NoError(err, "amount %s", c.amount)
			s.Equal(c.amount, *got.CurrentBid)
			s.Equal(domain.Address("0xbidder"), *got.HighestBidder)
			s.bidRepo.AssertExpectations(s.T())
		} else {
			s.Require().ErrorIs(err, domain.ErrConflict, "amount %s", c.amount)
			s.auctionRepo.AssertNotCalled(s.T(), "UpdateBid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	}
}

func (s *auctionUsecaseSuite) TestPlaceBidEqualToCurrentRejected() {
	ctx := bCtx.Background()
	a := s.liveAuction(strPtr("2"), nil)
	s.auctionRepo.On("FindOne", mock.Anything, a.ObjectId).Return(a, nil)

	_, err := s.im.PlaceBid(ctx, a.ObjectId, "0xbidder", "2")
	s.Require().ErrorIs(err, domain.ErrConflict)
}

func (s *auctionUsecaseSuite) TestPlaceBidInvalidAmount() {
	ctx := bCtx.Background()
	a := s.liveAuction(nil, nil)
	s.auctionRepo.On("FindOne", mock.Anything, a.ObjectId).Return(a, nil)

	_, err := s.im.PlaceBid(ctx, a.ObjectId, "0xbidder", "banana")
	s.Require().ErrorIs(err, domain.ErrValidation)

	_, err = s.im.PlaceBid(ctx, a.ObjectId, "0xbidder", "-1")
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *auctionUsecaseSuite) TestPlaceBidAfterDeadline() {
	ctx := bCtx.Background()
	a := s.liveAuction(nil, nil)
	a.EndTime = s.now.Add(-time.Minute)
	s.auctionRepo.On("FindOne", mock.Anything, a.ObjectId).Return(a, nil)
	s.auctionRepo.On("Deactivate", mock.Anything, a.ObjectId).Return(nil)

	_, err := s.im.PlaceBid(ctx, a.ObjectId, "0xbidder", "5")
	s.Require().ErrorIs(err, domain.ErrConflict)
	s.auctionRepo.AssertCalled(s.T(), "Deactivate", mock.Anything, a.ObjectId)
}

func (s *auctionUsecaseSuite) TestPlaceBidLostRace() {
	ctx := bCtx.Background()
	a := s.liveAuction(strPtr("1"), nil)
	s.auctionRepo.On("FindOne", mock.Anything, a.ObjectId).Return(a, nil)
	s.auctionRepo.On("UpdateBid", mock.Anything, a.ObjectId, a.CurrentBid, "2", domain.Address("0xbidder")).
		Return(domain.ErrNotFound)

	_, err := s.im.PlaceBid(ctx, a.ObjectId, "0xbidder", "2")
	s.Require().ErrorIs(err, domain.ErrConcurrency)
	s.bidRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *auctionUsecaseSuite) TestEndAuctionSettlesWinner() {
	ctx := bCtx.Background()
	bidder := domain.Address("0xwinner")
	a := s.liveAuction(strPtr("3.0"), &bidder)

	s.auctionRepo.On("FindOne", mock.Anything, a.ObjectId).Return(a, nil)
	s.auctionRepo.On("MarkSettled", mock.Anything, a.ObjectId).Return(nil)
	s.nftUsecase.On("Transfer", mock.Anything, nft.TransferArgs{
		NftId:           a.NftId,
		From:            "0xseller",
		NewOwner:        bidder,
		Price:           "3.0",
		TransactionRef:  "auction:" + a.ObjectId.Hex(),
		ResultingStatus: nft.StatusSold,
	}).Return(nil)
	s.nftUsecase.On("FinalizeTransfer", mock.Anything, a.NftId, bidder, "3.0", "auction:"+a.ObjectId.Hex()).Return()

	res, err := s.im.EndAuction(ctx, a.ObjectId, "0xSeller")
	s.Require().NoError(err)
	s.True(res.Settled)
	s.nftUsecase.AssertExpectations(s.T())
}

// Bidding already closed lazily by a deadline-lapsed bid; the seller's
// close must still settle the highest bidder.
func (s *auctionUsecaseSuite) TestEndAuctionAfterLateBidClose() {
	ctx := bCtx.Background()
	bidder := domain.Address("0xwinner")
	a := s.liveAuction(strPtr("2"), &bidder)
	a.EndTime = s.now.Add(-time.Minute)
	a.Active = false

	s.auctionRepo.On("FindOne", mock.Anything, a.ObjectId).Return(a, nil)
	s.auctionRepo.On("MarkSettled", mock.Anything, a.ObjectId).Return(nil)
	s.nftUsecase.On("Transfer", mock.Anything, mock.MatchedBy(func(args nft.TransferArgs) bool {
		return args.NewOwner == bidder && args.Price == "2"
	})).Return(nil)
	s.nftUsecase.On("FinalizeTransfer", mock.Anything, a.NftId, bidder, "2", "auction:"+a.ObjectId.Hex()).Return()

	res, err := s.im.EndAuction(ctx, a.ObjectId, "0xseller")
	s.Require().NoError(err)
	s.True(res.Settled)
	s.nftUsecase.AssertNumberOfCalls(s.T(), "Transfer", 1)
}

func (s *auctionUsecaseSuite) TestEndAuctionNoBids() {
	ctx := bCtx.Background()
	a := s.liveAuction(nil, nil)

	s.auctionRepo.On("FindOne", mock.Anything, a.ObjectId).Return(a, nil)
	s.auctionRepo.On("MarkSettled", mock.Anything, a.ObjectId).Return(nil)
	s.nftRepo.On("Patch", mock.Anything, a.NftId, mock.MatchedBy(func(p nft.PatchableNft) bool {
		return p.Status != nil && *p.Status == nft.StatusMinted
	})).Return(nil)

	res, err := s.im.EndAuction(ctx, a.ObjectId, "0xseller")
	s.Require().NoError(err)
	s.False(res.Settled)
	s.nftUsecase.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything)
	s.nftUsecase.AssertNotCalled(s.T(), "FinalizeTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// The second concurrent close loses the compare-and-swap on the settled
// marker and must not settle again.
func (s *auctionUsecaseSuite) TestEndAuctionExactlyOnce() {
	ctx := bCtx.Background()
	bidder := domain.Address("0xwinner")
	a := s.liveAuction(strPtr("2"), &bidder)

	s.auctionRepo.On("FindOne", mock.Anything, a.ObjectId).Return(a, nil)
	s.auctionRepo.On("MarkSettled", mock.Anything, a.ObjectId).Return(nil).Once()
	s.auctionRepo.On("MarkSettled", mock.Anything, a.ObjectId).Return(domain.ErrNotFound)
	s.nftUsecase.On("Transfer", mock.Anything, mock.Anything).Return(nil)
	s.nftUsecase.On("FinalizeTransfer", mock.Anything, a.NftId, bidder, "2", "auction:"+a.ObjectId.Hex()).Return()

	res, err := s.im.EndAuction(ctx, a.ObjectId, "0xseller")
	s.Require().NoError(err)
	s.True(res.Settled)

	_, err = s.im.EndAuction(ctx, a.ObjectId, "0xseller")
	s.Require().ErrorIs(err, domain.ErrConflict)
	s.nftUsecase.AssertNumberOfCalls(s.T(), "Transfer", 1)
	s.nftUsecase.AssertNumberOfCalls(s.T(), "FinalizeTransfer", 1)
}

func (s *auctionUsecaseSuite) TestEndAuctionNotSeller() {
	ctx := bCtx.Background()
	a := s.liveAuction(nil, nil)
	s.auctionRepo.On("FindOne", mock.Anything, a.ObjectId).Return(a, nil)

	_, err := s.im.EndAuction(ctx, a.ObjectId, "0xintruder")
	s.Require().ErrorIs(err, domain.ErrPermission)
	s.auctionRepo.AssertNotCalled(s.T(), "MarkSettled", mock.Anything, mock.Anything)
}

func strPtr(s string) *string { return &s }
