package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	bCtx "github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/nft"
	nftMocks "github.com/mintora/goapi/domain/nft/mocks"
	"github.com/mintora/goapi/domain/offer"
	offerMocks "github.com/mintora/goapi/domain/offer/mocks"
	queryMocks "github.com/mintora/goapi/service/query/mocks"
)

type offerUsecaseSuite struct {
	suite.Suite

	offerRepo  *offerMocks.Repo
	nftRepo    *nftMocks.Repo
	nftUsecase *nftMocks.Usecase
	q          *queryMocks.Mongo
	im         *impl

	now time.Time
}

func TestOfferUsecaseSuite(t *testing.T) {
	suite.Run(t, new(offerUsecaseSuite))
}

func (s *offerUsecaseSuite) SetupTest() {
	s.offerRepo = &offerMocks.Repo{}
	s.nftRepo = &nftMocks.Repo{}
	s.nftUsecase = &nftMocks.Usecase{}
	s.q = &queryMocks.Mongo{}

	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) },
	)

	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.im = New(&OfferUseCaseCfg{
		OfferRepo:  s.offerRepo,
		NftRepo:    s.nftRepo,
		NftUsecase: s.nftUsecase,
		Q:          s.q,
	}).(*impl)
	s.im.timeNow = func() time.Time { return s.now }
}

func (s *offerUsecaseSuite) pendingOffer(nftId primitive.ObjectID) *offer.Offer {
	return &offer.Offer{
		ObjectId:  primitive.NewObjectID(),
		NftId:     nftId,
		Buyer:     "0xbuyer",
		Amount:    "6",
		Currency:  "ETH",
		Status:    offer.StatusPending,
		CreatedAt: s.now.Add(-time.Hour),
	}
}

func (s *offerUsecaseSuite) TestCreateOffer() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xowner",
		Status:   nft.StatusListed,
	}, nil)
	s.offerRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *offer.Offer) bool {
		return o.NftId == nftId && o.Status == offer.StatusPending && o.Currency == "ETH"
	})).Return(primitive.NewObjectID(), nil)

	o, err := s.im.CreateOffer(ctx, offer.CreateOfferArgs{
		NftId:  nftId,
		Buyer:  "0xBuyer",
		Amount: "2.5",
	})
	s.Require().NoError(err)
	s.Equal(offer.StatusPending, o.Status)
	s.Equal(domain.Address("0xbuyer"), o.Buyer)
	s.offerRepo.AssertExpectations(s.T())
}

func (s *offerUsecaseSuite) TestCreateOfferInvalidAmount() {
	ctx := bCtx.Background()

	_, err := s.im.CreateOffer(ctx, offer.CreateOfferArgs{
		NftId:  primitive.NewObjectID(),
		Buyer:  "0xbuyer",
		Amount: "0",
	})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *offerUsecaseSuite) TestCreateOfferExpiryInPast() {
	ctx := bCtx.Background()
	past := s.now.Add(-time.Minute)

	_, err := s.im.CreateOffer(ctx, offer.CreateOfferArgs{
		NftId:     primitive.NewObjectID(),
		Buyer:     "0xbuyer",
		Amount:    "1",
		ExpiresAt: &past,
	})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *offerUsecaseSuite) TestCreateOfferOnBurnedAsset() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()

	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xowner",
		Status:   nft.StatusBurned,
	}, nil)

	_, err := s.im.CreateOffer(ctx, offer.CreateOfferArgs{
		NftId:  nftId,
		Buyer:  "0xbuyer",
		Amount: "1",
	})
	s.Require().ErrorIs(err, domain.ErrConflict)
}

func (s *offerUsecaseSuite) TestAcceptOffer() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()
	o := s.pendingOffer(nftId)

	s.offerRepo.On("FindOne", mock.Anything, o.ObjectId).Return(o, nil)
	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xowner",
		Status:   nft.StatusListed,
		Price:    "2",
	}, nil)
	s.offerRepo.On("UpdateStatus", mock.Anything, o.ObjectId, offer.StatusPending, offer.StatusAccepted).Return(nil)
	s.offerRepo.On("RejectAllPending", mock.Anything, nftId).Return(int64(2), nil)
	s.nftUsecase.On("Transfer", mock.Anything, nft.TransferArgs{
		NftId:           nftId,
		From:            "0xowner",
		NewOwner:        "0xbuyer",
		Price:           "6",
		TransactionRef:  "offer:" + o.ObjectId.Hex(),
		ResultingStatus: nft.StatusSold,
	}).Return(nil)
	s.nftUsecase.On("FinalizeTransfer", mock.Anything, nftId, domain.Address("0xbuyer"), "6", "offer:"+o.ObjectId.Hex()).Return()

	s.Require().NoError(s.im.AcceptOffer(ctx, o.ObjectId, "0xOwner"))
	s.offerRepo.AssertExpectations(s.T())
	s.nftUsecase.AssertExpectations(s.T())
}

// An active auction owns the asset; offers can pile up meanwhile but
// cannot be accepted until it closes.
func (s *offerUsecaseSuite) TestAcceptOfferDuringAuction() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()
	o := s.pendingOffer(nftId)

	s.offerRepo.On("FindOne", mock.Anything, o.ObjectId).Return(o, nil)
	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xowner",
		Status:   nft.StatusAuction,
	}, nil)

	err := s.im.AcceptOffer(ctx, o.ObjectId, "0xowner")
	s.Require().ErrorIs(err, domain.ErrConflict)
	s.offerRepo.AssertNotCalled(s.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.nftUsecase.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything)
}

func (s *offerUsecaseSuite) TestAcceptOfferNotOwner() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()
	o := s.pendingOffer(nftId)

	s.offerRepo.On("FindOne", mock.Anything, o.ObjectId).Return(o, nil)
	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xowner",
		Status:   nft.StatusListed,
	}, nil)

	err := s.im.AcceptOffer(ctx, o.ObjectId, "0xbuyer")
	s.Require().ErrorIs(err, domain.ErrPermission)
	s.offerRepo.AssertNotCalled(s.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *offerUsecaseSuite) TestAcceptOfferNotPending() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()
	o := s.pendingOffer(nftId)
	o.Status = offer.StatusRejected

	s.offerRepo.On("FindOne", mock.Anything, o.ObjectId).Return(o, nil)
	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xowner",
		Status:   nft.StatusListed,
	}, nil)

	err := s.im.AcceptOffer(ctx, o.ObjectId, "0xowner")
	s.Require().ErrorIs(err, domain.ErrConflict)
}

func (s *offerUsecaseSuite) TestAcceptOfferExpired() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()
	o := s.pendingOffer(nftId)
	expired := s.now.Add(-time.Minute)
	o.ExpiresAt = &expired

	s.offerRepo.On("FindOne", mock.Anything, o.ObjectId).Return(o, nil)
	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xowner",
		Status:   nft.StatusListed,
	}, nil)

	err := s.im.AcceptOffer(ctx, o.ObjectId, "0xowner")
	s.Require().ErrorIs(err, domain.ErrConflict)
	s.nftUsecase.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything)
}

// A racing settlement flipped the offer away from pending after the
// first read, the swap misses and nothing settles.
func (s *offerUsecaseSuite) TestAcceptOfferLostRace() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()
	o := s.pendingOffer(nftId)

	s.offerRepo.On("FindOne", mock.Anything, o.ObjectId).Return(o, nil)
	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xowner",
		Status:   nft.StatusListed,
	}, nil)
	s.offerRepo.On("UpdateStatus", mock.Anything, o.ObjectId, offer.StatusPending, offer.StatusAccepted).
		Return(domain.ErrNotFound)

	err := s.im.AcceptOffer(ctx, o.ObjectId, "0xowner")
	s.Require().ErrorIs(err, domain.ErrConflict)
	s.nftUsecase.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything)
}

func (s *offerUsecaseSuite) TestRejectOffer() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()
	o := s.pendingOffer(nftId)

	s.offerRepo.On("FindOne", mock.Anything, o.ObjectId).Return(o, nil)
	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xowner",
		Status:   nft.StatusListed,
	}, nil)
	s.offerRepo.On("UpdateStatus", mock.Anything, o.ObjectId, offer.StatusPending, offer.StatusRejected).Return(nil)

	s.Require().NoError(s.im.RejectOffer(ctx, o.ObjectId, "0xowner"))
	s.offerRepo.AssertExpectations(s.T())
}

func (s *offerUsecaseSuite) TestRejectOfferNotOwner() {
	ctx := bCtx.Background()
	nftId := primitive.NewObjectID()
	o := s.pendingOffer(nftId)

	s.offerRepo.On("FindOne", mock.Anything, o.ObjectId).Return(o, nil)
	s.nftRepo.On("FindOne", mock.Anything, nftId).Return(&nft.Nft{
		ObjectId: nftId,
		Owner:    "0xowner",
		Status:   nft.StatusListed,
	}, nil)

	err := s.im.RejectOffer(ctx, o.ObjectId, "0xbuyer")
	s.Require().ErrorIs(err, domain.ErrPermission)
}
