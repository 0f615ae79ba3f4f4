package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/delivery"
	"github.com/mintora/goapi/base/metrics"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/auction"
	authMiddleware "github.com/mintora/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, auctionUsecase auction.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("auction")

	h := &handler{auctionUsecase}

	gs := e.Group("/auctions")

	gs.POST("", h.create, authMiddleware.Auth())

	g := e.Group("/auctions/:id")

	g.GET("", h.get)

	g.GET("/bids", h.getBids)

	g.POST("/bids", h.placeBid, authMiddleware.Auth())

	g.POST("/end", h.end, authMiddleware.Auth())

	e.GET("/nfts/:id/auction", h.getByNft)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		NftId        string    `json:"nftId"`
		StartPrice   string    `json:"startPrice"`
		ReservePrice *string   `json:"reservePrice"`
		StartTime    time.Time `json:"startTime"`
		EndTime      time.Time `json:"endTime"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	nftId, err := primitive.ObjectIDFromHex(p.NftId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid nft id")
	}

	a, err := h.auction.CreateAuction(ctx, auction.CreateAuctionArgs{
		NftId:        nftId,
		Seller:       address,
		StartPrice:   p.StartPrice,
		ReservePrice: p.ReservePrice,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, a)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	if a, err := h.auction.GetAuction(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, a)
	}
}

func (h *handler) getByNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	nftId, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	if a, err := h.auction.GetAuctionByNft(ctx, nftId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, a)
	}
}

func (h *handler) getBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	if bids, err := h.auction.GetBids(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, bids)
	}
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	type params struct {
		Amount string `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	a, err := h.auction.PlaceBid(ctx, id, address, p.Amount)
	if err != nil {
		met.BumpSum("bid.rejected", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("bid.accepted", 1)
	return delivery.MakeJsonResp(c, http.StatusCreated, a)
}

func (h *handler) end(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	defer met.BumpTime("end_auction.time").End()

	if res, err := h.auction.EndAuction(ctx, id, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
