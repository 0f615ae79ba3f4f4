package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/delivery"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/offer"
	authMiddleware "github.com/mintora/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	offer offer.UseCase
}

func New(e *echo.Echo, offerUsecase offer.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{offerUsecase}

	gs := e.Group("/offers")

	gs.POST("", h.create, authMiddleware.Auth())

	gs.GET("", h.getByBuyer, authMiddleware.Auth())

	g := e.Group("/offers/:id")

	g.POST("/accept", h.accept, authMiddleware.Auth())

	g.POST("/reject", h.reject, authMiddleware.Auth())
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		NftId     string     `json:"nftId"`
		Amount    string     `json:"amount"`
		Currency  string     `json:"currency"`
		ExpiresAt *time.Time `json:"expiresAt"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	nftId, err := primitive.ObjectIDFromHex(p.NftId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid nft id")
	}

	o, err := h.offer.CreateOffer(ctx, offer.CreateOfferArgs{
		NftId:     nftId,
		Buyer:     address,
		Amount:    p.Amount,
		Currency:  p.Currency,
		ExpiresAt: p.ExpiresAt,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, o)
}

func (h *handler) getByBuyer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	if offers, err := h.offer.GetOffersByBuyer(ctx, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, offers)
	}
}

func (h *handler) accept(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.offer.AcceptOffer(ctx, id, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) reject(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.offer.RejectOffer(ctx, id, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
