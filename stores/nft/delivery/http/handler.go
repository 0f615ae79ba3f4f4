package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/delivery"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/nft"
	"github.com/mintora/goapi/domain/offer"
	"github.com/mintora/goapi/middleware"
	authMiddleware "github.com/mintora/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	nft   nft.Usecase
	offer offer.UseCase
}

func New(e *echo.Echo, nftUsecase nft.Usecase, offerUsecase offer.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{nftUsecase, offerUsecase}

	gs := e.Group("/nfts")

	gs.POST("", h.mint, authMiddleware.Auth())

	g := e.Group("/nfts/:id")

	g.GET("", h.get)

	// the ledger is append-only, brief staleness is fine
	g.GET("/history", h.getHistory, middleware.CacheHttp(10*time.Second))

	g.GET("/offers", h.getOffers)

	g.POST("/transfer", h.transfer, authMiddleware.Auth())

	g.POST("/list", h.listForSale, authMiddleware.Auth())

	g.POST("/burn", h.burn, authMiddleware.Auth())
}

func parseNftId(c echo.Context) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param("id"))
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		TokenId         domain.TokenId `json:"tokenId"`
		Name            string         `json:"name"`
		Description     string         `json:"description"`
		ImageUrl        string         `json:"imageUrl"`
		ContractAddress string         `json:"contractAddress"`
		Blockchain      string         `json:"blockchain"`
		TokenStandard   string         `json:"tokenStandard"`
		Currency        string         `json:"currency"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	item, err := h.nft.Mint(ctx, nft.MintArgs{
		TokenId:         p.TokenId,
		Name:            p.Name,
		Description:     p.Description,
		ImageUrl:        p.ImageUrl,
		Creator:         address,
		ContractAddress: p.ContractAddress,
		Blockchain:      p.Blockchain,
		TokenStandard:   p.TokenStandard,
		Currency:        p.Currency,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, item)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseNftId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	if item, err := h.nft.Get(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, item)
	}
}

func (h *handler) getHistory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseNftId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	if entries, err := h.nft.GetOwnershipHistory(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, entries)
	}
}

func (h *handler) getOffers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseNftId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	if offers, err := h.offer.GetOffersByNft(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, offers)
	}
}

func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := parseNftId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	type params struct {
		To     domain.Address `json:"to"`
		TxHash string         `json:"txHash"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.nft.ManualTransfer(ctx, id, address, p.To, p.TxHash); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) listForSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := parseNftId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	type params struct {
		Price    string `json:"price"`
		Currency string `json:"currency"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.nft.ListForSale(ctx, id, address, p.Price, p.Currency); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) burn(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	id, err := parseNftId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.nft.Burn(ctx, id, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
