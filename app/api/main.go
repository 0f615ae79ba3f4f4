package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/database/mongoclient"
	"github.com/mintora/goapi/base/log"
	bValidator "github.com/mintora/goapi/base/validator"
	mmiddleware "github.com/mintora/goapi/middleware"
	"github.com/mintora/goapi/service/cache"
	"github.com/mintora/goapi/service/cache/provider/primitive"
	"github.com/mintora/goapi/service/notification"
	"github.com/mintora/goapi/service/query"
	account_repository "github.com/mintora/goapi/stores/account/repository"
	account_usecase "github.com/mintora/goapi/stores/account/usecase"
	auction_delivery "github.com/mintora/goapi/stores/auction/delivery/http"
	auction_repository "github.com/mintora/goapi/stores/auction/repository"
	auction_usecase "github.com/mintora/goapi/stores/auction/usecase"
	auth_delivery "github.com/mintora/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/mintora/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/mintora/goapi/stores/auth/usecase"
	hc_delivery "github.com/mintora/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/mintora/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/mintora/goapi/stores/healthcheck/usecase"
	nft_delivery "github.com/mintora/goapi/stores/nft/delivery/http"
	nft_repository "github.com/mintora/goapi/stores/nft/repository"
	nft_usecase "github.com/mintora/goapi/stores/nft/usecase"
	offer_delivery "github.com/mintora/goapi/stores/offer/delivery/http"
	offer_repository "github.com/mintora/goapi/stores/offer/repository"
	offer_usecase "github.com/mintora/goapi/stores/offer/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	mmiddleware.SetupCache()

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	nftCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("cache.nftTtl"),
		Pfx:   "nft",
		Cache: primitive.NewPrimitive("nft", 64),
	})

	notifier := notification.New(viper.GetInt("notification.poolSize"), notification.NewLogSender())
	defer notifier.Close()

	// repositories
	accountRepo := account_repository.New(q)
	nftRepo := nft_repository.NewNft(q)
	historyRepo := nft_repository.NewOwnershipHistory(q)
	auctionRepo := auction_repository.NewAuction(q)
	bidRepo := auction_repository.NewBid(q)
	offerRepo := offer_repository.New(q)

	// usecases
	accountUsecase := account_usecase.New(accountRepo)
	authUsecase := auth_usecase.New(viper.GetString("jwtSecret"), accountUsecase)
	nftUsecase := nft_usecase.New(&nft_usecase.NftUseCaseCfg{
		NftRepo:     nftRepo,
		HistoryRepo: historyRepo,
		AccountRepo: accountRepo,
		AuctionRepo: auctionRepo,
		Q:           q,
		Cache:       nftCache,
		Notifier:    notifier,
	})
	auctionUsecase := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo: auctionRepo,
		BidRepo:     bidRepo,
		NftRepo:     nftRepo,
		NftUsecase:  nftUsecase,
		Q:           q,
	})
	offerUsecase := offer_usecase.New(&offer_usecase.OfferUseCaseCfg{
		OfferRepo:  offerRepo,
		NftRepo:    nftRepo,
		NftUsecase: nftUsecase,
		Q:          q,
	})

	// delivery
	authMiddleware := auth_middleware.New(authUsecase)
	hc_delivery.New(e, hc_usecase.New(hc_repo.New(mongoClient)))
	auth_delivery.New(e, authUsecase)
	nft_delivery.New(e, nftUsecase, offerUsecase, authMiddleware)
	auction_delivery.New(e, auctionUsecase, authMiddleware)
	offer_delivery.New(e, offerUsecase, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
