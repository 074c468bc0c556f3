package router

import (
	"github.com/denmor86/ya-giftcredits/internal/config"
	"github.com/denmor86/ya-giftcredits/internal/network/handlers"
	"github.com/denmor86/ya-giftcredits/internal/network/middleware"
	"github.com/denmor86/ya-giftcredits/internal/services"
	"github.com/denmor86/ya-giftcredits/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	Config  config.Config
	Shop    services.ShopService
	Gifts   services.GiftsService
	Payouts services.PayoutsService
}

func NewRouter(config config.Config, storage storage.Storage, rates services.RatesService) *Router {
	return &Router{
		Config:  config,
		Shop:    services.NewShop(storage.Packages, storage.Wallets),
		Gifts:   services.NewGifts(storage.Wallets),
		Payouts: services.NewPayouts(storage.Wallets, storage.Payouts, rates),
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Get("/gifts", handlers.GiftCatalogHandler(router.Gifts))
		r.Get("/shop/packages", handlers.ListPackagesHandler(router.Shop))
		r.Get("/payouts/quote", handlers.PayoutQuoteHandler(router.Payouts))
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/wallet", handlers.GetWalletHandler(router.Payouts))
			r.Post("/purchases", handlers.PurchaseHandler(router.Shop))
			r.Post("/gifts", handlers.SendGiftHandler(router.Gifts))
			r.Get("/payouts", handlers.GetPayoutsHandler(router.Payouts))
			r.Post("/payouts", handlers.RequestPayoutHandler(router.Payouts))
		})
	})
	return r
}
