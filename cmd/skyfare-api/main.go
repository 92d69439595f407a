// README: Entry point; loads config, wires stores and services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"skyfare/internal/config"
	httptransport "skyfare/internal/http"
	"skyfare/internal/infra"
	"skyfare/internal/modules/airport"
	"skyfare/internal/modules/booking"
	"skyfare/internal/modules/pricing"
	"skyfare/internal/modules/route"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	airportStore := airport.NewStore(dbPool)

	routeStore := route.NewStore(redisClient, cfg.Redis.RouteCacheTTL)
	routeSvc := route.NewService(routeStore)

	pricingStore := pricing.NewStore(dbPool)
	pricingSvc := pricing.NewService(pricingStore, nil)

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Airports:     airportStore,
		Routes:       routeSvc,
		RouteCache:   routeStore,
		Pricing:      pricingSvc,
		PricingStore: pricingStore,
		Booking:      bookingSvc,
		Defaults:     cfg.Pricing,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("skyfare-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
