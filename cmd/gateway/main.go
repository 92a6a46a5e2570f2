package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"dtech-os/internal/configs"
	httpdelivery "dtech-os/internal/delivery/http"
	"dtech-os/internal/delivery/kafka"
	"dtech-os/internal/printdoc"
	"dtech-os/internal/remote"
	"dtech-os/internal/repository"
	"dtech-os/internal/service"
)

// @title dtech-os gateway
// @version 1.0
// @description Gateway for the D-Tech service order system. Normalizes orders fetched from the upstream spreadsheet API, keeps them in an in-memory cache and renders printable documents and CSV exports.

// @host localhost:8081
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokens := remote.NewTokenStore(cfg.TokenDir)
	api := remote.NewClient(cfg.APIBaseURL, tokens, cfg.APITimeout)

	repo := repository.NewRepository()
	shop := printdoc.Shop{
		Name:     cfg.ShopName,
		Address:  cfg.ShopAddress,
		CNPJ:     cfg.ShopCNPJ,
		WhatsApp: cfg.ShopWhatsApp,
	}

	opts := []service.Option{}
	if brokers := cfg.KafkaBrokersSlice(); len(brokers) > 0 {
		pub, perr := kafka.NewPublisher(brokers, cfg.KafkaTopic)
		if perr != nil {
			logrus.Fatalf("kafka publisher connect: %s", perr)
		}
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logrus.Errorf("publisher close: %v", cerr)
			}
		}()
		opts = append(opts, service.WithPublisher(pub))
		logrus.Print("connected to kafka")
	}

	svc := service.NewService(repo, api, shop, opts...)

	if api.HasToken() {
		if _, err := svc.RefreshOrders(ctx); err != nil {
			logrus.Warnf("warm cache: %s", err)
		} else {
			logrus.Print("cache warmed from upstream")
		}
	}

	h := httpdelivery.NewHandler(svc)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	logrus.Print("service stopped")
}
