package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"dtech-os/internal/configs"
	"dtech-os/internal/printdoc"
	"dtech-os/internal/remote"
	"dtech-os/internal/repository"
	"dtech-os/internal/service"
)

// One-shot tool: fetches all orders from the upstream API and writes a
// CSV snapshot to the current directory.
func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}

	tokens := remote.NewTokenStore(cfg.TokenDir)
	api := remote.NewClient(cfg.APIBaseURL, tokens, cfg.APITimeout)
	if !api.HasToken() {
		logrus.Fatal("no stored session token, login through the gateway first")
	}

	svc := service.NewService(repository.NewRepository(), api, printdoc.Shop{
		Name:     cfg.ShopName,
		Address:  cfg.ShopAddress,
		CNPJ:     cfg.ShopCNPJ,
		WhatsApp: cfg.ShopWhatsApp,
	})

	list, err := svc.RefreshOrders(context.Background())
	if err != nil {
		logrus.Fatalf("fetch orders: %s", err)
	}
	logrus.Printf("fetched %d orders", len(list))

	filename, content, err := svc.ExportCSV("")
	if err != nil {
		logrus.Fatalf("export: %s", err)
	}

	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		logrus.Fatalf("write csv: %s", err)
	}

	abs, _ := filepath.Abs(filename)
	logrus.Printf("wrote %s", abs)
}
