package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/noah-isme/kasir/internal/catalog"
	"github.com/noah-isme/kasir/internal/checkout"
	"github.com/noah-isme/kasir/internal/cli"
	"github.com/noah-isme/kasir/internal/config"
	"github.com/noah-isme/kasir/internal/obs"
	"github.com/noah-isme/kasir/internal/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kasir: %v\n", err)
		os.Exit(1)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)

	store, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("load catalog")
	}
	rules, err := pricing.LoadRules(cfg.RulesPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.RulesPath).Msg("load pricing rules")
	}

	session := &cli.Session{
		Engine:   checkout.New(store, rules, logger),
		Store:    store,
		Currency: cfg.Currency,
		Log:      logger,
	}

	if slices.Contains(os.Args[1:], "--help") || slices.Contains(os.Args[1:], "-h") {
		session.PrintHelp(os.Stdout)
		return
	}

	if err := session.Run(os.Stdin, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("interactive session")
	}
}
