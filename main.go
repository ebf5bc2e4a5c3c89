package main

import (
	"context"
	"fmt"
	"os"

	"restaurant-pos/bot"
	"restaurant-pos/catalog"
	"restaurant-pos/config"
	"restaurant-pos/db"
	"restaurant-pos/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// `seed` pushes the embedded menu into Postgres and exits.
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		runSeed(cfg)
		return
	}

	menu, err := loadCatalog(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		os.Exit(1)
	}
	fmt.Printf("Catalog loaded: %d items.\n", menu.Len())

	// With a bot token this terminal serves Telegram; otherwise it is
	// an interactive POS in the current terminal.
	if cfg.Telegram.Token != "" {
		b, err := bot.New(cfg, menu)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bot:", err)
			os.Exit(1)
		}
		fmt.Println("Bot started.")
		b.Start()
		return
	}

	if err := tui.Run(cfg.Restaurant.Name, menu); err != nil {
		fmt.Fprintln(os.Stderr, "tui:", err)
		os.Exit(1)
	}
}

// loadCatalog picks the menu source: explicit YAML file, then
// Postgres when configured, then the menu embedded in the binary.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Restaurant.CatalogFile != "" {
		return catalog.LoadFile(cfg.Restaurant.CatalogFile)
	}
	if cfg.UseDB() {
		if err := db.Init(cfg.DB); err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
		return catalog.LoadPostgres(context.Background())
	}
	return catalog.Default(), nil
}

func runSeed(cfg *config.Config) {
	if !cfg.UseDB() {
		fmt.Fprintln(os.Stderr, "seed: DB_HOST not set")
		os.Exit(1)
	}
	if err := db.Init(cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	n, err := catalog.Seed(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded %d menu items.\n", n)
}
