package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"

	"budgetcast/internal/config"
	"budgetcast/internal/database"
	"budgetcast/internal/models"
	"budgetcast/internal/services"
)

// app bundles the services a command reads from.
type app struct {
	db          *database.Manager
	settings    services.SettingServicer
	projections services.ProjectionServicer
}

func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	dbConfig, err := database.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database configuration: %w", err)
	}
	manager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, err
	}

	db := manager.DB()
	settings := services.NewSettingService(db, services.SettingDefaults{
		Currency:         cfg.DefaultCurrency,
		ProjectionMonths: cfg.ProjectionMonths,
	})
	wishlist := services.NewWishlistService(db)
	return &app{
		db:          manager,
		settings:    settings,
		projections: services.NewProjectionService(db, settings, wishlist, cfg.AffordabilityMonths),
	}, nil
}

func (a *app) Close() {
	_ = a.db.Close()
}

// currency returns the display currency, falling back to USD when the
// settings cannot be read.
func (a *app) currency(ctx context.Context) string {
	s, err := a.settings.GetSettings(ctx)
	if err != nil {
		return "USD"
	}
	return s.Currency
}

// dateFormat returns the display date format, falling back to the default
// when the settings cannot be read.
func (a *app) dateFormat(ctx context.Context) string {
	s, err := a.settings.GetSettings(ctx)
	if err != nil {
		return models.DefaultDateFormat
	}
	return s.DateFormat
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printMarkdown renders md for the terminal, printing it raw if the
// renderer fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "warning: cannot render markdown: %v\n", err)
	fmt.Print(md)
}
