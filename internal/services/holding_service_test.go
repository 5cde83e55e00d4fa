package services

import (
	"context"
	"testing"
	"time"

	"budgetcast/internal/models"
	"budgetcast/internal/pagination"
	"budgetcast/internal/testutil"
)

func TestCreateHolding(t *testing.T) {
	t.Run("normalizes_ticker_and_defaults_price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		p := testutil.CreateTestPortfolio(t, db, "0", "0", "5")

		h, err := svc.CreateHolding(context.Background(), HoldingInput{
			PortfolioID:  p.ID,
			Ticker:       "  vwce ",
			Name:         "FTSE All-World",
			Shares:       dec("12.5"),
			AvgPrice:     dec("98.40"),
			PurchaseDate: models.NewDate(2025, time.May, 2),
		})
		testutil.AssertNoError(t, err)

		got, err := svc.GetHoldingByID(context.Background(), h.ID)
		testutil.AssertNoError(t, err)
		if got.Ticker != "VWCE" {
			t.Errorf("expected ticker VWCE, got %q", got.Ticker)
		}
		testutil.AssertDecimal(t, "current_price", got.CurrentPrice, "98.40")
		if got.PurchaseDate.String() != "2025-05-02" {
			t.Errorf("unexpected purchase date %s", got.PurchaseDate)
		}
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)
		p := testutil.CreateTestPortfolio(t, db, "0", "0", "5")
		negative := dec("-1")

		cases := map[string]HoldingInput{
			"blank_ticker":   {PortfolioID: p.ID, Ticker: "  ", Shares: dec("1"), AvgPrice: dec("10")},
			"zero_shares":    {PortfolioID: p.ID, Ticker: "AAPL", Shares: dec("0"), AvgPrice: dec("10")},
			"negative_price": {PortfolioID: p.ID, Ticker: "AAPL", Shares: dec("1"), AvgPrice: dec("10"), CurrentPrice: &negative},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := svc.CreateHolding(context.Background(), in)
				testutil.AssertAppError(t, err, "INVALID_INPUT")
			})
		}
	})

	t.Run("unknown_portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHoldingService(db)

		_, err := svc.CreateHolding(context.Background(), HoldingInput{
			PortfolioID:  "missing",
			Ticker:       "AAPL",
			Shares:       dec("1"),
			AvgPrice:     dec("10"),
			PurchaseDate: models.NewDate(2025, time.May, 2),
		})
		testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
	})
}

func TestGetHoldings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewHoldingService(db)
	ctx := context.Background()

	p := testutil.CreateTestPortfolio(t, db, "0", "0", "5")
	other := testutil.CreateTestPortfolio(t, db, "0", "0", "5")
	testutil.CreateTestHolding(t, db, p.ID, "VWCE", "1", "100")
	testutil.CreateTestHolding(t, db, p.ID, "AAPL", "1", "180")
	testutil.CreateTestHolding(t, db, other.ID, "MSFT", "1", "400")

	all, err := svc.GetHoldings(ctx, pagination.PageRequest{}, nil)
	testutil.AssertNoError(t, err)
	if all.TotalItems != 3 {
		t.Errorf("expected 3 holdings, got %d", all.TotalItems)
	}

	mine, err := svc.GetHoldings(ctx, pagination.PageRequest{}, &p.ID)
	testutil.AssertNoError(t, err)
	if mine.TotalItems != 2 || mine.Data[0].Ticker != "AAPL" || mine.Data[1].Ticker != "VWCE" {
		t.Errorf("expected AAPL, VWCE for the portfolio, got %+v", mine.Data)
	}

	missing := "missing"
	_, err = svc.GetHoldings(ctx, pagination.PageRequest{}, &missing)
	testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
}

func TestUpdateHolding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewHoldingService(db)
	ctx := context.Background()
	p := testutil.CreateTestPortfolio(t, db, "0", "0", "5")
	h := testutil.CreateTestHolding(t, db, p.ID, "VWCE", "10", "100")

	price := dec("104.25")
	ticker := "vwrl"
	got, err := svc.UpdateHolding(ctx, h.ID, HoldingUpdate{CurrentPrice: &price, Ticker: &ticker})
	testutil.AssertNoError(t, err)
	testutil.AssertDecimal(t, "current_price", got.CurrentPrice, "104.25")
	testutil.AssertDecimal(t, "avg_price", got.AvgPrice, "100")
	if got.Ticker != "VWRL" {
		t.Errorf("expected ticker VWRL, got %q", got.Ticker)
	}

	zero := dec("0")
	_, err = svc.UpdateHolding(ctx, h.ID, HoldingUpdate{Shares: &zero})
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	_, err = svc.UpdateHolding(ctx, "missing", HoldingUpdate{})
	testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
}

func TestDeleteHolding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewHoldingService(db)
	p := testutil.CreateTestPortfolio(t, db, "0", "0", "5")
	h := testutil.CreateTestHolding(t, db, p.ID, "VWCE", "10", "100")

	testutil.AssertNoError(t, svc.DeleteHolding(context.Background(), h.ID))

	err := svc.DeleteHolding(context.Background(), h.ID)
	testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
}
