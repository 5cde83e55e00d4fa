package services

import (
	"context"
	"testing"
	"time"

	"budgetcast/internal/pagination"
	"budgetcast/internal/projection"
	"budgetcast/internal/testutil"
)

func TestCreatePortfolio(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		p, err := svc.CreatePortfolio(context.Background(), PortfolioInput{
			Name:                "Index fund",
			CurrentValue:        dec("10000"),
			MonthlyContribution: dec("250"),
			MeanReturnPercent:   dec("7.25"),
			Active:              true,
		})
		testutil.AssertNoError(t, err)

		got, err := svc.GetPortfolioByID(context.Background(), p.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "mean_return_percent", got.MeanReturnPercent, "7.25")
	})

	t.Run("negative_contribution", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		_, err := svc.CreatePortfolio(context.Background(), PortfolioInput{
			Name:                "Bad",
			CurrentValue:        dec("100"),
			MonthlyContribution: dec("-1"),
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetPortfolios(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPortfolioService(db)

	testutil.CreateTestPortfolio(t, db, "100", "0", "5")
	closed := testutil.CreateTestPortfolio(t, db, "100", "0", "5")
	inactive := false
	_, err := svc.UpdatePortfolio(context.Background(), closed.ID, PortfolioUpdate{Active: &inactive})
	testutil.AssertNoError(t, err)

	active := true
	result, err := svc.GetPortfolios(context.Background(), pagination.PageRequest{}, &active)
	testutil.AssertNoError(t, err)
	if result.TotalItems != 1 {
		t.Errorf("expected 1 active portfolio, got %d", result.TotalItems)
	}
}

func TestDeletePortfolio(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPortfolioService(db)
	p := testutil.CreateTestPortfolio(t, db, "100", "0", "5")

	testutil.AssertNoError(t, svc.DeletePortfolio(context.Background(), p.ID))

	err := svc.DeletePortfolio(context.Background(), p.ID)
	testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
}

func TestProjectPortfolio(t *testing.T) {
	t.Run("zero_return_accumulates_contributions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &portfolioService{db: db, now: func() time.Time { return day(2026, time.January, 15) }}
		p := testutil.CreateTestPortfolio(t, db, "1000", "100", "0")

		points, err := svc.ProjectPortfolio(context.Background(), p.ID, 3)
		testutil.AssertNoError(t, err)

		if len(points) != 3 {
			t.Fatalf("expected 3 points, got %d", len(points))
		}
		if points[0].MonthKey != "2026-01" || points[2].Month != "March 2026" {
			t.Errorf("unexpected months %s .. %s", points[0].MonthKey, points[2].Month)
		}
		testutil.AssertDecimal(t, "value", points[2].Value, "1300")
		if !points[2].Contributions.Equal(dec("300")) || !points[2].Growth.IsZero() {
			t.Errorf("unexpected split %s / %s", points[2].Contributions, points[2].Growth)
		}
	})

	t.Run("matches_growth_model", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		p := testutil.CreateTestPortfolio(t, db, "5000", "200", "6")

		points, err := svc.ProjectPortfolio(context.Background(), p.ID, 12)
		testutil.AssertNoError(t, err)

		want := projection.ProjectValue(dec("5000"), dec("200"), dec("6"), 12).Round(2)
		if !points[11].Value.Equal(want) {
			t.Errorf("expected %s, got %s", want, points[11].Value)
		}
		if !points[11].Growth.IsPositive() {
			t.Errorf("expected positive growth, got %s", points[11].Growth)
		}
	})

	t.Run("horizon_out_of_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		p := testutil.CreateTestPortfolio(t, db, "100", "0", "5")

		_, err := svc.ProjectPortfolio(context.Background(), p.ID, 0)
		testutil.AssertAppError(t, err, "INVALID_HORIZON")

		_, err = svc.ProjectPortfolio(context.Background(), p.ID, MaxProjectionMonths+1)
		testutil.AssertAppError(t, err, "INVALID_HORIZON")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		_, err := svc.ProjectPortfolio(context.Background(), "missing", 12)
		testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
	})
}

func TestProjectPortfolios(t *testing.T) {
	t.Run("sums_active_portfolios", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &portfolioService{db: db, now: func() time.Time { return day(2026, time.January, 15) }}
		ctx := context.Background()

		testutil.CreateTestPortfolio(t, db, "1000", "100", "0")
		testutil.CreateTestPortfolio(t, db, "500", "50", "0")
		closed := testutil.CreateTestPortfolio(t, db, "9999", "999", "0")
		inactive := false
		_, err := svc.UpdatePortfolio(ctx, closed.ID, PortfolioUpdate{Active: &inactive})
		testutil.AssertNoError(t, err)

		points, err := svc.ProjectPortfolios(ctx, 3)
		testutil.AssertNoError(t, err)

		if len(points) != 3 {
			t.Fatalf("expected 3 points, got %d", len(points))
		}
		if points[0].MonthKey != "2026-01" || points[2].Month != "March 2026" {
			t.Errorf("unexpected months %s .. %s", points[0].MonthKey, points[2].Month)
		}
		for i, want := range []string{"1650", "1800", "1950"} {
			testutil.AssertDecimal(t, "value", points[i].Value, want)
			testutil.AssertDecimal(t, "monthly_contribution", points[i].MonthlyContribution, "150")
		}
	})

	t.Run("no_portfolios", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		points, err := svc.ProjectPortfolios(context.Background(), 2)
		testutil.AssertNoError(t, err)
		if len(points) != 2 || !points[1].Value.IsZero() || !points[1].MonthlyContribution.IsZero() {
			t.Errorf("expected two zero points, got %+v", points)
		}
	})

	t.Run("horizon_out_of_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		_, err := svc.ProjectPortfolios(context.Background(), MaxProjectionMonths+1)
		testutil.AssertAppError(t, err, "INVALID_HORIZON")
	})
}

func TestRecalculatePortfolio(t *testing.T) {
	t.Run("values_holdings_at_current_price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		ctx := context.Background()

		p := testutil.CreateTestPortfolio(t, db, "0", "0", "5")
		vwce := testutil.CreateTestHolding(t, db, p.ID, "VWCE", "10", "100")
		testutil.CreateTestHolding(t, db, p.ID, "AAPL", "2.5", "180")
		if err := db.Model(vwce).Update("current_price", dec("112.5")).Error; err != nil {
			t.Fatalf("failed to move price: %v", err)
		}

		got, err := svc.RecalculatePortfolio(ctx, p.ID)
		testutil.AssertNoError(t, err)

		// 10 x 112.5 + 2.5 x 180 = 1575, bought for 1450
		testutil.AssertDecimal(t, "current_value", got.CurrentValue, "1575")
		testutil.AssertDecimal(t, "total_invested", got.TotalInvested, "1450")
		testutil.AssertDecimal(t, "gain_loss", got.GainLoss, "125")
		testutil.AssertDecimal(t, "gain_loss_percent", got.GainLossPercent, "8.62")
		if got.HoldingCount != 2 {
			t.Errorf("expected 2 holdings, got %d", got.HoldingCount)
		}
		testutil.AssertDecimal(t, "portfolio.current_value", got.Portfolio.CurrentValue, "1575")

		stored, err := svc.GetPortfolioByID(ctx, p.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "stored current_value", stored.CurrentValue, "1575")
	})

	t.Run("ignores_deleted_and_foreign_holdings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		ctx := context.Background()

		p := testutil.CreateTestPortfolio(t, db, "5000", "0", "5")
		other := testutil.CreateTestPortfolio(t, db, "0", "0", "5")
		sold := testutil.CreateTestHolding(t, db, p.ID, "VWCE", "10", "100")
		testutil.CreateTestHolding(t, db, other.ID, "AAPL", "1", "180")
		testutil.AssertNoError(t, NewHoldingService(db).DeleteHolding(ctx, sold.ID))

		got, err := svc.RecalculatePortfolio(ctx, p.ID)
		testutil.AssertNoError(t, err)
		if !got.CurrentValue.IsZero() || !got.GainLossPercent.IsZero() || got.HoldingCount != 0 {
			t.Errorf("expected an empty valuation, got %+v", got)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		_, err := svc.RecalculatePortfolio(context.Background(), "missing")
		testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
	})
}
