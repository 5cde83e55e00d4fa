package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
	"budgetcast/internal/pagination"
	"budgetcast/internal/projection"
)

// RecurringItemInput holds the fields of a recurring item on create.
type RecurringItemInput struct {
	Name      string
	Kind      models.EntryKind
	Amount    decimal.Decimal
	Frequency models.Frequency
	StartDate models.Date
	EndDate   *models.Date
	Category  string
	Payday    int
	Active    bool
	Upcoming  bool
}

// RecurringItemUpdate holds the optional fields of a recurring item update.
// A nil field is left unchanged; ClearEndDate makes the item ongoing again.
type RecurringItemUpdate struct {
	Name         *string
	Amount       *decimal.Decimal
	Frequency    *models.Frequency
	StartDate    *models.Date
	EndDate      *models.Date
	ClearEndDate bool
	Category     *string
	Payday       *int
	Active       *bool
	Upcoming     *bool
}

// RecurringItemFilter holds optional filter parameters for listing recurring items.
type RecurringItemFilter struct {
	Kind   *models.EntryKind
	Active *bool
}

// RecurringItemServicer defines the contract for recurring income and expense management.
type RecurringItemServicer interface {
	CreateRecurringItem(ctx context.Context, in RecurringItemInput) (*models.RecurringItem, error)
	GetRecurringItems(ctx context.Context, page pagination.PageRequest, filter RecurringItemFilter) (*pagination.PageResponse[models.RecurringItem], error)
	GetRecurringItemByID(ctx context.Context, id string) (*models.RecurringItem, error)
	UpdateRecurringItem(ctx context.Context, id string, in RecurringItemUpdate) (*models.RecurringItem, error)
	DeleteRecurringItem(ctx context.Context, id string) error
}

// OneTimeItemInput holds the fields of a one-time item on create.
type OneTimeItemInput struct {
	Name     string
	Kind     models.EntryKind
	Amount   decimal.Decimal
	Date     models.Date
	Category string
	Upcoming bool
}

// OneTimeItemUpdate holds the optional fields of a one-time item update.
type OneTimeItemUpdate struct {
	Name     *string
	Amount   *decimal.Decimal
	Date     *models.Date
	Category *string
	Upcoming *bool
}

// OneTimeItemFilter holds optional filter parameters for listing one-time items.
type OneTimeItemFilter struct {
	Kind     *models.EntryKind
	FromDate *models.Date
	ToDate   *models.Date
}

// OneTimeItemServicer defines the contract for one-time income and expense management.
type OneTimeItemServicer interface {
	CreateOneTimeItem(ctx context.Context, in OneTimeItemInput) (*models.OneTimeItem, error)
	GetOneTimeItems(ctx context.Context, page pagination.PageRequest, filter OneTimeItemFilter) (*pagination.PageResponse[models.OneTimeItem], error)
	GetOneTimeItemByID(ctx context.Context, id string) (*models.OneTimeItem, error)
	UpdateOneTimeItem(ctx context.Context, id string, in OneTimeItemUpdate) (*models.OneTimeItem, error)
	DeleteOneTimeItem(ctx context.Context, id string) error
}

// PortfolioInput holds the fields of a portfolio on create.
type PortfolioInput struct {
	Name                string
	CurrentValue        decimal.Decimal
	MonthlyContribution decimal.Decimal
	MeanReturnPercent   decimal.Decimal
	Active              bool
}

// PortfolioUpdate holds the optional fields of a portfolio update.
type PortfolioUpdate struct {
	Name                *string
	CurrentValue        *decimal.Decimal
	MonthlyContribution *decimal.Decimal
	MeanReturnPercent   *decimal.Decimal
	Active              *bool
}

// PortfolioProjectionPoint is the projected value of one portfolio at the end of a month.
type PortfolioProjectionPoint struct {
	Month         string          `json:"month"`
	MonthKey      string          `json:"month_key"`
	Value         decimal.Decimal `json:"value"`
	Contributions decimal.Decimal `json:"contributions"`
	Growth        decimal.Decimal `json:"growth"`
}

// InvestmentProjectionPoint is the combined value of every active portfolio
// at the end of a month.
type InvestmentProjectionPoint struct {
	Month               string          `json:"month"`
	MonthKey            string          `json:"month_key"`
	Value               decimal.Decimal `json:"value"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
}

// PortfolioValuation is a portfolio's value rebuilt from its holdings.
type PortfolioValuation struct {
	Portfolio       *models.InvestmentPortfolio `json:"portfolio"`
	CurrentValue    decimal.Decimal             `json:"current_value"`
	TotalInvested   decimal.Decimal             `json:"total_invested"`
	GainLoss        decimal.Decimal             `json:"gain_loss"`
	GainLossPercent decimal.Decimal             `json:"gain_loss_percent"`
	HoldingCount    int                         `json:"holding_count"`
}

// PortfolioServicer defines the contract for investment portfolio management.
type PortfolioServicer interface {
	CreatePortfolio(ctx context.Context, in PortfolioInput) (*models.InvestmentPortfolio, error)
	GetPortfolios(ctx context.Context, page pagination.PageRequest, active *bool) (*pagination.PageResponse[models.InvestmentPortfolio], error)
	GetPortfolioByID(ctx context.Context, id string) (*models.InvestmentPortfolio, error)
	UpdatePortfolio(ctx context.Context, id string, in PortfolioUpdate) (*models.InvestmentPortfolio, error)
	DeletePortfolio(ctx context.Context, id string) error
	ProjectPortfolio(ctx context.Context, id string, months int) ([]PortfolioProjectionPoint, error)
	ProjectPortfolios(ctx context.Context, months int) ([]InvestmentProjectionPoint, error)
	RecalculatePortfolio(ctx context.Context, id string) (*PortfolioValuation, error)
}

// HoldingInput holds the fields of a holding on create. A nil CurrentPrice
// starts the holding at its average price.
type HoldingInput struct {
	PortfolioID  string
	Ticker       string
	Name         string
	Shares       decimal.Decimal
	AvgPrice     decimal.Decimal
	CurrentPrice *decimal.Decimal
	PurchaseDate models.Date
}

// HoldingUpdate holds the optional fields of a holding update.
type HoldingUpdate struct {
	Ticker       *string
	Name         *string
	Shares       *decimal.Decimal
	AvgPrice     *decimal.Decimal
	CurrentPrice *decimal.Decimal
	PurchaseDate *models.Date
}

// HoldingServicer defines the contract for the holdings kept inside portfolios.
type HoldingServicer interface {
	CreateHolding(ctx context.Context, in HoldingInput) (*models.Holding, error)
	GetHoldings(ctx context.Context, page pagination.PageRequest, portfolioID *string) (*pagination.PageResponse[models.Holding], error)
	GetHoldingByID(ctx context.Context, id string) (*models.Holding, error)
	UpdateHolding(ctx context.Context, id string, in HoldingUpdate) (*models.Holding, error)
	DeleteHolding(ctx context.Context, id string) error
}

// WishlistItemInput holds the fields of a wishlist item on create.
type WishlistItemInput struct {
	Name       string
	Cost       decimal.Decimal
	Category   string
	Priority   models.Priority
	TargetDate *models.Date
	URL        string
	Notes      string
}

// WishlistItemUpdate holds the optional fields of a wishlist item update.
// Marking an item purchased stamps today as its purchase date; unmarking
// it clears the date.
type WishlistItemUpdate struct {
	Name            *string
	Cost            *decimal.Decimal
	Category        *string
	Priority        *models.Priority
	TargetDate      *models.Date
	ClearTargetDate bool
	URL             *string
	Purchased       *bool
	Notes           *string
}

// WishlistServicer defines the contract for wishlist management.
type WishlistServicer interface {
	CreateWishlistItem(ctx context.Context, in WishlistItemInput) (*models.WishlistItem, error)
	GetWishlistItems(ctx context.Context, purchased *bool) ([]models.WishlistItem, error)
	GetWishlistItemByID(ctx context.Context, id string) (*models.WishlistItem, error)
	UpdateWishlistItem(ctx context.Context, id string, in WishlistItemUpdate) (*models.WishlistItem, error)
	TogglePurchased(ctx context.Context, id string) (*models.WishlistItem, error)
	DeleteWishlistItem(ctx context.Context, id string) error
}

// WishlistCategoryServicer defines the contract for wishlist categories.
type WishlistCategoryServicer interface {
	GetWishlistCategories(ctx context.Context) ([]models.WishlistCategory, error)
	CreateWishlistCategory(ctx context.Context, name, icon string) (*models.WishlistCategory, error)
	DeleteWishlistCategory(ctx context.Context, id string) error
}

// Settings are the user preferences with defaults applied.
type Settings struct {
	Currency         string `json:"currency"`
	ProjectionMonths int    `json:"projection_months"`
	DateFormat       string `json:"date_format"`
}

// SettingsUpdate holds the preferences to change. Nil fields are kept.
type SettingsUpdate struct {
	Currency         *string
	ProjectionMonths *int
	DateFormat       *string
}

// SettingServicer defines the contract for reading and changing user preferences.
type SettingServicer interface {
	GetSettings(ctx context.Context) (*Settings, error)
	UpdateSettings(ctx context.Context, in SettingsUpdate) (*Settings, error)
}

// PaydayServicer defines the contract for per-month payday adjustments.
type PaydayServicer interface {
	GetPaydayAdjustments(ctx context.Context, year, month *int) ([]models.PaydayAdjustment, error)
	SetPaydayAdjustment(ctx context.Context, recurringItemID string, year, month, day int) (*models.PaydayAdjustment, error)
	DeletePaydayAdjustment(ctx context.Context, id string) error
}

// ProjectionServicer defines the contract for cash flow projections.
type ProjectionServicer interface {
	Forward(ctx context.Context, months *int) ([]projection.MonthProjection, error)
	History(ctx context.Context) ([]projection.MonthProjection, error)
	MonthDetails(ctx context.Context, month time.Time) (*projection.MonthDetail, error)
	AnalyzeWishlist(ctx context.Context) (*projection.Analysis, error)
}

// SnapshotServicer defines the contract for recording and reading balance snapshots.
type SnapshotServicer interface {
	RecordSnapshot(ctx context.Context, recordedAt time.Time) (*models.BalanceSnapshot, error)
	GetSnapshots(ctx context.Context, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.BalanceSnapshot], error)
}
