package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/logger"
	"budgetcast/internal/models"
)

// SettingDefaults are used for preferences the user has not set.
type SettingDefaults struct {
	Currency         string
	ProjectionMonths int
}

// settingService stores user preferences as key/value rows.
type settingService struct {
	db       *gorm.DB
	defaults SettingDefaults
}

// NewSettingService creates a new SettingServicer.
func NewSettingService(db *gorm.DB, defaults SettingDefaults) SettingServicer {
	if defaults.Currency == "" {
		defaults.Currency = money.USD
	}
	if defaults.ProjectionMonths < 1 || defaults.ProjectionMonths > MaxProjectionMonths {
		defaults.ProjectionMonths = 12
	}
	return &settingService{db: db, defaults: defaults}
}

// GetSettings returns the stored preferences with defaults filled in. A stored
// value that no longer parses falls back to the default.
func (s *settingService) GetSettings(ctx context.Context) (*Settings, error) {
	var rows []models.Setting
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	settings := &Settings{
		Currency:         s.defaults.Currency,
		ProjectionMonths: s.defaults.ProjectionMonths,
		DateFormat:       models.DefaultDateFormat,
	}
	for _, row := range rows {
		switch row.Key {
		case models.SettingCurrency:
			if money.GetCurrency(row.Value) != nil {
				settings.Currency = row.Value
			}
		case models.SettingProjectionMonths:
			n, err := strconv.Atoi(row.Value)
			if err != nil || n < 1 || n > MaxProjectionMonths {
				logger.Get().Warnw("ignoring stored setting", "key", row.Key, "value", row.Value)
				continue
			}
			settings.ProjectionMonths = n
		case models.SettingDateFormat:
			if models.ValidDateFormat(row.Value) {
				settings.DateFormat = row.Value
			}
		}
	}
	return settings, nil
}

// UpdateSettings validates and stores the non-nil preferences.
func (s *settingService) UpdateSettings(ctx context.Context, in SettingsUpdate) (*Settings, error) {
	values := make(map[string]string)
	if in.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*in.Currency))
		if money.GetCurrency(code) == nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown currency code")
		}
		values[models.SettingCurrency] = code
	}
	if in.ProjectionMonths != nil {
		if *in.ProjectionMonths < 1 || *in.ProjectionMonths > MaxProjectionMonths {
			return nil, apperrors.ErrInvalidHorizon
		}
		values[models.SettingProjectionMonths] = strconv.Itoa(*in.ProjectionMonths)
	}
	if in.DateFormat != nil {
		if !models.ValidDateFormat(*in.DateFormat) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown date format")
		}
		values[models.SettingDateFormat] = *in.DateFormat
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := upsertSetting(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetSettings(ctx)
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	var existing models.Setting
	result := tx.Where(&models.Setting{Key: key}).Limit(1).Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return tx.Model(&existing).Update("value", value).Error
	}
	return tx.Create(&models.Setting{Key: key, Value: value}).Error
}
