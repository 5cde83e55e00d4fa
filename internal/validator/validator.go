// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"

	"github.com/Rhymond/go-money"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
// Decimal fields validate as float64 and Date fields as time.Time, so the
// built-in gt/gte/required tags work on them.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		v.RegisterCustomTypeFunc(dateValue, models.Date{})
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("frequency", validateFrequency)
		_ = v.RegisterValidation("entry_kind", validateEntryKind)
		_ = v.RegisterValidation("priority", validatePriority)
		_ = v.RegisterValidation("date_format", validateDateFormat)
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(models.Date); ok {
		return d.Time
	}
	return nil
}

func validateISO4217(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	return len(code) == 3 && money.GetCurrency(code) != nil
}

func validateFrequency(fl validator.FieldLevel) bool {
	f := models.Frequency(fl.Field().String())
	for _, known := range models.Frequencies {
		if f == known {
			return true
		}
	}
	return false
}

func validateEntryKind(fl validator.FieldLevel) bool {
	switch models.EntryKind(fl.Field().String()) {
	case models.EntryKindIncome, models.EntryKindExpense:
		return true
	}
	return false
}

func validatePriority(fl validator.FieldLevel) bool {
	switch models.Priority(fl.Field().String()) {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return true
	}
	return false
}

func validateDateFormat(fl validator.FieldLevel) bool {
	return models.ValidDateFormat(fl.Field().String())
}
