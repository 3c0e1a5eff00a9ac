// Package persistence implements repository interfaces for database operations.
package persistence

import "github.com/sft-api/backend/internal/integration/persistence/model"

// Models returns every model that is migrated on startup.
func Models() []interface{} {
	return []interface{}{
		&model.UserProfileModel{},
		&model.IncomeModel{},
		&model.ExpenditureModel{},
		&model.DisposableBudgetModel{},
		&model.DisposableSpendingModel{},
		&model.CurrencyPreferenceModel{},
	}
}
