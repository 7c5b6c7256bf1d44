package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the budget_types and quote_requests tables.
// Called once at startup, before any repository is handed out.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&budgetTypeRecord{},
		&quoteRequestRecord{},
	)
}
