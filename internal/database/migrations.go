package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds filtering indexes used by the list and dashboard queries.
// Only meaningful on Postgres; SQLite deployments rely on the automigrated
// unique indexes alone.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"work_orders", "idx_work_orders_workshop_id", "workshop_id"},
		{"work_orders", "idx_work_orders_status", "status"},
		{"work_orders", "idx_work_orders_data", "data"},
		{"work_orders", "idx_work_orders_mechanic", "mechanic_name"},
		{"mechanics", "idx_mechanics_workshop_id", "workshop_id"},
		{"line_items", "idx_line_items_work_order_id", "work_order_id"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}
		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
