package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds the composite lookup indexes AutoMigrate does not derive
// from the struct tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Nested collections are always listed per parent
		{"activities", "idx_activities_project_kind", "project_id, kind"},
		{"resource_links", "idx_resource_links_parent", "parent_kind, parent_id"},

		// Work items filtered by project and looked up by sub item
		{"work_items", "idx_work_items_project_status", "project_id, status"},
		{"work_item_sub_items", "idx_work_item_sub_items_sub_item_id", "sub_item_id"},
		{"activity_items", "idx_activity_items_work_item_id", "work_item_id"},

		// Reverse lookups for a user's organizations and workspaces
		{"workspace_contacts", "idx_workspace_contacts_user_id", "user_id"},
		{"workspace_projects", "idx_workspace_projects_project_id", "project_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
