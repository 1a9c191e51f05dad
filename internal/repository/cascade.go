package repository

import (
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/gorm"
)

// The helpers below delete an entity together with everything contained in
// it: organization > workspaces > projects > activities and work items.
// They run inside the caller's transaction.

func deleteWorkspaces(tx *gorm.DB, workspaceIDs []string) error {
	if len(workspaceIDs) == 0 {
		return nil
	}

	var projectIDs []string
	if err := tx.Model(&schema.Project{}).
		Where("workspace_id IN ?", workspaceIDs).
		Pluck("id", &projectIDs).Error; err != nil {
		return err
	}
	if err := deleteProjects(tx, projectIDs); err != nil {
		return err
	}

	if err := tx.Where("workspace_id IN ?", workspaceIDs).Delete(&schema.WorkspaceContact{}).Error; err != nil {
		return err
	}
	if err := tx.Where("workspace_id IN ?", workspaceIDs).Delete(&schema.WorkspaceProject{}).Error; err != nil {
		return err
	}
	for _, id := range workspaceIDs {
		if err := dropLinks(tx, models.ParentWorkspace, id); err != nil {
			return err
		}
	}

	return tx.Where("id IN ?", workspaceIDs).Delete(&schema.Workspace{}).Error
}

func deleteProjects(tx *gorm.DB, projectIDs []string) error {
	if len(projectIDs) == 0 {
		return nil
	}

	var itemIDs []string
	if err := tx.Model(&schema.WorkItem{}).
		Where("project_id IN ?", projectIDs).
		Pluck("id", &itemIDs).Error; err != nil {
		return err
	}
	if err := deleteWorkItems(tx, itemIDs); err != nil {
		return err
	}

	activities := tx.Model(&schema.Activity{}).Select("id").Where("project_id IN ?", projectIDs)
	if err := tx.Where("activity_id IN (?)", activities).Delete(&schema.ActivityItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("project_id IN ?", projectIDs).Delete(&schema.Activity{}).Error; err != nil {
		return err
	}

	if err := tx.Where("project_id IN ?", projectIDs).Delete(&schema.WorkspaceProject{}).Error; err != nil {
		return err
	}
	for _, id := range projectIDs {
		if err := dropLinks(tx, models.ParentProject, id); err != nil {
			return err
		}
	}

	return tx.Where("id IN ?", projectIDs).Delete(&schema.Project{}).Error
}

func deleteWorkItems(tx *gorm.DB, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}

	if err := tx.Where("work_item_id IN ? OR sub_item_id IN ?", itemIDs, itemIDs).
		Delete(&schema.WorkItemSubItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("work_item_id IN ?", itemIDs).Delete(&schema.ActivityItem{}).Error; err != nil {
		return err
	}

	return tx.Where("id IN ?", itemIDs).Delete(&schema.WorkItem{}).Error
}
