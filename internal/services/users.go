package services

import (
	"fmt"

	"github.com/yukikurage/project-dashboard/internal/dto"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/repository"
	"github.com/yukikurage/project-dashboard/internal/schema"
)

// userModels converts rows with their organization ids read in one batch.
func userModels(users repository.UserRepository, rows []schema.User) ([]models.User, error) {
	userIDs := make([]string, len(rows))
	for i, row := range rows {
		userIDs[i] = row.ID
	}
	refs, err := users.OrganizationIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations of users: %w", err)
	}

	out := make([]models.User, len(rows))
	for i, row := range rows {
		ref := refs[row.ID]
		out[i] = dto.ToUser(row, ref.Owned, ref.MemberOf)
	}
	return out, nil
}

// organizationModels resolves the embedded owners of orgs.
func organizationModels(users repository.UserRepository, orgs []schema.Organization) ([]models.Organization, error) {
	owners := make([]schema.User, len(orgs))
	for i, org := range orgs {
		owners[i] = org.Owner
		owners[i].ID = org.OwnerID
	}
	resolved, err := userModels(users, owners)
	if err != nil {
		return nil, err
	}

	out := make([]models.Organization, len(orgs))
	for i, org := range orgs {
		out[i] = dto.ToOrganization(org, resolved[i])
	}
	return out, nil
}

// workspaceModels resolves the embedded contacts of workspaces.
func workspaceModels(users repository.UserRepository, workspaces []schema.Workspace) ([]models.Workspace, error) {
	var contacts []schema.User
	for _, w := range workspaces {
		for _, c := range w.Contacts {
			row := c.User
			row.ID = c.UserID
			contacts = append(contacts, row)
		}
	}
	resolved, err := userModels(users, contacts)
	if err != nil {
		return nil, err
	}

	out := make([]models.Workspace, len(workspaces))
	for i, w := range workspaces {
		out[i] = dto.ToWorkspace(w, resolved[:len(w.Contacts):len(w.Contacts)])
		resolved = resolved[len(w.Contacts):]
	}
	return out, nil
}
