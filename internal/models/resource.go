package models

// Resource is a titled URL attached to an organization, workspace or project.
type Resource struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

func (r Resource) EntityID() string { return r.ID }

// ParentKind names the entity family a resource hangs off.
type ParentKind string

const (
	ParentOrganization ParentKind = "organization"
	ParentWorkspace    ParentKind = "workspace"
	ParentProject      ParentKind = "project"
)
