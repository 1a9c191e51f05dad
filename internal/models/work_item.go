package models

type WorkItem struct {
	ID          string       `json:"id" validate:"required"`
	ContainedIn string       `json:"containedIn"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      Status       `json:"status"`
	Priority    Priority     `json:"priority"`
	Type        WorkItemType `json:"type"`
	// AssignedTo is a user id; empty means unassigned.
	AssignedTo string   `json:"assignedTo"`
	SubItems   []string `json:"subItems,omitempty"`
}

func (w WorkItem) EntityID() string { return w.ID }

// Unassigned reports whether nobody is assigned to the work item.
func (w WorkItem) Unassigned() bool { return w.AssignedTo == "" }
