package models

// Workspace groups projects inside an organization. Contacts are embedded
// users, projects are referenced by id.
type Workspace struct {
	ID       string   `json:"id" validate:"required"`
	Title    string   `json:"title"`
	OwnedBy  string   `json:"ownedBy"`
	Contacts []User   `json:"contacts"`
	Projects []string `json:"projects"`
}

func (w Workspace) EntityID() string { return w.ID }

// HasContact reports whether userID is among the workspace contacts.
func (w Workspace) HasContact(userID string) bool {
	for _, c := range w.Contacts {
		if c.ID == userID {
			return true
		}
	}
	return false
}
