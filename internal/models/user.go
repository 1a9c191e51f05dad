package models

// User is the wire shape of a user. The organization id lists keep their
// capitalised keys because the backend serialises them that way.
type User struct {
	ID                    string   `json:"id" validate:"required"`
	Firstname             string   `json:"firstname"`
	Lastname              string   `json:"lastname"`
	Email                 string   `json:"email"`
	OwnedOrganizations    []string `json:"OwnedOrganizations"`
	MemberOfOrganizations []string `json:"MemberOfOrganizations"`
}

func (u User) EntityID() string { return u.ID }
