package models

type Organization struct {
	ID      string   `json:"id" validate:"required"`
	Name    string   `json:"name"`
	Owner   User     `json:"owner"`
	Members []string `json:"members"`
}

func (o Organization) EntityID() string { return o.ID }
