package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Project struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	TimeRange   *TimeRange `json:"timeRange"`
	ContainedIn string     `json:"containedIn"`
}

func (p Project) EntityID() string { return p.ID }

// TimeRange is the start/end pair of a project. On the wire it is a two
// element array of timestamps; null or an empty array means no range.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

func (r TimeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([]time.Time{r.Start, r.End})
}

func (r *TimeRange) UnmarshalJSON(data []byte) error {
	var pair []*time.Time
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("failed to decode time range: %w", err)
	}
	switch len(pair) {
	case 0:
		*r = TimeRange{}
	case 2:
		*r = TimeRange{}
		if pair[0] != nil {
			r.Start = *pair[0]
		}
		if pair[1] != nil {
			r.End = *pair[1]
		}
	default:
		return fmt.Errorf("time range must have 2 elements, got %d", len(pair))
	}
	return nil
}

// ProjectActivity is either an iteration or a milestone of a project.
type ProjectActivity struct {
	ID          string   `json:"id" validate:"required"`
	ContainedIn string   `json:"containedIn"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

func (a ProjectActivity) EntityID() string { return a.ID }
