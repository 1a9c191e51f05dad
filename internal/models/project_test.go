package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRange_JSON(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	body, err := json.Marshal(Project{ID: "p1", TimeRange: &TimeRange{Start: start, End: end}})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"timeRange":["2024-01-01T00:00:00Z","2024-03-31T00:00:00Z"]`)

	var p Project
	require.NoError(t, json.Unmarshal(body, &p))
	require.NotNil(t, p.TimeRange)
	assert.True(t, start.Equal(p.TimeRange.Start))
	assert.True(t, end.Equal(p.TimeRange.End))
}

func TestTimeRange_NullAndEmpty(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","timeRange":null}`), &p))
	assert.Nil(t, p.TimeRange)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","timeRange":[]}`), &p))
	require.NotNil(t, p.TimeRange)
	assert.True(t, p.TimeRange.Start.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"id":"p1","timeRange":["2024-01-01T00:00:00Z"]}`), &p))
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, StatusReadyForReview.Valid())
	assert.False(t, Status("Paused").Valid())
	assert.True(t, PriorityCritical.Valid())
	assert.False(t, Priority("Urgent").Valid())
	assert.True(t, WorkItemTypeFeature.Valid())
	assert.False(t, WorkItemType("Epic").Valid())
}

func TestWorkspace_HasContact(t *testing.T) {
	w := Workspace{Contacts: []User{{ID: "u1"}}}
	assert.True(t, w.HasContact("u1"))
	assert.False(t, w.HasContact("u2"))
	assert.True(t, WorkItem{}.Unassigned())
}
