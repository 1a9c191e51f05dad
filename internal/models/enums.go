package models

type Status string

const (
	StatusNone           Status = "None"
	StatusOpen           Status = "Open"
	StatusInProgress     Status = "InProgress"
	StatusReadyForReview Status = "ReadyForReview"
	StatusDone           Status = "Done"
	StatusClosed         Status = "Closed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNone, StatusOpen, StatusInProgress, StatusReadyForReview, StatusDone, StatusClosed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityNone     Priority = "None"
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type WorkItemType string

const (
	WorkItemTypeNone    WorkItemType = "None"
	WorkItemTypeTask    WorkItemType = "Task"
	WorkItemTypeBug     WorkItemType = "Bug"
	WorkItemTypeFeature WorkItemType = "Feature"
)

// Valid reports whether t is one of the known work item types.
func (t WorkItemType) Valid() bool {
	switch t {
	case WorkItemTypeNone, WorkItemTypeTask, WorkItemTypeBug, WorkItemTypeFeature:
		return true
	}
	return false
}

// ActivityKind distinguishes iterations from milestones. Both share the
// ProjectActivity shape.
type ActivityKind string

const (
	ActivityIteration ActivityKind = "iteration"
	ActivityMilestone ActivityKind = "milestone"
)
