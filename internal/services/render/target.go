package render

// Element ids the renderer writes to.
const (
	ActivityListID = "activity-list"
	LastUpdatedID  = "last-updated"
)

// CountID returns the element id holding a stat card's value.
func CountID(key string) string {
	return key + "-count"
}

// ChangeID returns the element id holding a stat card's change.
func ChangeID(key string) string {
	return key + "-change"
}

// ActivityItem is one rendered feed entry.
type ActivityItem struct {
	Icon  string
	Title string
	Time  string
}

// Target is the set of named sinks a dashboard renders into. Writes to an
// id the target does not have are ignored and report false.
type Target interface {
	Has(id string) bool
	SetText(id, text string) bool
	SetClass(id, class string) bool
	// ReplaceActivities drops every child of id and appends one node per
	// item, in order.
	ReplaceActivities(id string, items []ActivityItem) bool
}
