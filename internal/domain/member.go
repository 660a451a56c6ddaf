package domain

import "strings"

type Member struct {
	ID           string
	Name         string
	Position     string
	Avatar       string
	Availability string
	Projects     []string
	Tasks        []Task
}

// Initials returns the uppercase first letter of each word in the name,
// e.g. "Sarah Johnson" -> "SJ".
func (m *Member) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(m.Name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// AvailableToday reports whether the availability text says "today".
func (m *Member) AvailableToday() bool {
	return strings.Contains(strings.ToLower(m.Availability), "today")
}

// DisplayID returns the best short identifier for display.
func (m *Member) DisplayID() string {
	if len(m.ID) > 8 {
		return m.ID[:8]
	}
	return m.ID
}

// Roster is the full team snapshot handed to the dashboard. It is read-only
// once loaded.
type Roster struct {
	Members []*Member
	Groups  []*ActivityGroup
}

// TaskCount returns the number of tasks across all members.
func (r *Roster) TaskCount() int {
	n := 0
	for _, m := range r.Members {
		n += len(m.Tasks)
	}
	return n
}
