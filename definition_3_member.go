package timeline

import "fmt"

type Member struct {
	Name  string
	Email string

	ID                 MemberID
	WeeklyAvailability float64 // hours per week
	CurrentWorkload    float64 // hours assigned

	// ReportedPercentage is the percentage computed by the API, if any.
	ReportedPercentage float64
}

// WorkloadPercentage prefers a non-zero reported percentage and otherwise
// computes it from workload and availability, 0 without availability.
func (m *Member) WorkloadPercentage() float64 {
	if m.ReportedPercentage != 0 {
		return m.ReportedPercentage
	}

	if m.WeeklyAvailability <= 0 {
		return 0
	}

	return percentOf(m.CurrentWorkload, m.WeeklyAvailability)
}

func (m *Member) AvailableHours() float64 {
	return maxOf(0, m.WeeklyAvailability-m.CurrentWorkload)
}

func (m *Member) IsOverloaded() bool {
	return m.CurrentWorkload > m.WeeklyAvailability
}

func (m *Member) Ref() MemberRef {
	return MemberRef{
		ID:   m.ID,
		Name: m.Name,
	}
}

func (m *Member) String() string {
	return fmt.Sprintf(
		"Member{ID: %d, Name: %q, Workload: %.1fh / %.0fh (%.2f%%)}",

		m.ID,
		m.Name,
		m.CurrentWorkload,
		m.WeeklyAvailability,
		m.WorkloadPercentage(),
	)
}
