package notification

// Category is the closed set of notification kinds. The category decides
// which preference flag gates delivery and which icon/route the client uses.
type Category string

const (
	CategoryAnnouncement Category = "announcement"
	CategoryTask         Category = "task"
	CategorySubmission   Category = "submission"
	CategoryExcuseLetter Category = "excuse_letter"
	CategoryGrade        Category = "grade"
	CategoryEnrollment   Category = "enrollment"
	CategorySystem       Category = "system"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAnnouncement, CategoryTask, CategorySubmission,
		CategoryExcuseLetter, CategoryGrade, CategoryEnrollment, CategorySystem:
		return true
	}
	return false
}

// Channel is a delivery channel gated by user preferences.
type Channel string

const (
	ChannelInApp Channel = "in_app"
	ChannelEmail Channel = "email"
)
