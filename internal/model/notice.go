package model

// NoticeCategory is the closed set of board categories.
type NoticeCategory string

const (
	CategoryEvents        NoticeCategory = "events"
	CategoryAnnouncements NoticeCategory = "announcements"
	CategoryMaintenance   NoticeCategory = "maintenance"
)

// AllCategories lists every valid NoticeCategory.
var AllCategories = []NoticeCategory{
	CategoryEvents,
	CategoryAnnouncements,
	CategoryMaintenance,
}

// ValidCategory reports whether s is one of the board categories.
func ValidCategory(s string) bool {
	for _, c := range AllCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// CreatedAtLayout is the calendar-date format of Notice.CreatedAt.
// The field is assigned once at creation and never touched by updates.
const CreatedAtLayout = "2006-01-02"

type Notice struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	Category    NoticeCategory `json:"category"`
	Image       string         `json:"image,omitempty"`
	IsPinned    bool           `json:"isPinned"`
	CreatedAt   string         `json:"createdAt"`
}
