package ports

import "github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"

// StatusFilter selects the status partition of the submissions view.
// "all" is a UI convenience meaning the finalized/approved timeline.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterPending  StatusFilter = StatusFilter(domain.StatusPending)
	FilterRejected StatusFilter = StatusFilter(domain.StatusRejected)
)

// SubFilter further restricts the approved timeline.
type SubFilter string

const (
	SubFilterTotal       SubFilter = "total"
	SubFilterToday       SubFilter = "today"
	SubFilterWeekly      SubFilter = "weekly"
	SubFilterFullDay     SubFilter = "fullDay"
	SubFilterWeeklyHours SubFilter = "weeklyHours" // pass-through; aggregation happens downstream
)

// DerivedStats is the recomputed value object shown on the dashboard. It is
// never persisted; every change to the submission set, the viewer scope, or
// the registry size yields a fresh value.
type DerivedStats struct {
	TotalApproved       int `json:"total_approved"`
	TotalRejected       int `json:"total_rejected"`
	Pending             int `json:"pending"`
	TodayApproved       int `json:"today_approved"`
	WeeklyApproved      int `json:"weekly_approved"`
	WeeklyApprovedHours int `json:"weekly_approved_hours"`
	FullDayApproved     int `json:"full_day_approved"`
	CampusTotal         int `json:"campus_total"`
}

// UserHours is one row of the weekly per-user leave-hours view.
type UserHours struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Hours int    `json:"hours"`
}

// DateGroup is one day of the grouped approved timeline.
type DateGroup struct {
	Date        string               `json:"date"`
	Submissions []*domain.Submission `json:"submissions"`
}
