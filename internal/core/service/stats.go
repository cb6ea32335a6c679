package service

import (
	"sort"
	"time"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
)

// ComputeStats derives the dashboard summary from an already-RBAC-scoped
// record set. Pure and idempotent: callers recompute it on every change to
// the submission set, the viewer's scope, or the registry size.
func ComputeStats(scoped []*domain.Submission, registrySize int, now time.Time) ports.DerivedStats {
	today := domain.DateLabel(now)

	stats := ports.DerivedStats{CampusTotal: registrySize}
	for _, s := range scoped {
		switch s.Status {
		case domain.StatusApproved:
			stats.TotalApproved++
			if s.Date == today {
				stats.TodayApproved++
			}
			if domain.WithinLastDays(s.Date, now, recencyWindowDays) {
				stats.WeeklyApproved++
				stats.WeeklyApprovedHours += domain.ParseDurationHours(s.LeaveTime)
			}
			if s.LeaveTime == "1 Day" {
				stats.FullDayApproved++
			}
		case domain.StatusRejected:
			stats.TotalRejected++
		case domain.StatusPending:
			stats.Pending++
		}
	}
	return stats
}

// WeeklyHoursByUser totals the parsed leave hours of approved submissions
// within the recency window, per submitter, sorted by hours descending.
func WeeklyHoursByUser(scoped []*domain.Submission, now time.Time) []ports.UserHours {
	totals := make(map[string]*ports.UserHours)
	var order []string
	for _, s := range scoped {
		if s.Status != domain.StatusApproved || !domain.WithinLastDays(s.Date, now, recencyWindowDays) {
			continue
		}
		row, ok := totals[s.Email]
		if !ok {
			row = &ports.UserHours{Email: s.Email, Name: s.StudentName}
			totals[s.Email] = row
			order = append(order, s.Email)
		}
		row.Hours += domain.ParseDurationHours(s.LeaveTime)
	}

	rows := make([]ports.UserHours, 0, len(order))
	for _, email := range order {
		rows = append(rows, *totals[email])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Hours > rows[j].Hours })
	return rows
}
