package service

import (
	"testing"
	"time"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)
	today := domain.DateLabel(now)
	twoDaysAgo := domain.DateLabel(now.AddDate(0, 0, -2))

	fullDay := leave("1", "a@example.com", domain.StatusApproved, today)
	fullDay.LeaveTime = "1 Day" // 9 hours
	firstHalf := leave("2", "b@example.com", domain.StatusApproved, twoDaysAgo)
	firstHalf.LeaveTime = "First Half" // 4 hours
	scoped := []*domain.Submission{
		fullDay,
		firstHalf,
		leave("3", "c@example.com", domain.StatusPending, today),
		leave("4", "d@example.com", domain.StatusRejected, today),
	}

	stats := ComputeStats(scoped, 37, now)

	if stats.TotalApproved != 2 {
		t.Errorf("TotalApproved: want 2, got %d", stats.TotalApproved)
	}
	if stats.Pending != 1 {
		t.Errorf("Pending: want 1, got %d", stats.Pending)
	}
	if stats.TotalRejected != 1 {
		t.Errorf("TotalRejected: want 1, got %d", stats.TotalRejected)
	}
	if stats.TodayApproved != 1 {
		t.Errorf("TodayApproved: want 1, got %d", stats.TodayApproved)
	}
	if stats.WeeklyApproved != 2 {
		t.Errorf("WeeklyApproved: want 2, got %d", stats.WeeklyApproved)
	}
	if stats.WeeklyApprovedHours != 13 {
		t.Errorf("WeeklyApprovedHours: want 13 (9+4), got %d", stats.WeeklyApprovedHours)
	}
	if stats.FullDayApproved != 1 {
		t.Errorf("FullDayApproved: want 1, got %d", stats.FullDayApproved)
	}
	if stats.CampusTotal != 37 {
		t.Errorf("CampusTotal: want 37, got %d", stats.CampusTotal)
	}
}

func TestComputeStats_OldApprovedExcludedFromWeekly(t *testing.T) {
	now := time.Now()
	old := leave("1", "a@example.com", domain.StatusApproved, domain.DateLabel(now.AddDate(0, 0, -30)))
	old.LeaveTime = "1 Day"

	stats := ComputeStats([]*domain.Submission{old}, 0, now)
	if stats.TotalApproved != 1 {
		t.Errorf("TotalApproved: want 1, got %d", stats.TotalApproved)
	}
	if stats.WeeklyApproved != 0 || stats.WeeklyApprovedHours != 0 {
		t.Errorf("old approvals must not count weekly: %d records, %d hours", stats.WeeklyApproved, stats.WeeklyApprovedHours)
	}
}

func TestComputeStats_Idempotent(t *testing.T) {
	now := time.Now()
	scoped := []*domain.Submission{
		leave("1", "a@example.com", domain.StatusApproved, domain.DateLabel(now)),
		leave("2", "b@example.com", domain.StatusPending, domain.DateLabel(now)),
	}
	first := ComputeStats(scoped, 5, now)
	second := ComputeStats(scoped, 5, now)
	if first != second {
		t.Errorf("recomputation over the same input must be identical: %+v vs %+v", first, second)
	}
}

func TestWeeklyHoursByUser(t *testing.T) {
	now := time.Now()
	recent := domain.DateLabel(now.AddDate(0, 0, -1))

	a1 := leave("1", "a@example.com", domain.StatusApproved, recent)
	a1.LeaveTime = "1 Day" // 9
	a2 := leave("2", "a@example.com", domain.StatusApproved, recent)
	a2.LeaveTime = "2 Hours" // 2
	b1 := leave("3", "b@example.com", domain.StatusApproved, recent)
	b1.LeaveTime = "First Half" // 4
	old := leave("4", "b@example.com", domain.StatusApproved, domain.DateLabel(now.AddDate(0, 0, -20)))
	old.LeaveTime = "1 Day"
	pending := leave("5", "c@example.com", domain.StatusPending, recent)

	rows := WeeklyHoursByUser([]*domain.Submission{a1, a2, b1, old, pending}, now)
	if len(rows) != 2 {
		t.Fatalf("expected 2 users, got %d", len(rows))
	}
	if rows[0].Email != "a@example.com" || rows[0].Hours != 11 {
		t.Errorf("top row: want a@example.com with 11h, got %s/%dh", rows[0].Email, rows[0].Hours)
	}
	if rows[1].Email != "b@example.com" || rows[1].Hours != 4 {
		t.Errorf("second row: want b@example.com with 4h, got %s/%dh", rows[1].Email, rows[1].Hours)
	}
}
