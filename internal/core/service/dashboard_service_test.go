package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func startDashboard(t *testing.T) (*DashboardService, *stubSubmissionRepo, *stubUserRepo) {
	t.Helper()
	repo := newStubSubmissionRepo()
	users := newStubUserRepo()
	d := NewDashboardService(repo, users, testSuperAdmin, discardLogger)
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(d.Close)
	return d, repo, users
}

func TestDashboard_AppliesSnapshotsAndRecomputes(t *testing.T) {
	d, repo, users := startDashboard(t)
	now := time.Now()
	today := domain.DateLabel(now)

	users.ch <- []*domain.UserProfile{
		{Email: "admin@example.com", Role: domain.RoleAdmin},
		{Email: "student@example.com", Role: domain.RoleUser},
	}
	repo.ch <- []*domain.Submission{
		leave("1", "student@example.com", domain.StatusApproved, today),
		leave("2", "other@example.com", domain.StatusPending, today),
	}
	waitFor(t, func() bool { return len(d.Users()) == 2 && d.Stats("admin@example.com").TotalApproved == 1 })

	if got := d.ResolveRole("admin@example.com"); got != domain.RoleAdmin {
		t.Errorf("role from snapshot: want admin, got %q", got)
	}
	if got := d.ResolveRole(testSuperAdmin); got != domain.RoleSuperAdmin {
		t.Errorf("super admin override must hold, got %q", got)
	}

	// Admin sees the global scope, the student only their own records.
	adminStats := d.Stats("admin@example.com")
	if adminStats.Pending != 1 || adminStats.CampusTotal != 2 {
		t.Errorf("admin stats wrong: %+v", adminStats)
	}
	studentStats := d.Stats("student@example.com")
	if studentStats.TotalApproved != 1 || studentStats.Pending != 0 {
		t.Errorf("student stats must be scoped to own records: %+v", studentStats)
	}

	visible := d.Visible("student@example.com", ports.FilterPending, ports.SubFilterTotal)
	if len(visible) != 0 {
		t.Errorf("student must not see another user's pending record, got %v", visible)
	}
}

func TestDashboard_NewSnapshotReplacesOldState(t *testing.T) {
	d, repo, _ := startDashboard(t)
	now := time.Now()
	today := domain.DateLabel(now)

	repo.ch <- []*domain.Submission{leave("1", "a@example.com", domain.StatusPending, today)}
	waitFor(t, func() bool { return d.Stats("a@example.com").Pending == 1 })

	// A full snapshot replaces, never merges.
	repo.ch <- []*domain.Submission{leave("2", "a@example.com", domain.StatusApproved, today)}
	waitFor(t, func() bool {
		s := d.Stats("a@example.com")
		return s.Pending == 0 && s.TotalApproved == 1
	})
}

func TestDashboard_CloseReleasesSubscriptions(t *testing.T) {
	repo := newStubSubmissionRepo()
	users := newStubUserRepo()
	d := NewDashboardService(repo, users, testSuperAdmin, discardLogger)
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	done := make(chan struct{})
	go func() {
		d.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close must stop the consumer")
	}
}

func TestDashboard_CloseAfterFailedStartReturns(t *testing.T) {
	repo := newStubSubmissionRepo()
	users := newStubUserRepo()
	users.subscribeErr = errors.New("change stream unavailable")
	d := NewDashboardService(repo, users, testSuperAdmin, discardLogger)

	if err := d.Start(context.Background()); err == nil {
		t.Fatal("Start must surface the subscription failure")
	}

	done := make(chan struct{})
	go func() {
		d.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close must not block when no consumer was started")
	}
}

func TestDashboard_TimelineGroupsApproved(t *testing.T) {
	d, repo, _ := startDashboard(t)
	now := time.Now()
	today := domain.DateLabel(now)
	yesterday := domain.DateLabel(now.AddDate(0, 0, -1))

	repo.ch <- []*domain.Submission{
		leave("1", "a@example.com", domain.StatusApproved, yesterday),
		leave("2", "b@example.com", domain.StatusApproved, today),
		leave("3", "c@example.com", domain.StatusPending, today),
	}
	waitFor(t, func() bool { return len(d.Timeline(testSuperAdmin)) == 2 })

	groups := d.Timeline(testSuperAdmin)
	if groups[0].Date != today || groups[1].Date != yesterday {
		t.Errorf("timeline groups not descending: %v / %v", groups[0].Date, groups[1].Date)
	}
}
