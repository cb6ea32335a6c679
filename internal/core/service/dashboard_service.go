package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
)

// DashboardService holds the latest full snapshots of both store
// subscriptions and serves every derived view (role, visibility, stats) as a
// recomputation over them. There is no incremental state: each snapshot
// replaces the previous one wholesale.
type DashboardService struct {
	submissions ports.SubmissionRepository
	users       ports.UserRepository

	superAdminEmail string
	logger          zerolog.Logger
	now             func() time.Time

	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.RWMutex
	subs     []*domain.Submission
	profiles []*domain.UserProfile
}

func NewDashboardService(
	submissions ports.SubmissionRepository,
	users ports.UserRepository,
	superAdminEmail string,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		submissions:     submissions,
		users:           users,
		superAdminEmail: superAdminEmail,
		logger:          logger,
		now:             time.Now,
		done:            make(chan struct{}),
	}
}

// Start opens both snapshot subscriptions and consumes them until Close is
// called or ctx is cancelled. On failure no consumer is started, so d.cancel
// must stay nil: Close waits on d.done only when consume will close it.
func (d *DashboardService) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	subCh, err := d.submissions.Subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}
	userCh, err := d.users.Subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}

	d.cancel = cancel
	go d.consume(ctx, subCh, userCh)
	return nil
}

// Close releases both subscriptions and waits for the consumer to stop.
func (d *DashboardService) Close() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
}

func (d *DashboardService) consume(ctx context.Context, subCh <-chan []*domain.Submission, userCh <-chan []*domain.UserProfile) {
	defer close(d.done)
	for subCh != nil || userCh != nil {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-subCh:
			if !ok {
				subCh = nil
				continue
			}
			d.mu.Lock()
			d.subs = snapshot
			d.mu.Unlock()
			d.logger.Debug().Int("count", len(snapshot)).Msg("submissions snapshot applied")
		case snapshot, ok := <-userCh:
			if !ok {
				userCh = nil
				continue
			}
			d.mu.Lock()
			d.profiles = snapshot
			d.mu.Unlock()
			d.logger.Debug().Int("count", len(snapshot)).Msg("users snapshot applied")
		}
	}
}

// snapshot returns the current record set and registry under the read lock.
func (d *DashboardService) snapshot() ([]*domain.Submission, map[string]domain.UserProfile, int) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	registry := make(map[string]domain.UserProfile, len(d.profiles))
	for _, p := range d.profiles {
		registry[p.Email] = *p
	}
	return d.subs, registry, len(d.profiles)
}

// ResolveRole derives the viewer's effective role from the latest registry
// snapshot.
func (d *DashboardService) ResolveRole(email string) domain.Role {
	_, registry, _ := d.snapshot()
	return domain.ResolveRole(email, registry, d.superAdminEmail)
}

// Visible computes the filtered record set for a viewer.
func (d *DashboardService) Visible(viewerEmail string, status ports.StatusFilter, sub ports.SubFilter) []*domain.Submission {
	subs, registry, _ := d.snapshot()
	role := domain.ResolveRole(viewerEmail, registry, d.superAdminEmail)
	return VisibleSubmissions(subs, viewerEmail, role.CanViewAll(), status, sub, d.now())
}

// Timeline computes the grouped approved view for a viewer.
func (d *DashboardService) Timeline(viewerEmail string) []ports.DateGroup {
	return GroupByDate(d.Visible(viewerEmail, ports.FilterAll, ports.SubFilterTotal))
}

// Stats recomputes the dashboard summary over the viewer's RBAC scope.
func (d *DashboardService) Stats(viewerEmail string) ports.DerivedStats {
	subs, registry, registrySize := d.snapshot()
	role := domain.ResolveRole(viewerEmail, registry, d.superAdminEmail)
	scoped := ScopeForViewer(subs, viewerEmail, role.CanViewAll())
	return ComputeStats(scoped, registrySize, d.now())
}

// WeeklyHours computes the per-user weekly leave-hours view over the
// viewer's RBAC scope.
func (d *DashboardService) WeeklyHours(viewerEmail string) []ports.UserHours {
	subs, registry, _ := d.snapshot()
	role := domain.ResolveRole(viewerEmail, registry, d.superAdminEmail)
	scoped := ScopeForViewer(subs, viewerEmail, role.CanViewAll())
	return WeeklyHoursByUser(scoped, d.now())
}

// Users returns the latest registry snapshot, ordered as delivered
// (last seen, descending).
func (d *DashboardService) Users() []*domain.UserProfile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.profiles
}

// Profile returns the stored profile for an email, or nil.
func (d *DashboardService) Profile(email string) *domain.UserProfile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, p := range d.profiles {
		if p.Email == email {
			return p
		}
	}
	return nil
}
