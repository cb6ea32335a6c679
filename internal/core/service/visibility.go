package service

import (
	"sort"
	"time"

	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/domain"
	"github.com/bhelavevicky66-ui/Health-Leave-Dashboard/internal/core/ports"
)

const recencyWindowDays = 7

// VisibleSubmissions computes the exact subset of records a viewer may see
// for a given filter selection. Steps, applied in order:
//
//  1. RBAC scope: without view-all rights only the viewer's own records remain.
//  2. Status partition: "all" keeps only Approved records (it is the
//     finalized-timeline view, not literally every status); any other filter
//     matches the status exactly.
//  3. Sub-filter, only meaningful on the approved partition: today (exact
//     date-label equality), weekly (symmetric 7-day window), fullDay
//     ("1 Day" label); total and weeklyHours pass through.
//
// Records keep the order delivered by the store subscription.
func VisibleSubmissions(
	all []*domain.Submission,
	viewerEmail string,
	canViewAll bool,
	status ports.StatusFilter,
	sub ports.SubFilter,
	now time.Time,
) []*domain.Submission {
	scoped := make([]*domain.Submission, 0, len(all))
	for _, s := range all {
		if !canViewAll && s.Email != viewerEmail {
			continue
		}
		scoped = append(scoped, s)
	}

	result := scoped[:0:0]
	for _, s := range scoped {
		if status == ports.FilterAll {
			if s.Status == domain.StatusApproved {
				result = append(result, s)
			}
		} else if string(s.Status) == string(status) {
			result = append(result, s)
		}
	}

	if status != ports.FilterAll {
		return result
	}

	today := domain.DateLabel(now)
	filtered := result[:0:0]
	for _, s := range result {
		switch sub {
		case ports.SubFilterToday:
			if s.Date != today {
				continue
			}
		case ports.SubFilterWeekly:
			if !domain.WithinLastDays(s.Date, now, recencyWindowDays) {
				continue
			}
		case ports.SubFilterFullDay:
			if s.LeaveTime != "1 Day" {
				continue
			}
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// ScopeForViewer applies only the RBAC step: the record set a viewer's
// statistics are computed over.
func ScopeForViewer(all []*domain.Submission, viewerEmail string, canViewAll bool) []*domain.Submission {
	if canViewAll {
		return all
	}
	scoped := make([]*domain.Submission, 0, len(all))
	for _, s := range all {
		if s.Email == viewerEmail {
			scoped = append(scoped, s)
		}
	}
	return scoped
}

// GroupByDate builds the approved timeline: submissions grouped by their
// date label, groups sorted descending by parsed date. Unparsable labels
// sort last. Within a group the subscription order is preserved.
func GroupByDate(subs []*domain.Submission) []ports.DateGroup {
	byDate := make(map[string][]*domain.Submission)
	var order []string
	for _, s := range subs {
		if _, seen := byDate[s.Date]; !seen {
			order = append(order, s.Date)
		}
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	sort.SliceStable(order, func(i, j int) bool {
		di, erri := domain.ParseDateLabel(order[i])
		dj, errj := domain.ParseDateLabel(order[j])
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return di.After(dj)
	})

	groups := make([]ports.DateGroup, 0, len(order))
	for _, date := range order {
		groups = append(groups, ports.DateGroup{Date: date, Submissions: byDate[date]})
	}
	return groups
}
