package engine

import (
	"sort"
	"time"

	"github.com/SrChaoz/financeApp-sub000/models"
)

// DueWindow is the look-ahead horizon for upcoming reminders.
const DueWindow = 7 * 24 * time.Hour

// DueBucket is the display grouping of a reminder relative to today.
type DueBucket string

const (
	BucketOverdue  DueBucket = "overdue"
	BucketToday    DueBucket = "due_today"
	BucketTomorrow DueBucket = "due_tomorrow"
	BucketUpcoming DueBucket = "upcoming"
)

// UpcomingReminders returns the active reminders due within [now, now+7d],
// both ends inclusive, ordered by due date ascending. Inactive reminders
// never appear.
func UpcomingReminders(rs []models.Reminder, now time.Time) []models.Reminder {
	horizon := now.Add(DueWindow)
	out := make([]models.Reminder, 0, len(rs))
	for _, r := range rs {
		if !r.IsActive {
			continue
		}
		if r.DueDate.Before(now) || r.DueDate.After(horizon) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

// Bucket classifies a due date against today's calendar date. Calendar-day
// comparison uses the server's local zone; see DESIGN.md for the timezone
// policy.
func Bucket(due, today time.Time) DueBucket {
	d := dayOf(due)
	t := dayOf(today)
	switch {
	case d.Before(t):
		return BucketOverdue
	case d.Equal(t):
		return BucketToday
	case d.Equal(t.AddDate(0, 0, 1)):
		return BucketTomorrow
	default:
		return BucketUpcoming
	}
}

func dayOf(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}
