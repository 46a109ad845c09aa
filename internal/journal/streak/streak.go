package streak

import (
	"sort"
	"time"

	"github.com/strengthside/journal/internal/journal/schedule"
)

const (
	dayFormat = "2006-01-02"

	// cap on the backward walk for the current streak
	maxLookbackDays = 365
)

// State is the derived streak snapshot for the home screen. It is
// recomputed from the full activity history on every call - there is
// no stored streak counter to drift out of sync.
type State struct {
	// CurrentStreak counts consecutive scheduled training days with
	// activity, walking backward from today
	CurrentStreak int `json:"currentStreak"`
	// LongestStreak is the maximum such run ever observed, never
	// below CurrentStreak
	LongestStreak int `json:"longestStreak"`
	// LastActivityDate is the most recent activity day (YYYY-MM-DD),
	// empty when no activity was ever logged
	LastActivityDate string `json:"lastActivityDate,omitempty"`
	// IsActive tells whether the streak is still alive going into today
	IsActive           bool `json:"isActive"`
	CompletedToday     bool `json:"completedToday"`
	IsTodayTrainingDay bool `json:"isTodayTrainingDay"`
}

// Calculate derives the streak state from check-in and session-report
// activity days and the weekly training schedule. Date strings with an
// ISO calendar-date prefix (at least YYYY-MM-DD) are truncated to their
// day portion; anything unparseable is dropped, never an error. Pure
// function of its inputs - "now" is explicit so results are testable
// and idempotent.
func Calculate(
	checkInDays []string,
	sessionDays []string,
	trainingDays schedule.TrainingDays,
	now time.Time,
) State {
	activity := make(map[string]struct{})
	for _, d := range checkInDays {
		if day, ok := parseDay(d); ok {
			activity[day] = struct{}{}
		}
	}
	for _, d := range sessionDays {
		if day, ok := parseDay(d); ok {
			activity[day] = struct{}{}
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayStr := today.Format(dayFormat)

	isTodayTrainingDay := trainingDays.Has(today.Weekday().String())
	_, completedToday := activity[todayStr]

	if len(activity) == 0 {
		// a streak that never started is still alive, unless today
		// itself is a scheduled day that was missed
		return State{
			IsActive:           !isTodayTrainingDay,
			IsTodayTrainingDay: isTodayTrainingDay,
		}
	}

	activityDaysDesc := make([]string, 0, len(activity))
	for day := range activity {
		activityDaysDesc = append(activityDaysDesc, day)
	}
	// YYYY-MM-DD sorts chronologically as plain strings
	sort.Sort(sort.Reverse(sort.StringSlice(activityDaysDesc)))
	mostRecentActivity := activityDaysDesc[0]

	currentStreak := calculateCurrentStreak(activity, trainingDays, today)
	longestStreak := calculateLongestStreak(
		activity, trainingDays,
		activityDaysDesc[len(activityDaysDesc)-1], mostRecentActivity,
		now.Location(),
	)
	if currentStreak > longestStreak {
		longestStreak = currentStreak
	}

	return State{
		CurrentStreak:      currentStreak,
		LongestStreak:      longestStreak,
		LastActivityDate:   mostRecentActivity,
		IsActive:           isActive(activity, trainingDays, today, mostRecentActivity, completedToday),
		CompletedToday:     completedToday,
		IsTodayTrainingDay: isTodayTrainingDay,
	}
}

// isActive walks backward from today down to the most recent activity
// day; the first training day encountered decides the verdict. Missed
// training days further back in the gap are deliberately never
// examined - only the training day nearest to today can break the
// streak. If the walk reaches the last activity without hitting a
// training day at all, the streak counts as alive.
func isActive(
	activity map[string]struct{},
	trainingDays schedule.TrainingDays,
	today time.Time,
	mostRecentActivity string,
	completedToday bool,
) bool {
	if completedToday {
		return true
	}

	for day := today; day.Format(dayFormat) >= mostRecentActivity; day = day.AddDate(0, 0, -1) {
		if !trainingDays.Has(day.Weekday().String()) {
			continue
		}
		_, hasActivity := activity[day.Format(dayFormat)]
		return hasActivity
	}

	return true
}

// calculateCurrentStreak walks backward from today (inclusive), counting
// training days with activity and stopping at the first one without.
// Non-training days are skipped entirely. With an empty schedule the
// loop body never counts anything and the streak stays 0.
func calculateCurrentStreak(
	activity map[string]struct{},
	trainingDays schedule.TrainingDays,
	today time.Time,
) int {
	streak := 0
	day := today
	for i := 0; i < maxLookbackDays; i++ {
		if trainingDays.Has(day.Weekday().String()) {
			if _, ok := activity[day.Format(dayFormat)]; !ok {
				break
			}
			streak++
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// calculateLongestStreak scans chronologically from the oldest to the
// newest activity day, running a counter over training days only.
func calculateLongestStreak(
	activity map[string]struct{},
	trainingDays schedule.TrainingDays,
	oldestActivity, newestActivity string,
	loc *time.Location,
) int {
	start, err := time.ParseInLocation(dayFormat, oldestActivity, loc)
	if err != nil {
		return 0
	}

	longest, run := 0, 0
	for day := start; day.Format(dayFormat) <= newestActivity; day = day.AddDate(0, 0, 1) {
		if !trainingDays.Has(day.Weekday().String()) {
			continue
		}
		if _, ok := activity[day.Format(dayFormat)]; ok {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	return longest
}

// parseDay extracts the YYYY-MM-DD day portion of a date string
func parseDay(s string) (string, bool) {
	if len(s) < len(dayFormat) {
		return "", false
	}
	day := s[:len(dayFormat)]
	if _, err := time.Parse(dayFormat, day); err != nil {
		return "", false
	}
	return day, true
}
