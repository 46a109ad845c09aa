package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// TrainingDays maps a weekday name (Sunday ... Saturday) to the
// reminder time for that day, in the mobile app's "H:MM AM/PM" format.
type TrainingDays map[string]string

// Sunday-first weekday numbering, 1..7, as used by the device push gateway
var weekdayNumbers = map[string]int{
	"Sunday":    1,
	"Monday":    2,
	"Tuesday":   3,
	"Wednesday": 4,
	"Thursday":  5,
	"Friday":    6,
	"Saturday":  7,
}

func WeekdayNumber(name string) (int, bool) {
	n, ok := weekdayNumbers[name]
	return n, ok
}

func (td TrainingDays) Has(dayName string) bool {
	_, ok := td[dayName]
	return ok
}

// the app produces exactly this shape, e.g. "9:00 AM" or "11:30 pm";
// no leading zero requirement, locale fixed to english AM/PM
var reminderTimeRegex = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*([AaPp][Mm])\s*$`)

type ReminderTime struct {
	Hour   int // 0-23
	Minute int
}

// ParseReminderTime parses "H:MM AM/PM" into a 24-hour time of day.
// Returns false for anything malformed - callers skip such entries.
func ParseReminderTime(s string) (ReminderTime, bool) {
	matches := reminderTimeRegex.FindStringSubmatch(s)
	if matches == nil {
		return ReminderTime{}, false
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil || hour < 1 || hour > 12 {
		return ReminderTime{}, false
	}
	minute, err := strconv.Atoi(matches[2])
	if err != nil || minute > 59 {
		return ReminderTime{}, false
	}

	isPM := strings.EqualFold(matches[3], "PM")
	switch {
	case hour == 12 && !isPM:
		hour = 0
	case hour != 12 && isPM:
		hour += 12
	}

	return ReminderTime{Hour: hour, Minute: minute}, true
}

// AddHours shifts a time of day by delta hours, wrapping through midnight.
// DayShift reports how many calendar days the result landed past the input.
func AddHours(hour, minute, delta int) (h, m, dayShift int) {
	totalMinutes := hour*60 + minute + delta*60
	dayShift = totalMinutes / (24 * 60)
	totalMinutes %= 24 * 60
	return totalMinutes / 60, totalMinutes % 60, dayShift
}
