package schedule

// Settings is the athlete's reminder configuration: which weekdays
// they train (and when to be reminded), the upcoming competition if
// any, and whether reminders are enabled at all.
type Settings struct {
	TrainingDays         TrainingDays `json:"trainingDays"`
	MeetDate             string       `json:"meetDate,omitempty"`
	MeetName             string       `json:"meetName,omitempty"`
	NotificationsEnabled bool         `json:"notificationsEnabled"`
}
