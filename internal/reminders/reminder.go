package reminders

// Category tags a reminder so the app can route the tap to the right screen
type Category string

const (
	CategoryCheckIn           Category = "CHECK_IN"
	CategorySessionReflection Category = "SESSION_REFLECTION"
	CategoryCompReflection    Category = "COMP_REFLECTION"
)

const (
	checkInTitle = "Pre-training check-in"
	checkInBody  = "How ready are you to train today? Take a minute to check in."

	sessionTitle = "Session reflection"
	sessionBody  = "Training should be done by now. How did it go?"

	compReflectionBody = "How did the meet go? Capture it while it's still fresh."
)
