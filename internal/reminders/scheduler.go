package reminders

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/strengthside/journal/internal/journal/schedule"
	"github.com/strengthside/journal/internal/telemetry/metrics"
	"github.com/strengthside/journal/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=scheduler_mocks_test.go -package=reminders_test

type settingsRepo interface {
	Get(ctx context.Context) (*schedule.Settings, error)
}

// the post-session reflection fires this many hours after the check-in
const sessionReminderDelayHours = 2

// competition reflections fire at 17:00 local time on meet day
const compReflectionHour = 17

var ErrSettingsUnavailable = errors.New("settings unavailable")

type ScheduleParams struct {
	TrainingDays schedule.TrainingDays
	MeetDate     string
	MeetName     string
	Enabled      bool
}

// Scheduler derives the full reminder set from the training schedule
// and installs it into the push gateway. It never updates in place:
// every call cancels everything and reinstalls from scratch, so the
// installed set is always a pure function of the current settings.
type Scheduler struct {
	notifier       Notifier
	settings       settingsRepo
	metricsManager *metrics.Manager
}

func NewScheduler(
	notifier Notifier,
	settings settingsRepo,
	metricsManager *metrics.Manager,
) *Scheduler {
	return &Scheduler{
		notifier:       notifier,
		settings:       settings,
		metricsManager: metricsManager,
	}
}

// RescheduleFromSettings re-reads the stored settings and recomputes
// the reminder set from them. Used whenever the schedule, meet info or
// the enabled flag change.
func (s *Scheduler) RescheduleFromSettings(ctx context.Context) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSettingsUnavailable, err)
	}

	return s.Schedule(ctx, ScheduleParams{
		TrainingDays: settings.TrainingDays,
		MeetDate:     settings.MeetDate,
		MeetName:     settings.MeetName,
		Enabled:      settings.NotificationsEnabled,
	})
}

// Schedule cancels all installed reminders and reinstalls the set
// derived from params. Malformed entries (unknown weekday, bad time
// string, unparseable meet date) are skipped without failing the rest;
// gateway errors for individual reminders are collected and returned
// as one non-fatal aggregate.
func (s *Scheduler) Schedule(ctx context.Context, params ScheduleParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reminders.schedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !params.Enabled {
		log.Debugln("reminders disabled, nothing to schedule")
		return nil
	}

	if err := s.notifier.EnsureChannel(ctx); err != nil {
		// the channel normally exists already, keep going
		log.Warnf("ensure notification channel: %s", err)
	}

	// full reset: a brief window with no reminders installed is fine,
	// rescheduling only happens on rare user-triggered schedule edits
	if err := s.notifier.CancelAll(ctx); err != nil {
		return fmt.Errorf("cancel scheduled reminders: %w", err)
	}

	var (
		wg      sync.WaitGroup
		errsMux sync.Mutex
		errs    error
	)
	collect := func(scheduleErr error) {
		errsMux.Lock()
		defer errsMux.Unlock()
		errs = multierr.Append(errs, scheduleErr)
	}

	for day, timeStr := range params.TrainingDays {
		weekday, ok := schedule.WeekdayNumber(day)
		if !ok {
			log.Warnf("skipping reminder for unknown weekday [%s]", day)
			s.metricsManager.CounterRemindersSkipped.Inc()
			continue
		}
		reminderTime, ok := schedule.ParseReminderTime(timeStr)
		if !ok {
			log.Warnf("skipping reminder for [%s], malformed time [%s]", day, timeStr)
			s.metricsManager.CounterRemindersSkipped.Inc()
			continue
		}

		wg.Add(1)
		go func(day string, weekday int, reminderTime schedule.ReminderTime) {
			defer wg.Done()
			s.scheduleTrainingDay(ctx, day, weekday, reminderTime, collect)
		}(day, weekday, reminderTime)
	}

	if params.MeetDate != "" && params.MeetName != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.scheduleCompReflection(ctx, params.MeetDate, params.MeetName, collect)
		}()
	}

	wg.Wait()

	if errs != nil {
		log.Warnf("some reminders failed to schedule: %s", errs)
	}
	return errs
}

func (s *Scheduler) scheduleTrainingDay(
	ctx context.Context,
	day string,
	weekday int,
	reminderTime schedule.ReminderTime,
	collect func(error),
) {
	if err := s.notifier.ScheduleWeekly(
		ctx,
		"checkin_"+day,
		checkInTitle, checkInBody,
		weekday, reminderTime.Hour, reminderTime.Minute,
		CategoryCheckIn,
	); err != nil {
		collect(fmt.Errorf("schedule checkin_%s: %w", day, err))
	} else {
		s.metricsManager.CounterRemindersScheduled.Inc()
	}

	sessionHour, sessionMinute, dayShift := schedule.AddHours(
		reminderTime.Hour, reminderTime.Minute, sessionReminderDelayHours,
	)
	sessionWeekday := weekday
	if dayShift > 0 {
		// crossed midnight: Saturday's reflection lands on Sunday
		sessionWeekday = weekday%7 + 1
	}

	if err := s.notifier.ScheduleWeekly(
		ctx,
		"session_"+day,
		sessionTitle, sessionBody,
		sessionWeekday, sessionHour, sessionMinute,
		CategorySessionReflection,
	); err != nil {
		collect(fmt.Errorf("schedule session_%s: %w", day, err))
	} else {
		s.metricsManager.CounterRemindersScheduled.Inc()
	}
}

func (s *Scheduler) scheduleCompReflection(
	ctx context.Context,
	meetDate, meetName string,
	collect func(error),
) {
	day, ok := parseMeetDate(meetDate)
	if !ok {
		log.Warnf("skipping comp reflection, unparseable meet date [%s]", meetDate)
		s.metricsManager.CounterRemindersSkipped.Inc()
		return
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), compReflectionHour, 0, 0, 0, day.Location())
	if err := s.notifier.ScheduleAbsolute(
		ctx,
		"comp_"+meetDate,
		fmt.Sprintf("%s reflection", meetName), compReflectionBody,
		at,
		CategoryCompReflection,
	); err != nil {
		collect(fmt.Errorf("schedule comp_%s: %w", meetDate, err))
	} else {
		s.metricsManager.CounterRemindersScheduled.Inc()
	}
}

// parseMeetDate treats YYYY-MM-DD as a literal local calendar date and
// falls back to RFC3339 for anything else
func parseMeetDate(meetDate string) (time.Time, bool) {
	if day, err := time.ParseInLocation("2006-01-02", meetDate, time.Local); err == nil {
		return day, true
	}
	if at, err := time.Parse(time.RFC3339, meetDate); err == nil {
		return at.Local(), true
	}
	return time.Time{}, false
}
