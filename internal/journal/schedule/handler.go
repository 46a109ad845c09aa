package schedule

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/strengthside/journal/internal/telemetry/tracing"
	"github.com/strengthside/journal/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=schedule_mocks_test.go -package=schedule_test

type settingsRepo interface {
	Get(ctx context.Context) (*Settings, error)
	SetTrainingDays(ctx context.Context, trainingDays TrainingDays) error
	SetMeet(ctx context.Context, meetDate, meetName string) error
	SetNotificationsEnabled(ctx context.Context, enabled bool) error
}

// rescheduler recomputes the installed reminder set from the stored
// settings; every settings mutation below triggers it
type rescheduler interface {
	RescheduleFromSettings(ctx context.Context) error
}

type UpdateTrainingDaysRequest struct {
	TrainingDays TrainingDays `json:"trainingDays"`
}

type UpdateMeetRequest struct {
	MeetDate string `json:"meetDate"`
	MeetName string `json:"meetName"`
}

type UpdateNotificationsRequest struct {
	Enabled bool `json:"enabled"`
}

type Handler struct {
	repo        settingsRepo
	rescheduler rescheduler
}

func NewHandler(repo settingsRepo, rescheduler rescheduler) *Handler {
	return &Handler{
		repo:        repo,
		rescheduler: rescheduler,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.get")
	defer span.End()

	settings, err := handler.repo.Get(ctx)
	if err != nil {
		log.Errorf("failed to get schedule settings: %s", err)
		http.Error(w, "error, failed to get schedule", http.StatusInternalServerError)
		span.RecordError(err)
		return
	}

	settingsJson, err := json.Marshal(settings)
	if err != nil {
		log.Errorf("failed to marshal schedule settings: %s", err)
		http.Error(w, "error, failed to get schedule", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, settingsJson)
}

func (handler *Handler) HandleUpdateTrainingDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.updateTrainingDays")
	defer span.End()

	var req UpdateTrainingDaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update training days, unmarshal json params: %s", err)
		http.Error(w, "update schedule failed", http.StatusBadRequest)
		return
	}
	if req.TrainingDays == nil {
		req.TrainingDays = TrainingDays{}
	}

	// entries with unknown weekdays or malformed times are stored as-is
	// and skipped at scheduling time, matching the app's behavior

	if err := handler.repo.SetTrainingDays(ctx, req.TrainingDays); err != nil {
		log.Errorf("failed to save training days: %s", err)
		http.Error(w, "error, failed to save schedule", http.StatusInternalServerError)
		span.RecordError(err)
		return
	}

	handler.reschedule(ctx)
	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleUpdateMeet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.updateMeet")
	defer span.End()

	var req UpdateMeetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update meet, unmarshal json params: %s", err)
		http.Error(w, "update meet failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetMeet(ctx, req.MeetDate, req.MeetName); err != nil {
		log.Errorf("failed to save meet info: %s", err)
		http.Error(w, "error, failed to save meet info", http.StatusInternalServerError)
		span.RecordError(err)
		return
	}

	handler.reschedule(ctx)
	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleUpdateNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.updateNotifications")
	defer span.End()

	var req UpdateNotificationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update notifications flag, unmarshal json params: %s", err)
		http.Error(w, "update notifications failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetNotificationsEnabled(ctx, req.Enabled); err != nil {
		log.Errorf("failed to save notifications flag: %s", err)
		http.Error(w, "error, failed to save notifications flag", http.StatusInternalServerError)
		span.RecordError(err)
		return
	}

	handler.reschedule(ctx)
	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) reschedule(ctx context.Context) {
	if err := handler.rescheduler.RescheduleFromSettings(ctx); err != nil {
		// reminder install failures never fail the settings write
		log.Warnf("reschedule reminders after settings change: %s", err)
	}
}
