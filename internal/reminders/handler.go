package reminders

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/strengthside/journal/internal/telemetry/tracing"
	"github.com/strengthside/journal/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	notifier  Notifier
	scheduler *Scheduler
}

func NewHandler(notifier Notifier, scheduler *Scheduler) *Handler {
	return &Handler{
		notifier:  notifier,
		scheduler: scheduler,
	}
}

func (handler *Handler) HandleGetPermission(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.getPermission")
	defer span.End()

	granted, err := handler.notifier.GetPermissionStatus(ctx)
	if err != nil {
		log.Errorf("failed to get notification permission status: %s", err)
		http.Error(w, "error, push gateway unavailable", http.StatusBadGateway)
		span.RecordError(err)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"granted": %t}`, granted))
}

func (handler *Handler) HandleRequestPermission(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.requestPermission")
	defer span.End()

	granted, err := handler.notifier.RequestPermission(ctx)
	if err != nil {
		log.Errorf("failed to request notification permission: %s", err)
		http.Error(w, "error, push gateway unavailable", http.StatusBadGateway)
		span.RecordError(err)
		return
	}

	// a denied permission is a regular outcome, not an error
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"granted": %t}`, granted))
}

func (handler *Handler) HandleReschedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reminders.reschedule")
	defer span.End()

	if err := handler.scheduler.RescheduleFromSettings(ctx); err != nil {
		if errors.Is(err, ErrSettingsUnavailable) {
			log.Errorf("reschedule reminders: %s", err)
			http.Error(w, "error, failed to read settings", http.StatusInternalServerError)
			span.RecordError(err)
			return
		}
		// per-reminder failures are non-fatal, the rest of the set is installed
		log.Warnf("reschedule reminders: %s", err)
	}

	pkg.WriteTextResponseOK(w, "rescheduled")
}
