package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/strengthside/journal/internal/telemetry/metrics"
	"github.com/strengthside/journal/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=sessions_mocks_test.go -package=sessions_test

type reportsRepo interface {
	Add(ctx context.Context, report Report) (*Report, error)
	ListAll(ctx context.Context) ([]Report, error)
	Delete(ctx context.Context, id int) error
}

type ListResponse struct {
	Reports []Report `json:"reports"`
	Total   int      `json:"total"`
}

type DeleteReportResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo           reportsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo reportsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var report Report
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		log.Tracef("new session report, unmarshal json params: %s", err)
		http.Error(w, "add session report failed", http.StatusBadRequest)
		return
	}

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	addedReport, err := handler.repo.Add(ctx, report)
	if err != nil {
		log.Errorf("failed to add new session report: %s", err)
		http.Error(w, "error, failed to add new session report", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterSessionReports.Inc()

	respJson, err := json.Marshal(addedReport)
	if err != nil {
		log.Errorf("failed to marshal new session report: %s", err)
		http.Error(w, "error, failed to add new session report", http.StatusInternalServerError)
		return
	}

	log.Debugf("new session report added: %d", addedReport.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write(respJson); err != nil {
		log.Errorf("failed to write new session report response: %s", err)
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	reports, err := handler.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("failed to list session reports: %s", err)
		http.Error(w, "error, failed to list session reports", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Reports: reports,
		Total:   len(reports),
	})
	if err != nil {
		log.Errorf("failed to marshal session reports: %s", err)
		http.Error(w, "error, failed to list session reports", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(respJson); err != nil {
		log.Errorf("failed to write session reports response: %s", err)
	}
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid session report id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrReportNotFound) {
			http.Error(w, "session report not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete session report [%d]: %s", id, err)
		http.Error(w, "error, failed to delete session report", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteReportResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(respJson); err != nil {
		log.Errorf("failed to write delete response: %s", err)
	}
}
