package checkin

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

//go:generate mockgen -source=$GOFILE -destination=checkin_mocks_test.go -package=checkin_test

type checkInsRepo interface {
	Add(ctx context.Context, checkIn CheckIn) (*CheckIn, error)
	Get(ctx context.Context, id int) (*CheckIn, error)
	ListAll(ctx context.Context, params ListParams) ([]CheckIn, error)
	Delete(ctx context.Context, id int) error
}

type AddCheckInResponse struct {
	CheckIn
	Scores Scores `json:"scores"`
}

type ListResponse struct {
	CheckIns []CheckIn `json:"checkIns"`
	Total    int       `json:"total"`
}

// DayScores is one point of the readiness trend chart
type DayScores struct {
	Date   string `json:"date"`
	Scores Scores `json:"scores"`
}

type DeleteCheckInResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo           checkInsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo checkInsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var checkIn CheckIn
	if err := json.NewDecoder(r.Body).Decode(&checkIn); err != nil {
		log.Tracef("new check-in, unmarshal json params: %s", err)
		http.Error(w, "add check-in failed", http.StatusBadRequest)
		return
	}

	// ratings are clamped by the scoring, the goal text is the only gate
	if !checkIn.Completed() {
		http.Error(w, "error, goal empty", http.StatusBadRequest)
		return
	}

	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = time.Now()
	}

	addedCheckIn, err := handler.repo.Add(ctx, checkIn)
	if err != nil {
		log.Errorf("failed to add new check-in: %s", err)
		http.Error(w, "error, failed to add new check-in", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterCheckIns.Inc()

	resp := AddCheckInResponse{
		CheckIn: *addedCheckIn,
		Scores:  addedCheckIn.Scores(),
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal new check-in: %s", err)
		http.Error(w, "error, failed to add new check-in", http.StatusInternalServerError)
		return
	}

	log.Debugf("new check-in added: %d", addedCheckIn.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write(respJson); err != nil {
		log.Errorf("failed to write new check-in response: %s", err)
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid check-in id", http.StatusBadRequest)
		return
	}

	checkIn, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCheckInNotFound) {
			http.Error(w, "check-in not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get check-in [%d]: %s", id, err)
		http.Error(w, "error, failed to get check-in", http.StatusInternalServerError)
		return
	}

	writeJson(w, AddCheckInResponse{
		CheckIn: *checkIn,
		Scores:  checkIn.Scores(),
	})
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.list")
	defer span.End()

	params, ok := listParamsFromQuery(w, r)
	if !ok {
		return
	}

	checkIns, err := handler.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("failed to list check-ins: %s", err)
		http.Error(w, "error, failed to list check-ins", http.StatusInternalServerError)
		return
	}

	writeJson(w, ListResponse{
		CheckIns: checkIns,
		Total:    len(checkIns),
	})
}

// HandleScores serves the readiness trend chart: one score triple per check-in
func (handler *Handler) HandleScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.scores")
	defer span.End()

	params, ok := listParamsFromQuery(w, r)
	if !ok {
		return
	}

	checkIns, err := handler.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("failed to list check-ins for scores: %s", err)
		http.Error(w, "error, failed to get scores", http.StatusInternalServerError)
		return
	}

	dayScores := make([]DayScores, 0, len(checkIns))
	for _, c := range checkIns {
		dayScores = append(dayScores, DayScores{
			Date:   c.CreatedAt.Format("2006-01-02"),
			Scores: c.Scores(),
		})
	}

	writeJson(w, dayScores)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid check-in id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrCheckInNotFound) {
			http.Error(w, "check-in not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete check-in [%d]: %s", id, err)
		http.Error(w, "error, failed to delete check-in", http.StatusInternalServerError)
		return
	}

	writeJson(w, DeleteCheckInResponse{DeletedID: id})
}

func listParamsFromQuery(w http.ResponseWriter, r *http.Request) (ListParams, bool) {
	var params ListParams
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid [from] parameter", http.StatusBadRequest)
			return params, false
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid [to] parameter", http.StatusBadRequest)
			return params, false
		}
		params.To = &to
	}
	return params, true
}

func writeJson(w http.ResponseWriter, payload interface{}) {
	respJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(respJson); err != nil {
		log.Errorf("failed to write response: %s", err)
	}
}
