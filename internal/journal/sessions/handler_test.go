package sessions_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/strengthside/journal/internal/journal/sessions"
	"github.com/strengthside/journal/internal/telemetry/metrics"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHandler_HandleAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockreportsRepo(ctrl)
	handler := sessions.NewHandler(repoMock, metrics.NewTestManager())

	newReport := sessions.Report{
		Performance: 4,
		Enjoyment:   5,
		Fatigue:     3,
		Notes:       gofakeit.Sentence(7),
	}
	reportJson, err := json.Marshal(newReport)
	require.NoError(t, err)

	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report sessions.Report) (*sessions.Report, error) {
			assert.Equal(t, newReport.Performance, report.Performance)
			assert.Equal(t, newReport.Notes, report.Notes)
			// created at defaults to now when the client leaves it out
			assert.True(t, time.Since(report.CreatedAt) < time.Minute)
			added := report
			added.ID = 5
			return &added, nil
		})

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/sessions", bytes.NewBuffer(reportJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	handler.HandleAdd(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var added sessions.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.Equal(t, 5, added.ID)
}

func TestHandler_HandleAdd_InvalidContentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockreportsRepo(ctrl)
	handler := sessions.NewHandler(repoMock, metrics.NewTestManager())

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/sessions", bytes.NewBufferString("{}"))
	require.NoError(t, err)

	handler.HandleAdd(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockreportsRepo(ctrl)
	handler := sessions.NewHandler(repoMock, metrics.NewTestManager())

	repoMock.EXPECT().
		ListAll(gomock.Any()).
		Return([]sessions.Report{
			{ID: 1, Performance: 3},
			{ID: 2, Performance: 5},
		}, nil)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/sessions", nil)
	require.NoError(t, err)

	handler.HandleList(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp sessions.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Reports, 2)
}

func TestHandler_HandleDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockreportsRepo(ctrl)
	handler := sessions.NewHandler(repoMock, metrics.NewTestManager())

	repoMock.EXPECT().Delete(gomock.Any(), 2).Return(nil)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("DELETE", "/sessions/2", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": "2"})

	handler.HandleDelete(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp sessions.DeleteReportResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.DeletedID)
}

func TestHandler_HandleDelete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockreportsRepo(ctrl)
	handler := sessions.NewHandler(repoMock, metrics.NewTestManager())

	repoMock.EXPECT().Delete(gomock.Any(), 99).Return(sessions.ErrReportNotFound)

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("DELETE", "/sessions/99", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": "99"})

	handler.HandleDelete(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_HandleDelete_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockreportsRepo(ctrl)
	handler := sessions.NewHandler(repoMock, metrics.NewTestManager())

	repoMock.EXPECT().Delete(gomock.Any(), 3).Return(errors.New("db down"))

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("DELETE", "/sessions/3", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"id": "3"})

	handler.HandleDelete(rr, req)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
