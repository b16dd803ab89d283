package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avaleri/burnboard/internal/api"
	"github.com/avaleri/burnboard/internal/apiclient"
	"github.com/avaleri/burnboard/internal/billing"
	"github.com/avaleri/burnboard/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestClient_ListActivitiesQueryConstruction(t *testing.T) {
	var gotPath, gotProjectID, gotDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotProjectID = r.URL.Query().Get("projectId")
		gotDate = r.URL.Query().Get("date")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "data": []any{}})
	}))
	t.Cleanup(server.Close)

	client := apiclient.New(server.URL)
	w := billing.Window{
		Start:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Qualifier: billing.QualifierGTE,
	}
	_, err := client.ListActivities(context.Background(), "p1", w)
	require.NoError(t, err)
	require.Equal(t, "/activity", gotPath)
	require.Equal(t, "p1", gotProjectID)
	require.Equal(t, "gte:1704067200000", gotDate)
}

func TestClient_ListActivitiesNoQualifier(t *testing.T) {
	var gotDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "data": []any{}})
	}))
	t.Cleanup(server.Close)

	client := apiclient.New(server.URL)
	w := billing.Window{Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
	_, err := client.ListActivities(context.Background(), "p1", w)
	require.NoError(t, err)
	require.Equal(t, "1704067200000", gotDate)
}

func TestClient_ListProjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/project", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "data": []map[string]any{
			{"id": "p1", "name": "Atlas Corp", "status": "active", "paymentCycle": "MONTHLY"},
		}})
	}))
	t.Cleanup(server.Close)

	client := apiclient.New(server.URL)
	projects, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "Atlas Corp", projects[0].Name)
	require.Equal(t, project.StatusActive, projects[0].Status)
}

func TestClient_CreateProjectSendsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var req project.CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Atlas Corp", req.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "data": map[string]any{
			"id": "p1", "name": req.Name, "status": "active", "paymentCycle": "MONTHLY",
		}})
	}))
	t.Cleanup(server.Close)

	client := apiclient.New(server.URL)
	created, err := client.CreateProject(context.Background(), project.CreateRequest{Name: "Atlas Corp"})
	require.NoError(t, err)
	require.Equal(t, "p1", created.ID)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "invalid project input"})
	}))
	t.Cleanup(server.Close)

	client := apiclient.New(server.URL)
	_, err := client.CreateProject(context.Background(), project.CreateRequest{})
	require.ErrorIs(t, err, api.ErrRequestFailed)
	require.Contains(t, err.Error(), "invalid project input")
}

func TestClient_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := apiclient.New(server.URL)
	_, err := client.ListUsers(context.Background())
	require.ErrorIs(t, err, api.ErrRequestFailed)
}
