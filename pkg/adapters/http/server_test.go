package http_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/quest/internal/metrics"
	questhttp "github.com/aretw0/quest/pkg/adapters/http"
	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/persistence/middleware"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/aretw0/quest/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cave() *domain.Adventure {
	adv := domain.NewAdventure("cueva", "La Cueva", "")
	adv.Nodes["start"] = domain.Dialogue{ID: "start", CharacterName: "Guía", Options: []domain.Option{
		{Text: "Entrar", NextNodeID: "hall"},
	}}
	adv.Nodes["hall"] = domain.Exploration{ID: "hall", Description: "Salón", Paths: []domain.Path{}}
	return adv
}

func newTestServer(t *testing.T, opts ...questhttp.Option) (*httptest.Server, *memory.Store) {
	t.Helper()
	store := memory.NewStore(cave())
	return serve(t, store, opts...), store
}

func serve(t *testing.T, store ports.AdventureStore, opts ...questhttp.Option) *httptest.Server {
	t.Helper()
	n := 0
	mgr := session.NewManager(store, session.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}))
	srv := httptest.NewServer(questhttp.NewHandler(mgr, opts...))
	t.Cleanup(srv.Close)
	return srv
}

func currentID(t *testing.T, state questhttp.PlayState) any {
	t.Helper()
	require.NotNil(t, state.Current)
	return (*state.Current)["id"]
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := do(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestServer_AdventureLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, srv, http.MethodPost, "/adventures", map[string]string{"title": "Nueva", "description": "Desc"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var rec struct {
		ID          string                    `json:"id"`
		StartNodeID string                    `json:"startNodeId"`
		Nodes       map[string]map[string]any `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, "gen-1", rec.ID)
	assert.Equal(t, "start", rec.StartNodeID)
	assert.Equal(t, "dialogue", rec.Nodes["start"]["type"])

	resp, body = do(t, srv, http.MethodGet, "/adventures", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []questhttp.Summary
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 2)

	resp, _ = do(t, srv, http.MethodPatch, "/adventures/gen-1", map[string]string{"title": "Renombrada"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodDelete, "/adventures/gen-1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/adventures/gen-1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_EditingCommands(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	resp, body := do(t, srv, http.MethodPost, "/adventures/cueva/nodes/hall/children", map[string]string{"label": "go north"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"id":"gen-1"}`, string(body))

	resp, body = do(t, srv, http.MethodPost, "/adventures/cueva/nodes/start/type", map[string]string{"type": "Combate"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var node map[string]any
	require.NoError(t, json.Unmarshal(body, &node))
	assert.Equal(t, "combat", node["type"])
	assert.Equal(t, "hall", node["nextNodeId"])

	resp, body = do(t, srv, http.MethodPost, "/adventures/cueva/nodes", map[string]string{"type": "loot"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"id":"gen-2"}`, string(body))

	resp, _ = do(t, srv, http.MethodPut, "/adventures/cueva/nodes/gen-2", map[string]any{
		"type": "loot", "lootTable": []string{"oro"}, "nextNodeId": "start",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	saved, err := store.Load(ctx, "cueva")
	require.NoError(t, err)
	assert.Equal(t, domain.Loot{ID: "gen-2", LootTable: []string{"oro"}, NextNodeID: "start"}, saved.Nodes["gen-2"])
	hall := saved.Nodes["hall"].(domain.Exploration)
	assert.Equal(t, []domain.Path{{Description: "go north", NextNodeID: "gen-1"}}, hall.Paths)

	resp, body = do(t, srv, http.MethodGet, "/adventures/cueva/nodes/start/parents", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var parents []map[string]any
	require.NoError(t, json.Unmarshal(body, &parents))
	require.Len(t, parents, 1)
	assert.Equal(t, "gen-2", parents[0]["id"])

	resp, _ = do(t, srv, http.MethodDelete, "/adventures/cueva/nodes/gen-2", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestServer_ErrorMapping(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"missing adventure", http.MethodGet, "/adventures/none", nil, http.StatusNotFound},
		{"missing node", http.MethodGet, "/adventures/cueva/nodes/none", nil, http.StatusNotFound},
		{"delete start", http.MethodDelete, "/adventures/cueva/nodes/start", nil, http.StatusConflict},
		{"unknown kind", http.MethodPost, "/adventures/cueva/nodes", map[string]string{"type": "boss"}, http.StatusBadRequest},
		{"bad node record", http.MethodPut, "/adventures/cueva/nodes/x", map[string]string{"type": "nope"}, http.StatusBadRequest},
		{"empty navigate", http.MethodPost, "/adventures/cueva/navigate", map[string]string{}, http.StatusBadRequest},
		{"bad choice", http.MethodPost, "/adventures/cueva/navigate", map[string]int{"choice": 7}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, srv, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode, string(body))
			assert.Contains(t, string(body), `"error"`)
		})
	}
}

func TestServer_Playback(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, srv, http.MethodGet, "/adventures/cueva/play", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var state questhttp.PlayState
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, "start", currentID(t, state))
	assert.Equal(t, []questhttp.Choice{{Label: "Entrar", Target: "hall"}}, state.Choices)

	resp, body = do(t, srv, http.MethodPost, "/adventures/cueva/navigate", map[string]int{"choice": 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, "hall", currentID(t, state))

	resp, body = do(t, srv, http.MethodPost, "/adventures/cueva/navigate", map[string]string{"nodeId": "void"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state = questhttp.PlayState{}
	require.NoError(t, json.Unmarshal(body, &state))
	assert.True(t, state.Ended)
	assert.Nil(t, state.Current)

	resp, _ = do(t, srv, http.MethodPost, "/adventures/cueva/navigate", map[string]string{"nodeId": "start"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = do(t, srv, http.MethodPost, "/adventures/cueva/navigate", map[string]bool{"restart": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &state))
	assert.False(t, state.Ended)
	assert.Equal(t, "start", currentID(t, state))
}

func TestServer_LayoutAndDiagnostics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, srv, http.MethodGet, "/adventures/cueva/layout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var placements map[string]struct {
		Level int    `json:"level"`
		Type  string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(body, &placements))
	assert.Equal(t, 0, placements["start"].Level)
	assert.Equal(t, 1, placements["hall"].Level)
	assert.Equal(t, "Exploración", placements["hall"].Type)

	resp, body = do(t, srv, http.MethodGet, "/adventures/cueva/diagnostics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"missingStart":false`)
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.Edits.WithLabelValues("add_child").Inc()
	srv, _ := newTestServer(t, questhttp.WithGatherer(reg))

	resp, body := do(t, srv, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "quest_edits_total")
}

func TestServer_Events(t *testing.T) {
	srv, _ := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events?adventure=cueva", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string, 16)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	waitFor := func(substr string) {
		for {
			select {
			case line, ok := <-lines:
				if !ok {
					t.Fatalf("stream closed before %q", substr)
				}
				if strings.Contains(line, substr) {
					return
				}
			case <-ctx.Done():
				t.Fatalf("timed out waiting for %q", substr)
			}
		}
	}
	waitFor("connected")

	r2, _ := do(t, srv, http.MethodPost, "/adventures/cueva/nodes", map[string]string{"type": "item"})
	require.Equal(t, http.StatusCreated, r2.StatusCode)

	waitFor(`"event":"changed"`)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, questhttp.StatusFor(fmt.Errorf("x: %w", domain.ErrNodeNotFound)))
	assert.Equal(t, http.StatusConflict, questhttp.StatusFor(session.ErrNotEditing))
	assert.Equal(t, http.StatusBadRequest, questhttp.StatusFor(domain.ErrUnknownKind))
	assert.Equal(t, http.StatusForbidden, questhttp.StatusFor(fmt.Errorf("save: %w", middleware.ErrReadOnly)))
	assert.Equal(t, http.StatusInternalServerError, questhttp.StatusFor(errors.New("boom")))
}

func TestServer_OpenAPI(t *testing.T) {
	swagger, err := questhttp.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))
	assert.Equal(t, "Quest API", swagger.Info.Title)
	assert.Len(t, swagger.Paths.Map(), 14)

	srv, _ := newTestServer(t)
	resp, body := do(t, srv, http.MethodGet, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"operationId":"navigate"`)
}

// flakyStore rejects every Save while failing is set.
type flakyStore struct {
	*memory.Store
	failing atomic.Bool
}

func (f *flakyStore) Save(ctx context.Context, adv *domain.Adventure) error {
	if f.failing.Load() {
		return errors.New("disk full")
	}
	return f.Store.Save(ctx, adv)
}

func TestServer_SaveRetry(t *testing.T) {
	store := &flakyStore{Store: memory.NewStore(cave())}
	srv := serve(t, store)

	// Open the session before the backend starts failing.
	resp, _ := do(t, srv, http.MethodGet, "/adventures/cueva", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	store.failing.Store(true)
	resp, _ = do(t, srv, http.MethodPost, "/adventures/cueva/nodes", map[string]string{"type": "item"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/adventures/cueva/nodes/gen-1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "unsaved node is still served")

	store.failing.Store(false)
	resp, _ = do(t, srv, http.MethodPost, "/adventures/cueva/save", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	saved, err := store.Store.Load(context.Background(), "cueva")
	require.NoError(t, err)
	assert.Contains(t, saved.Nodes, "gen-1")
}

func TestServer_ReadOnly(t *testing.T) {
	store := middleware.Chain(memory.NewStore(cave()), middleware.NewReadOnly())
	srv := serve(t, store)

	resp, _ := do(t, srv, http.MethodGet, "/adventures/cueva/play", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := do(t, srv, http.MethodPost, "/adventures/cueva/nodes", map[string]string{"type": "item"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "read-only")
}
