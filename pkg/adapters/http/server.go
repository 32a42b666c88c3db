// Package http exposes the authoring and playback commands of a session.Manager over HTTP.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/pkg/codec"
	"github.com/aretw0/quest/pkg/domain"
	persistence "github.com/aretw0/quest/pkg/persistence/middleware"
	"github.com/aretw0/quest/pkg/play"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/aretw0/quest/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Server implements the generated ServerInterface over a session.Manager.
type Server struct {
	Manager *session.Manager
	Streams *StreamManager

	logger   *slog.Logger
	gatherer prometheus.Gatherer
	watcher  ports.Watchable
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithGatherer serves the given registry on /metrics instead of the default one.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithWatcher forwards backend change notifications to SSE subscribers.
func WithWatcher(w ports.Watchable) Option {
	return func(s *Server) {
		s.watcher = w
	}
}

// NewHandler creates the HTTP handler.
func NewHandler(mgr *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		Manager:  mgr,
		logger:   logging.NewNop(),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams = NewStreamManager(s.logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.logger.Error("Failed to load OpenAPI spec", "err", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Quest API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// ListAdventures handles GET /adventures.
func (s *Server) ListAdventures(w http.ResponseWriter, r *http.Request) {
	all, err := s.Manager.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]Summary, 0, len(all))
	for _, adv := range all {
		out = append(out, Summary{Id: adv.ID, Title: adv.Title, Description: adv.Description, Nodes: len(adv.Nodes)})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// CreateAdventure handles POST /adventures.
func (s *Server) CreateAdventure(w http.ResponseWriter, r *http.Request) {
	var body CreateAdventureJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.invalidBody(w, r, err)
		return
	}
	sess, err := s.Manager.Create(r.Context(), body.Title, deref(body.Description))
	if err != nil {
		s.writeError(w, err)
		return
	}
	rec, err := adventureRecord(sess.Adventure())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.Streams.Broadcast(sess.ID(), changeMessage(sess.ID(), "created"))
	s.writeJSON(w, http.StatusCreated, rec)
}

// GetAdventure handles GET /adventures/{id}.
func (s *Server) GetAdventure(w http.ResponseWriter, r *http.Request, id string) {
	s.view(w, r, id, func(sess *session.Session) (any, error) {
		return adventureRecord(sess.Adventure())
	})
}

// UpdateMetadata handles PATCH /adventures/{id}.
func (s *Server) UpdateMetadata(w http.ResponseWriter, r *http.Request, id string) {
	var body UpdateMetadataJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.invalidBody(w, r, err)
		return
	}
	s.mutate(w, r, id, http.StatusOK, func(ctx context.Context, sess *session.Session) (any, error) {
		if err := sess.UpdateMetadata(ctx, body.Title, deref(body.Description)); err != nil {
			return nil, err
		}
		return adventureRecord(sess.Adventure())
	})
}

// DeleteAdventure handles DELETE /adventures/{id}.
func (s *Server) DeleteAdventure(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.Manager.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.Streams.Broadcast(id, changeMessage(id, "deleted"))
	w.WriteHeader(http.StatusNoContent)
}

// SaveAdventure handles POST /adventures/{id}/save, retrying a save the store rejected.
func (s *Server) SaveAdventure(w http.ResponseWriter, r *http.Request, id string) {
	s.mutate(w, r, id, http.StatusOK, func(ctx context.Context, sess *session.Session) (any, error) {
		if err := sess.Save(ctx); err != nil {
			return nil, err
		}
		return adventureRecord(sess.Adventure())
	})
}

// GetLayout handles GET /adventures/{id}/layout.
func (s *Server) GetLayout(w http.ResponseWriter, r *http.Request, id string) {
	s.view(w, r, id, func(sess *session.Session) (any, error) {
		return sess.Layout(), nil
	})
}

// GetDiagnostics handles GET /adventures/{id}/diagnostics.
func (s *Server) GetDiagnostics(w http.ResponseWriter, r *http.Request, id string) {
	s.view(w, r, id, func(sess *session.Session) (any, error) {
		return sess.Diagnose(), nil
	})
}

// GetPlay handles GET /adventures/{id}/play.
func (s *Server) GetPlay(w http.ResponseWriter, r *http.Request, id string) {
	s.view(w, r, id, playState)
}

// Navigate handles POST /adventures/{id}/navigate.
func (s *Server) Navigate(w http.ResponseWriter, r *http.Request, id string) {
	var body NavigateJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.invalidBody(w, r, err)
		return
	}
	s.view(w, r, id, func(sess *session.Session) (any, error) {
		ctx := r.Context()
		var err error
		switch {
		case body.Restart != nil && *body.Restart:
			sess.Restart(ctx)
		case body.Choice != nil:
			_, err = sess.Choose(ctx, *body.Choice)
		case body.NodeId != nil:
			_, err = sess.Navigate(ctx, *body.NodeId)
		default:
			return nil, fmt.Errorf("%w: one of nodeId, choice or restart is required", domain.ErrDecode)
		}
		if err != nil {
			return nil, err
		}
		return playState(sess)
	})
}

// ListNodes handles GET /adventures/{id}/nodes.
func (s *Server) ListNodes(w http.ResponseWriter, r *http.Request, id string) {
	s.view(w, r, id, func(sess *session.Session) (any, error) {
		return marshalNodes(sess.Nodes())
	})
}

// GetNode handles GET /adventures/{id}/nodes/{nodeId}.
func (s *Server) GetNode(w http.ResponseWriter, r *http.Request, id string, nodeId string) {
	s.view(w, r, id, func(sess *session.Session) (any, error) {
		n, ok := sess.Adventure().Node(nodeId)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, nodeId)
		}
		return marshalNode(n)
	})
}

// UpdateNode handles PUT /adventures/{id}/nodes/{nodeId}. The body is a tagged node record.
func (s *Server) UpdateNode(w http.ResponseWriter, r *http.Request, id string, nodeId string) {
	var body UpdateNodeJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.invalidBody(w, r, err)
		return
	}
	n, err := codec.UnmarshalNode(nodeId, body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.mutate(w, r, id, http.StatusOK, func(ctx context.Context, sess *session.Session) (any, error) {
		if err := sess.UpdateNode(ctx, n); err != nil {
			return nil, err
		}
		return marshalNode(n)
	})
}

// DeleteNode handles DELETE /adventures/{id}/nodes/{nodeId}.
func (s *Server) DeleteNode(w http.ResponseWriter, r *http.Request, id string, nodeId string) {
	s.mutate(w, r, id, http.StatusNoContent, func(ctx context.Context, sess *session.Session) (any, error) {
		return nil, sess.DeleteNode(ctx, nodeId)
	})
}

// CreateDetached handles POST /adventures/{id}/nodes.
func (s *Server) CreateDetached(w http.ResponseWriter, r *http.Request, id string) {
	var body CreateDetachedJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.invalidBody(w, r, err)
		return
	}
	kind, err := domain.ParseKind(body.Type)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.mutate(w, r, id, http.StatusCreated, func(ctx context.Context, sess *session.Session) (any, error) {
		nodeID, err := sess.CreateDetached(ctx, kind)
		return CreatedNode{Id: nodeID}, err
	})
}

// ChangeNodeType handles POST /adventures/{id}/nodes/{nodeId}/type.
func (s *Server) ChangeNodeType(w http.ResponseWriter, r *http.Request, id string, nodeId string) {
	var body ChangeNodeTypeJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.invalidBody(w, r, err)
		return
	}
	kind, err := domain.ParseKind(body.Type)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.mutate(w, r, id, http.StatusOK, func(ctx context.Context, sess *session.Session) (any, error) {
		if err := sess.EnterEdit(nodeId); err != nil {
			return nil, err
		}
		n, err := sess.ChangeNodeType(ctx, kind)
		if err != nil {
			return nil, err
		}
		return marshalNode(n)
	})
}

// AddChild handles POST /adventures/{id}/nodes/{nodeId}/children.
func (s *Server) AddChild(w http.ResponseWriter, r *http.Request, id string, nodeId string) {
	var body AddChildJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.invalidBody(w, r, err)
		return
	}
	s.mutate(w, r, id, http.StatusCreated, func(ctx context.Context, sess *session.Session) (any, error) {
		if err := sess.EnterEdit(nodeId); err != nil {
			return nil, err
		}
		childID, err := sess.AddChildAndLink(ctx, body.Label)
		return CreatedNode{Id: childID}, err
	})
}

// GetParents handles GET /adventures/{id}/nodes/{nodeId}/parents.
func (s *Server) GetParents(w http.ResponseWriter, r *http.Request, id string, nodeId string) {
	s.view(w, r, id, func(sess *session.Session) (any, error) {
		return marshalNodes(sess.Parents(nodeId))
	})
}

// -- Helpers --

func (s *Server) view(w http.ResponseWriter, r *http.Request, id string, fn func(*session.Session) (any, error)) {
	err := s.Manager.Do(r.Context(), id, func(ctx context.Context, sess *session.Session) error {
		out, err := fn(sess)
		if err != nil {
			return err
		}
		s.writeJSON(w, http.StatusOK, out)
		return nil
	})
	if err != nil {
		s.writeError(w, err)
	}
}

// mutate runs fn under the adventure lock and notifies subscribers on success.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, id string, status int, fn func(context.Context, *session.Session) (any, error)) {
	err := s.Manager.Do(r.Context(), id, func(ctx context.Context, sess *session.Session) error {
		out, err := fn(ctx, sess)
		if err != nil {
			return err
		}
		s.Streams.Broadcast(id, changeMessage(id, "changed"))
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return nil
		}
		s.writeJSON(w, status, out)
		return nil
	})
	if err != nil {
		s.writeError(w, err)
	}
}

func (s *Server) invalidBody(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Warn("Invalid request body", "path", r.URL.Path, "err", err)
	s.writeError(w, fmt.Errorf("%w: %w", domain.ErrDecode, err))
}

// paramError reports a path or query parameter the generated wrapper could not bind.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Warn("Invalid request parameter", "path", r.URL.Path, "err", err)
	s.writeJSON(w, http.StatusBadRequest, Error{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAdventureNotFound), errors.Is(err, domain.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStartNodeProtected), errors.Is(err, play.ErrEnded),
		errors.Is(err, session.ErrNotEditing):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDecode), errors.Is(err, domain.ErrUnknownKind),
		errors.Is(err, play.ErrNoSuchChoice):
		return http.StatusBadRequest
	case errors.Is(err, persistence.ErrReadOnly):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, Error{Error: err.Error()})
}

func adventureRecord(adv *domain.Adventure) (AdventureRecord, error) {
	rec, err := codec.ToRecord(adv)
	if err != nil {
		return AdventureRecord{}, err
	}
	nodes := make(map[string]Node, len(rec.Nodes))
	for id, fields := range rec.Nodes {
		nodes[id] = Node(fields)
	}
	return AdventureRecord{
		Id:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		StartNodeId: rec.StartNodeID,
		Nodes:       nodes,
	}, nil
}

func playState(sess *session.Session) (any, error) {
	state := PlayState{
		Ended:   sess.Ended(),
		Choices: []Choice{},
		History: sess.History(),
	}
	for _, c := range sess.Choices() {
		state.Choices = append(state.Choices, Choice{Label: c.Label, Target: c.Target})
	}
	if state.History == nil {
		state.History = []string{}
	}
	if n, ok := sess.CurrentNode(); ok {
		current, err := marshalNode(n)
		if err != nil {
			return nil, err
		}
		state.Current = &current
	}
	return state, nil
}

func marshalNode(n domain.Node) (Node, error) {
	fields, err := codec.MarshalNode(n)
	if err != nil {
		return nil, err
	}
	return Node(fields), nil
}

func marshalNodes(nodes []domain.Node) ([]Node, error) {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		fields, err := marshalNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, fields)
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func changeMessage(id, event string) string {
	return fmt.Sprintf(`{"adventure":%q,"event":%q}`, id, event)
}
