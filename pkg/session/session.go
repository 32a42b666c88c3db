package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/internal/metrics"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/editor"
	"github.com/aretw0/quest/pkg/graph"
	"github.com/aretw0/quest/pkg/layout"
	"github.com/aretw0/quest/pkg/play"
	"github.com/aretw0/quest/pkg/ports"
)

// ErrNotEditing is returned by focus-relative commands when no node is being edited.
var ErrNotEditing = errors.New("no node is being edited")

// Session is one open adventure: its graph, the playback cursor and the edit focus.
// Every mutating command persists the new snapshot through the store. When the save
// fails the in-memory change is kept, the session is marked dirty and the error is
// returned; Save retries.
//
// A Session is not safe for concurrent use; Manager.WithLock serializes access.
type Session struct {
	store   ports.AdventureStore
	graph   *graph.Store
	editor  *editor.Editor
	cursor  *play.Cursor
	editing string
	dirty   bool

	hooks      domain.LifecycleHooks
	metrics    *metrics.Metrics
	logger     *slog.Logger
	layoutOpts []layout.Option
}

// Settings are the knobs shared by every session a Manager opens.
type Settings struct {
	Filler      editor.FillerPolicy
	IDGenerator graph.IDGenerator
	Hooks       domain.LifecycleHooks
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
	Layout      []layout.Option
}

// New opens a session on adv. The cursor starts at the adventure's start node.
func New(ctx context.Context, store ports.AdventureStore, adv *domain.Adventure, cfg Settings) *Session {
	s := &Session{
		store:      store,
		hooks:      cfg.Hooks,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
		layoutOpts: cfg.Layout,
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	var graphOpts []graph.Option
	if cfg.IDGenerator != nil {
		graphOpts = append(graphOpts, graph.WithIDGenerator(cfg.IDGenerator))
	}
	s.graph = graph.NewStore(adv, graphOpts...)
	s.editor = editor.New(s.graph, editor.WithFillerPolicy(cfg.Filler))
	s.cursor = play.NewCursor(play.WithLifecycleHooks(s.playHooks()))
	s.cursor.Reset(ctx, s.graph.Adventure())
	return s
}

func (s *Session) playHooks() domain.LifecycleHooks {
	hooks := s.hooks
	hooks.OnNodeEnter = func(ctx context.Context, e *domain.NodeEvent) {
		if s.metrics != nil {
			s.metrics.NodeVisits.WithLabelValues(string(e.NodeKind)).Inc()
		}
		if s.hooks.OnNodeEnter != nil {
			s.hooks.OnNodeEnter(ctx, e)
		}
	}
	return hooks
}

// ID returns the adventure ID.
func (s *Session) ID() string {
	return s.graph.Adventure().ID
}

// Adventure returns the current snapshot. Callers must not mutate it.
func (s *Session) Adventure() *domain.Adventure {
	return s.graph.Adventure()
}

// CurrentNode returns the playback node, or false once the adventure ended.
func (s *Session) CurrentNode() (domain.Node, bool) {
	return s.cursor.Current(s.graph.Adventure())
}

// Ended reports whether playback reached the end.
func (s *Session) Ended() bool {
	return s.cursor.Ended()
}

// History returns the node IDs visited since the last restart.
func (s *Session) History() []string {
	return s.cursor.History()
}

// Choices lists the outgoing choices of the current node.
func (s *Session) Choices() []play.Choice {
	n, ok := s.CurrentNode()
	if !ok {
		return nil
	}
	return play.Choices(n)
}

// EditingNode returns the node under edit, if any.
func (s *Session) EditingNode() (domain.Node, bool) {
	return s.graph.Get(s.editing)
}

// Nodes lists every node, start first.
func (s *Session) Nodes() []domain.Node {
	return s.graph.Nodes()
}

// Parents returns the nodes with an edge to id.
func (s *Session) Parents(id string) []domain.Node {
	return s.editor.FindParents(id)
}

// Layout places every node for a visual editor.
func (s *Session) Layout() layout.Map {
	return layout.Compute(s.graph.Adventure(), s.layoutOpts...)
}

// Diagnose reports structural warnings.
func (s *Session) Diagnose() editor.Report {
	return s.editor.Diagnose()
}

// Navigate moves playback to id. A missing id ends the adventure.
func (s *Session) Navigate(ctx context.Context, id string) (domain.Node, error) {
	return s.cursor.GoTo(ctx, s.graph.Adventure(), id)
}

// Choose follows the index-th choice of the current node.
func (s *Session) Choose(ctx context.Context, index int) (domain.Node, error) {
	return s.cursor.Choose(ctx, s.graph.Adventure(), index)
}

// Restart returns playback to the start node.
func (s *Session) Restart(ctx context.Context) (domain.Node, bool) {
	return s.cursor.Reset(ctx, s.graph.Adventure())
}

// EnterEdit focuses the editor on id.
func (s *Session) EnterEdit(id string) error {
	if !s.graph.Has(id) {
		return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	s.editing = id
	return nil
}

// ExitEdit clears the edit focus.
func (s *Session) ExitEdit() {
	s.editing = ""
}

// UpdateNode overwrites a node and persists.
func (s *Session) UpdateNode(ctx context.Context, n domain.Node) error {
	if err := s.editor.UpdateNode(n); err != nil {
		return s.edited(ctx, "update_node", "", err)
	}
	return s.edited(ctx, "update_node", n.NodeID(), s.persist(ctx))
}

// ChangeNodeType converts the node under edit to kind and persists.
func (s *Session) ChangeNodeType(ctx context.Context, kind domain.Kind) (domain.Node, error) {
	if s.editing == "" {
		return nil, ErrNotEditing
	}
	n, err := s.editor.ChangeNodeType(s.editing, kind)
	if err != nil {
		return nil, s.edited(ctx, "change_node_type", s.editing, err)
	}
	return n, s.edited(ctx, "change_node_type", s.editing, s.persist(ctx))
}

// AddChildAndLink creates a Dialogue child of the node under edit, links it, and persists.
// The edit focus stays on the parent.
func (s *Session) AddChildAndLink(ctx context.Context, label string) (string, error) {
	if s.editing == "" {
		return "", ErrNotEditing
	}
	id, err := s.editor.AddChildAndLink(s.editing, label)
	if err != nil {
		return "", s.edited(ctx, "add_child", s.editing, err)
	}
	return id, s.edited(ctx, "add_child", id, s.persist(ctx))
}

// CreateDetached adds an unlinked node of kind and persists.
func (s *Session) CreateDetached(ctx context.Context, kind domain.Kind) (string, error) {
	id, err := s.editor.CreateDetached(kind)
	if err != nil {
		return "", s.edited(ctx, "create_detached", "", err)
	}
	return id, s.edited(ctx, "create_detached", id, s.persist(ctx))
}

// DeleteNode removes id and persists. Edges pointing at it are left dangling.
// Deleting the node under edit clears the focus.
func (s *Session) DeleteNode(ctx context.Context, id string) error {
	if err := s.editor.DeleteNode(id); err != nil {
		return s.edited(ctx, "delete_node", id, err)
	}
	if s.editing == id {
		s.editing = ""
	}
	return s.edited(ctx, "delete_node", id, s.persist(ctx))
}

// UpdateMetadata sets the adventure title and description and persists.
func (s *Session) UpdateMetadata(ctx context.Context, title, description string) error {
	s.graph.SetMetadata(title, description)
	return s.edited(ctx, "update_metadata", "", s.persist(ctx))
}

// Dirty reports whether the in-memory snapshot holds changes the store has not accepted.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Save persists the current snapshot. It clears the dirty flag on success.
func (s *Session) Save(ctx context.Context) error {
	return s.edited(ctx, "save", "", s.persist(ctx))
}

// replace swaps in a fresher snapshot loaded from the store, keeping cursor and focus.
func (s *Session) replace(adv *domain.Adventure) {
	s.graph.Replace(adv)
	if !s.graph.Has(s.editing) {
		s.editing = ""
	}
}

func (s *Session) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.graph.Adventure()); err != nil {
		s.dirty = true
		return fmt.Errorf("failed to persist adventure %s: %w", s.ID(), err)
	}
	s.dirty = false
	return nil
}

func (s *Session) edited(ctx context.Context, command, nodeID string, err error) error {
	if err == nil && s.metrics != nil {
		s.metrics.Edits.WithLabelValues(command).Inc()
	}
	if err != nil {
		s.logger.Debug("edit rejected or not persisted", "command", command, "node_id", nodeID, "err", err)
	}
	if s.hooks.OnEdit != nil {
		s.hooks.OnEdit(ctx, &domain.EditEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventEdit, AdventureID: s.ID()},
			Command:   command,
			NodeID:    nodeID,
			Err:       err,
		})
	}
	return err
}
