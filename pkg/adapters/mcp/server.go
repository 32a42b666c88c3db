// Package mcp exposes adventure playback and editing as Model Context Protocol tools,
// so agents can drive a session.Manager the way the HTTP API does.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/pkg/codec"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/editor"
	"github.com/aretw0/quest/pkg/layout"
	"github.com/aretw0/quest/pkg/play"
	"github.com/aretw0/quest/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AdventuresURI is the resource listing every adventure.
const AdventuresURI = "quest://adventures"

const shutdownTimeout = 5 * time.Second

// Summary is one entry of the adventure list.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Nodes       int    `json:"nodes"`
}

// AdventureList is the result of list_adventures.
type AdventureList struct {
	Adventures []Summary `json:"adventures" jsonschema_description:"Every readable adventure"`
}

// PlayView aligns with the HTTP PlayState and is returned by render_state and navigate.
type PlayView struct {
	Current map[string]any `json:"current,omitempty" jsonschema_description:"Tagged record of the current node, absent once the adventure ended"`
	Ended   bool           `json:"ended" jsonschema_description:"Playback reached the end"`
	Choices []play.Choice  `json:"choices" jsonschema_description:"Outgoing choices of the current node, in order"`
	History []string       `json:"history" jsonschema_description:"Node IDs visited since the last restart"`
}

// NodeList is the result of list_nodes.
type NodeList struct {
	Nodes []map[string]any `json:"nodes" jsonschema_description:"Tagged node records, start first"`
}

// LayoutView is the result of get_layout.
type LayoutView struct {
	Placements layout.Map `json:"placements" jsonschema_description:"Layered placement of every node keyed by ID"`
}

// NodeRef is the result of commands that create a node.
type NodeRef struct {
	ID string `json:"id"`
}

type adventureArgs struct {
	AdventureID string `json:"adventure_id"`
}

type navigateArgs struct {
	AdventureID string  `json:"adventure_id"`
	NodeID      *string `json:"node_id,omitempty"`
	Choice      *int    `json:"choice,omitempty"`
	Restart     bool    `json:"restart,omitempty"`
}

type nodeArgs struct {
	AdventureID string `json:"adventure_id"`
	NodeID      string `json:"node_id"`
	Label       string `json:"label,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Server wraps a session.Manager and exposes it as an MCP server.
type Server struct {
	manager   *session.Manager
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used for tool failures and transport events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(mgr *session.Manager, version string, opts ...Option) *Server {
	s := &Server{
		manager: mgr,
		logger:  logging.NewNop(),
		mcpServer: server.NewMCPServer("quest-mcp", version,
			server.WithToolCapabilities(false),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio serves on Stdin/Stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves over Server-Sent Events on addr until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "addr", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func adventureID() mcp.ToolOption {
	return mcp.WithString("adventure_id", mcp.Required(), mcp.Description("ID of the adventure"))
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_adventures",
		mcp.WithDescription("List every adventure with its title and node count."),
		mcp.WithOutputSchema[AdventureList](),
	), s.handleListAdventures)

	s.mcpServer.AddTool(mcp.NewTool("render_state",
		mcp.WithDescription("Show the current playback node of an adventure and the choices it offers."),
		adventureID(),
		mcp.WithOutputSchema[PlayView](),
	), s.handleRenderState)

	s.mcpServer.AddTool(mcp.NewTool("navigate",
		mcp.WithDescription("Move playback: follow a choice by index, jump to a node ID, or restart. A missing node ID ends the adventure."),
		adventureID(),
		mcp.WithNumber("choice", mcp.Description("Zero-based index of the choice to follow")),
		mcp.WithString("node_id", mcp.Description("Node to jump to")),
		mcp.WithBoolean("restart", mcp.Description("Return to the start node")),
		mcp.WithOutputSchema[PlayView](),
	), s.handleNavigate)

	s.mcpServer.AddTool(mcp.NewTool("list_nodes",
		mcp.WithDescription("List every node of an adventure as tagged records, start first."),
		adventureID(),
		mcp.WithOutputSchema[NodeList](),
	), s.handleListNodes)

	s.mcpServer.AddTool(mcp.NewTool("get_layout",
		mcp.WithDescription("Layered layout of the adventure graph for visualization."),
		adventureID(),
		mcp.WithOutputSchema[LayoutView](),
	), s.handleLayout)

	s.mcpServer.AddTool(mcp.NewTool("diagnose",
		mcp.WithDescription("Report dangling and empty edges, orphans and unreachable nodes."),
		adventureID(),
		mcp.WithOutputSchema[editor.Report](),
	), s.handleDiagnose)

	s.mcpServer.AddTool(mcp.NewTool("add_child",
		mcp.WithDescription("Create a dialogue node and link it from node_id with the given label. Skill nodes are not linked."),
		adventureID(),
		mcp.WithString("node_id", mcp.Required(), mcp.Description("Parent node")),
		mcp.WithString("label", mcp.Description("Option or path text for the new edge")),
		mcp.WithOutputSchema[NodeRef](),
	), s.handleAddChild)

	s.mcpServer.AddTool(mcp.NewTool("change_type",
		mcp.WithDescription("Convert node_id to another kind, keeping its ID and carrying its primary edge forward."),
		adventureID(),
		mcp.WithString("node_id", mcp.Required(), mcp.Description("Node to convert")),
		mcp.WithString("type", mcp.Required(), mcp.Description("dialogue, combat, exploration, skill, item or loot")),
	), s.handleChangeType)

	s.mcpServer.AddTool(mcp.NewTool("delete_node",
		mcp.WithDescription("Delete a node. Edges pointing at it are left dangling. The start node cannot be deleted."),
		adventureID(),
		mcp.WithString("node_id", mcp.Required(), mcp.Description("Node to delete")),
	), s.handleDeleteNode)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(AdventuresURI, "Adventures",
		mcp.WithResourceDescription("Every adventure with its title and node count"),
		mcp.WithMIMEType("application/json"),
	), s.readAdventures)
}

func (s *Server) handleListAdventures(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := s.summaries(ctx)
	if err != nil {
		return s.failed("list adventures failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(list), nil
}

func (s *Server) handleRenderState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args adventureArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	var view PlayView
	err := s.manager.Do(ctx, args.AdventureID, func(ctx context.Context, sess *session.Session) error {
		var err error
		view, err = playView(sess)
		return err
	})
	if err != nil {
		return s.failed("render failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(view), nil
}

func (s *Server) handleNavigate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args navigateArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	var view PlayView
	err := s.manager.Do(ctx, args.AdventureID, func(ctx context.Context, sess *session.Session) error {
		var err error
		switch {
		case args.Restart:
			sess.Restart(ctx)
		case args.Choice != nil:
			_, err = sess.Choose(ctx, *args.Choice)
		case args.NodeID != nil:
			_, err = sess.Navigate(ctx, *args.NodeID)
		default:
			return errors.New("one of choice, node_id or restart is required")
		}
		if err != nil {
			return err
		}
		view, err = playView(sess)
		return err
	})
	if err != nil {
		return s.failed("navigate failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(view), nil
}

func (s *Server) handleListNodes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args adventureArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	var list NodeList
	err := s.manager.Do(ctx, args.AdventureID, func(ctx context.Context, sess *session.Session) error {
		var err error
		list.Nodes, err = marshalNodes(sess.Nodes())
		return err
	})
	if err != nil {
		return s.failed("list nodes failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(list), nil
}

func (s *Server) handleLayout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args adventureArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	var view LayoutView
	err := s.manager.Do(ctx, args.AdventureID, func(ctx context.Context, sess *session.Session) error {
		view.Placements = sess.Layout()
		return nil
	})
	if err != nil {
		return s.failed("layout failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(view), nil
}

func (s *Server) handleDiagnose(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args adventureArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	var report editor.Report
	err := s.manager.Do(ctx, args.AdventureID, func(ctx context.Context, sess *session.Session) error {
		report = sess.Diagnose()
		return nil
	})
	if err != nil {
		return s.failed("diagnose failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(report), nil
}

func (s *Server) handleAddChild(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args nodeArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	var ref NodeRef
	err := s.manager.Do(ctx, args.AdventureID, func(ctx context.Context, sess *session.Session) error {
		if err := sess.EnterEdit(args.NodeID); err != nil {
			return err
		}
		var err error
		ref.ID, err = sess.AddChildAndLink(ctx, args.Label)
		return err
	})
	if err != nil {
		return s.failed("add child failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(ref), nil
}

func (s *Server) handleChangeType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args nodeArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	kind, err := domain.ParseKind(args.Type)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("invalid type", err), nil
	}
	var fields map[string]any
	err = s.manager.Do(ctx, args.AdventureID, func(ctx context.Context, sess *session.Session) error {
		if err := sess.EnterEdit(args.NodeID); err != nil {
			return err
		}
		n, err := sess.ChangeNodeType(ctx, kind)
		if err != nil {
			return err
		}
		fields, err = codec.MarshalNode(n)
		return err
	})
	if err != nil {
		return s.failed("change type failed", err), nil
	}
	return mcp.NewToolResultStructuredOnly(fields), nil
}

func (s *Server) handleDeleteNode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args nodeArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid arguments", err), nil
	}
	err := s.manager.Do(ctx, args.AdventureID, func(ctx context.Context, sess *session.Session) error {
		return sess.DeleteNode(ctx, args.NodeID)
	})
	if err != nil {
		return s.failed("delete node failed", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted %s", args.NodeID)), nil
}

func (s *Server) readAdventures(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	list, err := s.summaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list adventures: %w", err)
	}
	data, err := json.Marshal(list.Adventures)
	if err != nil {
		return nil, fmt.Errorf("failed to encode adventures: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      AdventuresURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) summaries(ctx context.Context) (AdventureList, error) {
	all, err := s.manager.List(ctx)
	if err != nil {
		return AdventureList{}, err
	}
	list := AdventureList{Adventures: make([]Summary, 0, len(all))}
	for _, adv := range all {
		list.Adventures = append(list.Adventures, Summary{
			ID:          adv.ID,
			Title:       adv.Title,
			Description: adv.Description,
			Nodes:       len(adv.Nodes),
		})
	}
	return list, nil
}

func (s *Server) failed(text string, err error) *mcp.CallToolResult {
	s.logger.Warn("MCP tool failed", "reason", text, "err", err)
	return mcp.NewToolResultErrorFromErr(text, err)
}

func playView(sess *session.Session) (PlayView, error) {
	view := PlayView{
		Ended:   sess.Ended(),
		Choices: sess.Choices(),
		History: sess.History(),
	}
	if view.Choices == nil {
		view.Choices = []play.Choice{}
	}
	if n, ok := sess.CurrentNode(); ok {
		fields, err := codec.MarshalNode(n)
		if err != nil {
			return PlayView{}, err
		}
		view.Current = fields
	}
	return view, nil
}

func marshalNodes(nodes []domain.Node) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		fields, err := codec.MarshalNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, fields)
	}
	return out, nil
}
