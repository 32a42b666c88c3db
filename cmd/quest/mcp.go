package main

import (
	"fmt"

	"github.com/aretw0/quest/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes playback and editing of the configured store as MCP tools, so agents can
play and author adventures.

Supported transports:
- stdio (default): Standard Input/Output, for local process integration.
- sse: Server-Sent Events over HTTP, for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		transport, _ := cmd.Flags().GetString("transport")
		srv := mcp.NewServer(a.Manager, Version, mcp.WithLogger(a.Logger()))

		switch transport {
		case "stdio":
			a.Logger().Info("Starting Quest MCP server (stdio)", "store", a.cfg.Store)
			return srv.ServeStdio()
		case "sse":
			baseURL, _ := cmd.Flags().GetString("base-url")
			if baseURL == "" {
				baseURL = "http://localhost" + a.cfg.Addr
			}
			a.Logger().Info("Starting Quest MCP server (SSE)", "addr", a.cfg.Addr, "store", a.cfg.Store)
			return srv.ServeSSE(cmd.Context(), a.cfg.Addr, baseURL)
		default:
			return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol: stdio or sse")
	mcpCmd.Flags().String("addr", "", "Address to listen on for sse (env QUEST_ADDR)")
	mcpCmd.Flags().String("base-url", "", "Public base URL announced to sse clients")
}
