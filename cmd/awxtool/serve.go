package main

import (
	"github.com/spf13/cobra"

	"github.com/tuanngd/awxtool/internal/mcpserver"
)

var (
	serveHTTP       bool
	serveHost       string
	servePort       int
	serveAuthTokens []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tools over the Model Context Protocol",
	Long:  "Serve every tool over MCP. By default the server speaks stdio for direct agent embedding; with --http it listens on host:port using the Streamable HTTP transport.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if serveHTTP {
			return mcpserver.RunHTTP(serveHost, servePort, a.reg, serveAuthTokens)
		}
		return mcpserver.RunStdio(ctx, a.reg)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveHTTP, "http", false, "serve over HTTP instead of stdio")
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "HTTP listen host")
	serveCmd.Flags().IntVar(&servePort, "port", 8399, "HTTP listen port")
	serveCmd.Flags().StringSliceVar(&serveAuthTokens, "auth-token", nil, "Bearer token required on the HTTP mounts (repeatable; empty disables auth)")
}
