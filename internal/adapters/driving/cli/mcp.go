package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/coffeehunt-cli/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --http to serve over HTTP instead. The HTTP server also exposes
Prometheus metrics on /metrics.

Tools: predictive_search, search_products, cart_view, cart_add
Resources: coffeehunt://menu/header, coffeehunt://menu/footer

Examples:
  # Stdio mode (default, for Claude Desktop)
  coffeehunt mcp

  # HTTP mode (for MCP Inspector, remote access)
  coffeehunt mcp --http :8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "coffeehunt": {
        "command": "/path/to/coffeehunt",
        "args": ["mcp"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "HTTP listen address (empty = use stdio)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return notConfigured("search")
	}

	ports := &mcp.Ports{
		Search: searchService,
		Cart:   cartService,
		Layout: layoutService,
	}

	var opts []mcp.Option
	if metricsGatherer != nil {
		opts = append(opts, mcp.WithGatherer(metricsGatherer))
	}
	server, err := mcp.NewServer(ports, opts...)
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", mcpHTTPAddr)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}

	return server.Run(cmd.Context())
}
