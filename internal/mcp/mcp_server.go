// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/scoutbase/scout/internal/contract"
)

// NewMCPServer initializes and configures the Scout MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Scout Query Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: top_players ---
	s.AddTool(mcp.NewTool("top_players",
		mcp.WithDescription("Rank players by one attribute or derived rate metric, highest first."),
		mcp.WithString("attribute", mcp.Description("Canonical attribute name (e.g. passing, pace, CA) or rate metric (e.g. goals_per90, pass_accuracy)."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleTopPlayers)

	// --- 2. Tool: search_players ---
	s.AddTool(mcp.NewTool("search_players",
		mcp.WithDescription("Find players whose name contains a substring, case-insensitive."),
		mcp.WithString("query", mcp.Description("Partial player name to search for."), mcp.Required()),
	), h.handleSearchPlayers)

	// --- 3. Tool: get_player_profile ---
	s.AddTool(mcp.NewTool("get_player_profile",
		mcp.WithDescription("Get the full attribute and stats profile for one player, including derived per-90 rates and pass accuracy."),
		mcp.WithString("player", mcp.Description("Player id or exact name."), mcp.Required()),
	), h.handleGetPlayerProfile)

	// --- 4. Tool: compare_players ---
	s.AddTool(mcp.NewTool("compare_players",
		mcp.WithDescription("Compare two players attribute by attribute with derived metrics."),
		mcp.WithString("player_a", mcp.Description("First player id or exact name."), mcp.Required()),
		mcp.WithString("player_b", mcp.Description("Second player id or exact name."), mcp.Required()),
	), h.handleComparePlayers)

	return s
}

// StartMCPServer starts the Scout MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
