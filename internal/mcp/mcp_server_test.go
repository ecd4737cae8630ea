package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/scoutbase/scout/internal/contract"
	mcp_internal "github.com/scoutbase/scout/internal/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		ResultLimit: contract.DefaultResultLimit,
	}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("top_players unknown attribute", func(t *testing.T) {
		tool := s.GetTool("top_players")
		require.NotNil(t, tool, "Tool top_players should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "top_players",
				Arguments: map[string]any{
					"attribute": "charisma", // Unknown
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, `attribute "charisma" not found`)
	})

	t.Run("top_players missing attribute", func(t *testing.T) {
		tool := s.GetTool("top_players")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "top_players",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "top query failed")
	})

	t.Run("all player tools are registered", func(t *testing.T) {
		for _, name := range []string{"top_players", "search_players", "get_player_profile", "compare_players"} {
			assert.NotNil(t, s.GetTool(name), "Tool %s should exist", name)
		}
	})
}
