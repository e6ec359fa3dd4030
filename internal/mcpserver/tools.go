package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers the compute-delay and list-events tools.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("compute-delay",
			mcp.WithDescription("Compute the Colombian arrival delay for an event"),
			mcp.WithString("event", mcp.Required(),
				mcp.Description("Event category, e.g. meal, shopping, wedding (see list-events)"),
			),
			mcp.WithNumber("total",
				mcp.Description("Total participants (1-20, default 1)"),
			),
			mcp.WithNumber("colombians",
				mcp.Description("Colombian participants (0-total, default 0)"),
			),
			mcp.WithBoolean("spicy",
				mcp.Description("Spicy Colombian women factor"),
			),
			mcp.WithString("time",
				mcp.Description("Requested time, RFC 3339 or time of day like 19:30 (default now)"),
			),
		),
		s.handleComputeDelay,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list-events",
			mcp.WithDescription("List the event categories with their labels and formality"),
		),
		s.handleListEvents,
	)
}
