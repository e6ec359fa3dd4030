package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/logger"
)

// computeResponse is the JSON body returned by compute-delay.
type computeResponse struct {
	Event        string    `json:"event"`
	Total        int       `json:"total"`
	Colombians   int       `json:"colombians"`
	Spicy        bool      `json:"spicy"`
	DelayMinutes int       `json:"delay_minutes"`
	RequestedAt  time.Time `json:"requested_at"`
	ArrivalTime  time.Time `json:"arrival_time"`
	Breakdown    string    `json:"breakdown"`
	Discrepancy  bool      `json:"discrepancy"`
}

type eventInfo struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Emoji    string `json:"emoji"`
	Informal bool   `json:"informal"`
}

// handleComputeDelay runs the calculator. Participant counts are clamped, not rejected.
func (s *Server) handleComputeDelay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	event, err := request.RequireString("event")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cat, err := delay.ParseCategory(event)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	requested, err := delay.ParseRequestedTime(request.GetString("time", ""), s.now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	calc, ok := s.family.Calculator()
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%s calculator is not available yet", s.family.Label())), nil
	}

	in := delay.NewInput(requested)
	in.SetCategory(cat)
	in.SetTotalParticipants(request.GetInt("total", delay.MinParticipants))
	in.SetColombianParticipants(request.GetInt("colombians", 0))
	in.SetSpicy(request.GetBool("spicy", false))

	res := delay.Compute(calc, in)
	if s.metrics != nil {
		s.metrics.RecordCalculation(s.family, in, res)
	}
	logger.Debug("compute-delay %s total=%d colombians=%d spicy=%t -> %d min",
		cat, in.TotalParticipants(), in.ColombianParticipants(), in.Spicy(), res.DelayMinutes)

	out, err := json.MarshalIndent(computeResponse{
		Event:        cat.String(),
		Total:        in.TotalParticipants(),
		Colombians:   in.ColombianParticipants(),
		Spicy:        in.Spicy(),
		DelayMinutes: res.DelayMinutes,
		RequestedAt:  res.RequestedAt,
		ArrivalTime:  res.ArrivalTime,
		Breakdown:    res.Breakdown.Text,
		Discrepancy:  res.Breakdown.Discrepancy(),
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// handleListEvents returns every event category.
func (s *Server) handleListEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cats := delay.Categories()
	events := make([]eventInfo, 0, len(cats))
	for _, c := range cats {
		events = append(events, eventInfo{
			Name:     c.String(),
			Label:    c.Label(),
			Emoji:    c.Emoji(),
			Informal: c.IsInformal(),
		})
	}

	out, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal events: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}
