// Copyright (c) 2024 Neomantra Corp

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcp_server "github.com/mark3labs/mcp-go/server"
)

///////////////////////////////////////////////////////////////////////////////

// RegisterTools registers the three read-only logical-inductor MCP tools.
func (s *Server) RegisterTools(mcpServer *mcp_server.MCPServer) {
	// evaluate_formula
	mcpServer.AddTool(
		mcp.NewTool("evaluate_formula",
			mcp.WithDescription("Evaluates a trading formula (e.g. 'sum(price(a, 1), 1/2)') against a belief-state history and returns its exact rational value plus a float approximation."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("formula",
				mcp.Required(),
				mcp.Description("Formula text, e.g. 'product(2, price(a & b, 1))'"),
			),
			mcp.WithString("history",
				mcp.Description("JSON array of belief states, oldest first. Each state is an object mapping sentence text to its credence as a rational string, e.g. [{\"a\": \"1/3\"}, {\"a\": \"1/2\", \"b\": \"3/4\"}]. Omit for an empty history."),
			),
		),
		s.evaluateFormulaHandler,
	)
	// find_credences
	mcpServer.AddTool(
		mcp.NewTool("find_credences",
			mcp.WithDescription("Searches for a belief state under which no sentence in the given trading policy is exploitable past the given tolerance, and returns it. This is the core continuity search used by the inductor's update step."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("policy",
				mcp.Required(),
				mcp.Description("JSON object mapping sentence text to the formula trading on it, e.g. {\"a\": \"1/2\", \"a & b\": \"price(a, 1)\"}"),
			),
			mcp.WithString("history",
				mcp.Description("JSON array of prior belief states, oldest first, same shape as evaluate_formula's history parameter. Omit for an empty history."),
			),
			mcp.WithString("tolerance",
				mcp.Required(),
				mcp.Description("Exploitation tolerance as a rational string, e.g. '1/16'"),
			),
		),
		s.findCredencesHandler,
	)
	// worlds_consistent_with
	mcpServer.AddTool(
		mcp.NewTool("worlds_consistent_with",
			mcp.WithDescription("Enumerates every truth assignment over a domain of sentences that is consistent with a list of observed sentences."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("observations",
				mcp.Required(),
				mcp.Description("JSON array of sentence text known to be true, e.g. [\"a\", \"b -> c\"]"),
			),
			mcp.WithString("domain",
				mcp.Required(),
				mcp.Description("JSON array of sentence text whose truth value should appear in each returned world, e.g. [\"a\", \"b\", \"c\"]"),
			),
		),
		s.worldsConsistentWithHandler,
	)
}
