// Copyright (c) 2024 Neomantra Corp

package mcpserver

import (
	"context"
	"fmt"
	"math/big"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/segmentio/encoding/json"

	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/internal/trace"
	"github.com/NimbleMarkets/logind-go/lang"
	"github.com/NimbleMarkets/logind-go/market"
	"github.com/NimbleMarkets/logind-go/sentence"
	"github.com/NimbleMarkets/logind-go/worlds"
)

// historyUpdate is the wire shape of one belief state: a map from sentence
// text (lang grammar, e.g. "a & b") to its credence as a rational string
// ("3/4").
type historyUpdate map[string]string

func parseHistory(updates []historyUpdate) (*history.History, error) {
	h := history.New()
	for i, update := range updates {
		state := history.NewBeliefState()
		for sentenceText, ratText := range update {
			s, err := lang.ParseSentence(sentenceText)
			if err != nil {
				return nil, fmt.Errorf("update %d: sentence %q: %w", i, sentenceText, err)
			}
			r, ok := new(big.Rat).SetString(ratText)
			if !ok {
				return nil, fmt.Errorf("update %d: credence %q for %q is not a valid rational", i, ratText, sentenceText)
			}
			state.Set(s, r)
		}
		h = h.WithNextUpdate(state)
	}
	return h, nil
}

func beliefStateToJSON(state history.BeliefState) map[string]string {
	out := make(map[string]string, state.Len())
	for _, s := range state.Keys() {
		credence, _ := state.Get(s)
		out[s.String()] = credence.RatString()
	}
	return out
}

///////////////////////////////////////////////////////////////////////////////

func (s *Server) evaluateFormulaHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	formulaText, err := request.RequireString("formula")
	if err != nil {
		return mcp.NewToolResultError("formula must be set"), nil
	}

	f, err := lang.ParseFormula(formulaText)
	if err != nil {
		return mcp.NewToolResultErrorf("invalid formula: %s", err), nil
	}

	var updates []historyUpdate
	if historyText, err := request.RequireString("history"); err == nil && historyText != "" {
		if err := json.Unmarshal([]byte(historyText), &updates); err != nil {
			return mcp.NewToolResultErrorf("invalid history JSON: %s", err), nil
		}
	}
	h, err := parseHistory(updates)
	if err != nil {
		return mcp.NewToolResultErrorf("invalid history: %s", err), nil
	}

	value, err := f.Evaluate(h)
	if err != nil {
		return mcp.NewToolResultErrorf("evaluation failed: %s", err), nil
	}

	approx, _ := value.Float64()
	jbytes, err := json.Marshal(map[string]any{
		"value":       value.RatString(),
		"approximate": approx,
		"bound":       f.Bound().RatString(),
	})
	if err != nil {
		return mcp.NewToolResultErrorf("failed to marshal result: %s", err), nil
	}

	s.Logger.Info("evaluate_formula", "formula", formulaText, "value", value.RatString())
	return mcp.NewToolResultText(string(jbytes)), nil
}

func (s *Server) findCredencesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	policyText, err := request.RequireString("policy")
	if err != nil {
		return mcp.NewToolResultError("policy must be set"), nil
	}
	var rawPolicy map[string]string
	if err := json.Unmarshal([]byte(policyText), &rawPolicy); err != nil {
		return mcp.NewToolResultErrorf("invalid policy JSON: %s", err), nil
	}

	policy := market.NewTradingPolicy()
	for sentenceText, formulaText := range rawPolicy {
		sent, err := lang.ParseSentence(sentenceText)
		if err != nil {
			return mcp.NewToolResultErrorf("invalid policy sentence %q: %s", sentenceText, err), nil
		}
		f, err := lang.ParseFormula(formulaText)
		if err != nil {
			return mcp.NewToolResultErrorf("invalid policy formula %q: %s", formulaText, err), nil
		}
		policy.Set(sent, f)
	}

	var updates []historyUpdate
	if historyText, err := request.RequireString("history"); err == nil && historyText != "" {
		if err := json.Unmarshal([]byte(historyText), &updates); err != nil {
			return mcp.NewToolResultErrorf("invalid history JSON: %s", err), nil
		}
	}
	h, err := parseHistory(updates)
	if err != nil {
		return mcp.NewToolResultErrorf("invalid history: %s", err), nil
	}

	toleranceText, err := request.RequireString("tolerance")
	if err != nil {
		return mcp.NewToolResultError("tolerance must be set"), nil
	}
	tolerance, ok := new(big.Rat).SetString(toleranceText)
	if !ok {
		return mcp.NewToolResultErrorf("tolerance %q is not a valid rational", toleranceText), nil
	}

	belief, err := market.FindCredences(policy, h, tolerance, nil, trace.New(s.Logger))
	if err != nil {
		return mcp.NewToolResultErrorf("search failed: %s", err), nil
	}

	jbytes, err := json.Marshal(beliefStateToJSON(belief))
	if err != nil {
		return mcp.NewToolResultErrorf("failed to marshal result: %s", err), nil
	}

	s.Logger.Info("find_credences", "tolerance", tolerance.RatString(), "support", policy.Len())
	return mcp.NewToolResultText(string(jbytes)), nil
}

func (s *Server) worldsConsistentWithHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	observationsText, err := request.RequireString("observations")
	if err != nil {
		return mcp.NewToolResultError("observations must be set"), nil
	}
	domainText, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError("domain must be set"), nil
	}

	var observationStrs, domainStrs []string
	if err := json.Unmarshal([]byte(observationsText), &observationStrs); err != nil {
		return mcp.NewToolResultErrorf("invalid observations JSON: %s", err), nil
	}
	if err := json.Unmarshal([]byte(domainText), &domainStrs); err != nil {
		return mcp.NewToolResultErrorf("invalid domain JSON: %s", err), nil
	}

	observations := make([]sentence.Sentence, len(observationStrs))
	for i, txt := range observationStrs {
		sent, err := lang.ParseSentence(txt)
		if err != nil {
			return mcp.NewToolResultErrorf("invalid observation %q: %s", txt, err), nil
		}
		observations[i] = sent
	}
	domain := make([]sentence.Sentence, len(domainStrs))
	for i, txt := range domainStrs {
		sent, err := lang.ParseSentence(txt)
		if err != nil {
			return mcp.NewToolResultErrorf("invalid domain sentence %q: %s", txt, err), nil
		}
		domain[i] = sent
	}

	gen := worlds.ConsistentWith(observations, domain)
	var out []map[string]bool
	for {
		w, ok := gen()
		if !ok {
			break
		}
		row := make(map[string]bool, len(domain))
		for _, s := range domain {
			v, _ := w.Get(s)
			row[s.String()] = v
		}
		out = append(out, row)
	}

	jbytes, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultErrorf("failed to marshal result: %s", err), nil
	}

	s.Logger.Info("worlds_consistent_with", "observations", len(observations), "domain", len(domain), "worlds", len(out))
	return mcp.NewToolResultText(string(jbytes)), nil
}
