// Copyright (c) 2024 Neomantra Corp
//
// logind-cli is a command-line front door for the logical inductor core
// library: it evaluates formulas, enumerates consistent worlds, drives a
// demonstration inductor, and inspects saved snapshots.
//

package main

import (
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/relvacode/iso8601"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/NimbleMarkets/logind-go/formula"
	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/inductor"
	"github.com/NimbleMarkets/logind-go/internal/snapshot"
	"github.com/NimbleMarkets/logind-go/internal/trace"
	"github.com/NimbleMarkets/logind-go/internal/tui"
	"github.com/NimbleMarkets/logind-go/lang"
	"github.com/NimbleMarkets/logind-go/market"
	"github.com/NimbleMarkets/logind-go/sentence"
	"github.com/NimbleMarkets/logind-go/worlds"
)

///////////////////////////////////////////////////////////////////////////////

var (
	formulaStr   string
	historyFile  string
	toleranceStr string
	policyFile   string

	observeStrs []string
	domainStrs  []string
	emitJSON    bool

	maxUpdates int
	saveFile   string
	useZstd    bool
	verbose    bool

	inspectFile string

	startedAtStr string
)

func main() {
	cobra.OnInitialize()

	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVarP(&formulaStr, "formula", "f", "", "Formula text, e.g. 'product(2, price(a & b, 1))'")
	evalCmd.Flags().StringVarP(&historyFile, "history", "i", "", "JSON file of belief states (sentence text -> rational string), oldest first")
	evalCmd.Flags().StringVarP(&startedAtStr, "started-at", "", "", "ISO 8601 timestamp recorded in output, purely informational")
	evalCmd.MarkFlagRequired("formula")

	rootCmd.AddCommand(findCredencesCmd)
	findCredencesCmd.Flags().StringVarP(&policyFile, "policy", "p", "", "JSON file mapping sentence text to formula text")
	findCredencesCmd.Flags().StringVarP(&historyFile, "history", "i", "", "JSON file of prior belief states, oldest first")
	findCredencesCmd.Flags().StringVarP(&toleranceStr, "tolerance", "t", "1/16", "Exploitation tolerance as a rational string")
	findCredencesCmd.Flags().BoolVarP(&emitJSON, "json", "j", false, "Emit JSON instead of a simple summary")
	findCredencesCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Trace search candidates to stderr")
	findCredencesCmd.MarkFlagRequired("policy")

	rootCmd.AddCommand(worldsCmd)
	worldsCmd.Flags().StringArrayVarP(&observeStrs, "observe", "o", nil, "Sentence text known to be true (repeatable)")
	worldsCmd.Flags().StringArrayVarP(&domainStrs, "domain", "d", nil, "Sentence text to include in each returned world (repeatable)")
	worldsCmd.Flags().BoolVarP(&emitJSON, "json", "j", false, "Emit JSON instead of a simple summary")
	worldsCmd.MarkFlagRequired("domain")

	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVarP(&maxUpdates, "updates", "n", 16, "Number of demonstration updates to run")
	runCmd.Flags().StringVarP(&saveFile, "save", "s", "", "Save the resulting credence history to this file")
	runCmd.Flags().BoolVarP(&useZstd, "zstd", "", false, "Compress the saved file with zstd")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Trace search candidates to stderr")

	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "Snapshot file to inspect")
	inspectCmd.Flags().BoolVarP(&useZstd, "zstd", "", false, "The file is zstd-compressed")
	inspectCmd.MarkFlagRequired("file")

	requireNoError(rootCmd.Execute())
}

///////////////////////////////////////////////////////////////////////////////

var rootCmd = &cobra.Command{
	Use:   "logind-cli",
	Short: "logind-cli exercises a logical inductor from the command line.",
	Long:  "logind-cli exercises a logical inductor from the command line.",
}

var evalCmd = &cobra.Command{
	Use:     "eval",
	Aliases: []string{"e"},
	Short:   "Evaluates a trading formula against a belief-state history",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if startedAtStr != "" {
			t, err := iso8601.ParseString(startedAtStr)
			requireNoError(err)
			fmt.Fprintf(os.Stderr, "started at %s\n", t)
		}

		f, err := lang.ParseFormula(formulaStr)
		requireNoError(err)

		h := history.New()
		if historyFile != "" {
			h, err = loadHistoryFile(historyFile)
			requireNoError(err)
		}

		value, err := f.Evaluate(h)
		requireNoError(err)

		approx, _ := value.Float64()
		if emitJSON {
			printJSON(map[string]any{
				"value":       value.RatString(),
				"approximate": approx,
			})
		} else {
			fmt.Fprintf(os.Stdout, "%s = %s (%.6f)\n", formulaStr, value.RatString(), approx)
		}
	},
}

var findCredencesCmd = &cobra.Command{
	Use:     "find-credences",
	Aliases: []string{"fc"},
	Short:   "Searches for a belief state under which a trading policy is unexploitable past a tolerance",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		policy, err := loadPolicyFile(policyFile)
		requireNoError(err)

		h := history.New()
		if historyFile != "" {
			h, err = loadHistoryFile(historyFile)
			requireNoError(err)
		}

		tolerance, ok := new(big.Rat).SetString(toleranceStr)
		if !ok {
			requireNoError(fmt.Errorf("tolerance %q is not a valid rational", toleranceStr))
		}

		var tracer *trace.Tracer
		if verbose {
			tracer = trace.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}

		belief, err := market.FindCredences(policy, h, tolerance, nil, tracer)
		requireNoError(err)

		if emitJSON {
			out := make(map[string]string, belief.Len())
			for _, s := range belief.Keys() {
				credence, _ := belief.Get(s)
				out[s.String()] = credence.RatString()
			}
			printJSON(out)
		} else {
			for _, s := range belief.Keys() {
				credence, _ := belief.Get(s)
				fmt.Fprintf(os.Stdout, "%s: %s\n", s.String(), credence.RatString())
			}
		}
	},
}

var worldsCmd = &cobra.Command{
	Use:     "worlds",
	Aliases: []string{"w"},
	Short:   "Enumerates worlds over a domain consistent with observed sentences",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		observations := make([]sentence.Sentence, len(observeStrs))
		for i, txt := range observeStrs {
			s, err := lang.ParseSentence(txt)
			requireNoError(err)
			observations[i] = s
		}
		domain := make([]sentence.Sentence, len(domainStrs))
		for i, txt := range domainStrs {
			s, err := lang.ParseSentence(txt)
			requireNoError(err)
			domain[i] = s
		}

		gen := worlds.ConsistentWith(observations, domain)
		var rows []map[string]bool
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
			rows = append(rows, row)
		}

		if emitJSON {
			printJSON(rows)
		} else {
			fmt.Fprintf(os.Stdout, "%s consistent worlds over %s\n", humanize.Comma(int64(len(rows))), humanize.Comma(int64(len(domain))))
			for i, row := range rows {
				fmt.Fprintf(os.Stdout, "%s: %v\n", humanize.Ordinal(i+1), row)
			}
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs a demonstration inductor interactively and optionally saves its credence history",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var confirmRun bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Affirmative("Yes, run").
					Negative("No, cancel").
					Title(fmt.Sprintf("Run a demonstration inductor for %d updates?", maxUpdates)).
					Value(&confirmRun),
			))
		requireNoError(form.Run())
		if !confirmRun {
			os.Exit(0)
		}

		if saveFile == "" {
			requireNoError(tui.Run(tui.Config{MaxUpdates: maxUpdates}))
			return
		}

		var tracer *trace.Tracer
		if verbose {
			tracer = trace.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}

		ind := inductor.New()
		for i := 0; i < maxUpdates; i++ {
			observation := sentence.Atom(fmt.Sprintf("o%d", i+1))
			algorithm := buyOneForeverAlgorithm(observation)
			if _, err := ind.Update(observation, algorithm, nil, tracer); err != nil {
				requireNoError(fmt.Errorf("update %d: %w", i+1, err))
			}
		}

		requireNoError(snapshot.Save(ind.Credences(), saveFile, useZstd))
		fmt.Fprintf(os.Stdout, "saved %s updates to %s\n", humanize.Comma(int64(ind.Credences().Len())), saveFile)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarizes a saved credence-history snapshot",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		summary, err := snapshot.Inspect(inspectFile, useZstd)
		requireNoError(err)
		printJSON(summary)
	},
}

///////////////////////////////////////////////////////////////////////////////

// loadHistoryFile reads a JSON array of belief states (sentence text ->
// rational string credence), oldest first, in the same wire shape the MCP
// server accepts.
func loadHistoryFile(filename string) (*history.History, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var updates []map[string]string
	if err := json.Unmarshal(data, &updates); err != nil {
		return nil, err
	}

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

// loadPolicyFile reads a JSON object mapping sentence text to formula text,
// the same wire shape the MCP server's find_credences tool accepts.
func loadPolicyFile(filename string) (market.TradingPolicy, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	policy := market.NewTradingPolicy()
	for sentenceText, formulaText := range raw {
		s, err := lang.ParseSentence(sentenceText)
		if err != nil {
			return nil, fmt.Errorf("policy sentence %q: %w", sentenceText, err)
		}
		f, err := lang.ParseFormula(formulaText)
		if err != nil {
			return nil, fmt.Errorf("policy formula %q: %w", formulaText, err)
		}
		policy.Set(s, f)
	}
	return policy, nil
}

// buyOneForeverAlgorithm is the same worked demonstration trader the TUI
// dashboard uses, so that `run --save` and the interactive dashboard
// converge on the same sort of belief state.
func buyOneForeverAlgorithm(observation sentence.Sentence) inductor.TradingAlgorithm {
	return func() (market.TradingPolicy, bool) {
		policy := market.NewTradingPolicy()
		policy.Set(observation, formula.ConstantInt(1))
		return policy, true
	}
}

func requireNoError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

// printJSON is a generic helper to print a value as JSON to stdout.
func printJSON[T any](val T) {
	jstr, err := json.Marshal(val)
	requireNoError(err)
	fmt.Fprintf(os.Stdout, "%s\n", jstr)
}
