// Copyright (c) 2024 Neomantra Corp

package tui

import (
	"fmt"
	"math/big"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/NimbleMarkets/logind-go/formula"
	"github.com/NimbleMarkets/logind-go/inductor"
	"github.com/NimbleMarkets/logind-go/market"
	"github.com/NimbleMarkets/logind-go/sentence"
)

const (
	columnSentenceWidth = 24
	columnCredenceWidth = 14

	tickInterval = 400 * time.Millisecond
)

// tickMsg advances the demonstration inductor by one update.
type tickMsg struct{}

// updateResultMsg reports the outcome of one inductor.Update call.
type updateResultMsg struct {
	observation string
	rows        []tableRow
	err         error
}

type tableRow struct {
	sentence string
	credence string
}

// DashboardPageModel renders one demonstration Inductor converging over
// successive updates: a bubbles/table view of its belief state next to a
// bubbles/progress gauge tracking updates committed so far.
type DashboardPageModel struct {
	config Config

	ind         *inductor.Inductor
	updatesDone int
	lastErr     error

	beliefTable table.Model
	progress    progress.Model
	statusLine  string
}

// NewDashboardPage builds the dashboard's initial, empty state.
func NewDashboardPage(config Config) DashboardPageModel {
	if config.MaxUpdates <= 0 {
		config.MaxUpdates = 16
	}

	beliefTable := table.New(table.WithColumns([]table.Column{
		{Title: "Sentence", Width: columnSentenceWidth},
		{Title: "Credence", Width: columnCredenceWidth},
	}), table.WithStyles(nimbleTableStyles), table.WithFocused(false))

	return DashboardPageModel{
		config:      config,
		ind:         inductor.New(),
		beliefTable: beliefTable,
		progress:    progress.New(progress.WithDefaultGradient()),
		statusLine:  "starting...",
	}
}

// demonstrationAlgorithm buys one token of the just-admitted observation
// forever, which is enough for market.FindCredences to have something
// nontrivial to search for on every update.
func demonstrationAlgorithm(observation sentence.Sentence) inductor.TradingAlgorithm {
	return func() (market.TradingPolicy, bool) {
		policy := market.NewTradingPolicy()
		policy.Set(observation, formula.ConstantInt(1))
		return policy, true
	}
}

func (m DashboardPageModel) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m DashboardPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.updatesDone >= m.config.MaxUpdates || m.lastErr != nil {
			return m, nil
		}
		observation := sentence.Atom(fmt.Sprintf("o%d", m.updatesDone+1))
		belief, err := m.ind.Update(observation, demonstrationAlgorithm(observation), nil, nil)
		if err != nil {
			return m, teaCmdize(updateResultMsg{observation: observation.String(), err: err})
		}

		rows := make([]tableRow, 0, belief.Len())
		for _, s := range belief.Keys() {
			credence, _ := belief.Get(s)
			rows = append(rows, tableRow{sentence: s.String(), credence: formatRat(credence)})
		}
		return m, teaCmdize(updateResultMsg{observation: observation.String(), rows: rows})

	case updateResultMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			m.statusLine = fmt.Sprintf("error after %s observations: %s", humanize.Ordinal(m.updatesDone+1), msg.err.Error())
			return m, nil
		}
		m.updatesDone++

		teaRows := make([]table.Row, 0, len(msg.rows))
		for _, r := range msg.rows {
			teaRows = append(teaRows, table.Row{r.sentence, r.credence})
		}
		m.beliefTable.SetRows(teaRows)

		tolerance := formatTolerance(m.updatesDone)
		m.statusLine = fmt.Sprintf("observed %s  (tolerance 2^-%d = %s)", msg.observation, m.updatesDone, tolerance)

		if m.updatesDone >= m.config.MaxUpdates {
			m.progress.SetPercent(1.0)
			m.statusLine += "  [done]"
			return m, nil
		}
		cmd := m.progress.SetPercent(float64(m.updatesDone) / float64(m.config.MaxUpdates))
		return m, tea.Batch(cmd, tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} }))

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m DashboardPageModel) View() string {
	out := nimbleBorderStyle.Render(m.beliefTable.View()) + "\n\n"
	out += m.progress.View() + "\n"
	out += m.statusLine
	return out
}

func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.RatString()
	}
	f, _ := r.Float64()
	return fmt.Sprintf("%s (%.4f)", r.RatString(), f)
}

func formatTolerance(updates int) string {
	denom := new(big.Int).Lsh(big.NewInt(1), uint(updates))
	return "1/" + humanize.Comma(denomToInt64(denom))
}

func denomToInt64(i *big.Int) int64 {
	if i.IsInt64() {
		return i.Int64()
	}
	return -1
}
