// Copyright (c) 2024 Neomantra Corp

package trace_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/NimbleMarkets/logind-go/internal/trace"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTrace(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "trace suite")
}

func newRecordingTracer(buf *bytes.Buffer) *trace.Tracer {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return trace.New(logger)
}

var _ = Describe("Tracer", func() {
	It("is a safe no-op when nil", func() {
		var t *trace.Tracer
		Expect(func() {
			t.Candidate(0, 1, false)
			t.WorldRejected(big.NewRat(1, 2), big.NewRat(0, 1))
			t.AlgorithmAdmitted(0, 4)
			t.BudgetRound(0, 1)
		}).NotTo(Panic())
	})

	It("emits a debug record per candidate", func() {
		var buf bytes.Buffer
		tr := newRecordingTracer(&buf)
		tr.Candidate(3, 2, true)

		var record map[string]any
		Expect(json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record)).To(Succeed())
		Expect(record["msg"]).To(Equal("find_credences candidate"))
		Expect(record["accepted"]).To(Equal(true))
	})

	It("emits a debug record for a rejected world with exact rational strings", func() {
		var buf bytes.Buffer
		tr := newRecordingTracer(&buf)
		tr.WorldRejected(big.NewRat(1, 3), big.NewRat(1, 100))

		Expect(strings.Contains(buf.String(), "1/3")).To(BeTrue())
	})

	It("emits a debug record for an admitted algorithm and a budget round", func() {
		var buf bytes.Buffer
		tr := newRecordingTracer(&buf)
		tr.AlgorithmAdmitted(2, 9)
		tr.BudgetRound(2, 5)

		Expect(strings.Count(buf.String(), "\n")).To(Equal(2))
	})
})
