// Copyright (c) 2024 Neomantra Corp

package snapshot_test

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/internal/snapshot"
	"github.com/NimbleMarkets/logind-go/sentence"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSnapshot(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "snapshot suite")
}

func buildHistory() *history.History {
	phi := sentence.Atom("phi")
	psi := sentence.Atom("psi")

	s1 := history.NewBeliefState()
	s1.Set(phi, big.NewRat(1, 3))
	s2 := history.NewBeliefState()
	s2.Set(phi, big.NewRat(1, 2))
	s2.Set(psi, big.NewRat(3, 4))

	return history.New().WithNextUpdate(s1).WithNextUpdate(s2)
}

var _ = Describe("Save and Inspect", func() {
	It("round-trips update count and the most recent update's sentence keys, uncompressed", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "snap.json")

		Expect(snapshot.Save(buildHistory(), path, false)).To(Succeed())

		info, err := os.Stat(path)
		Expect(err).To(BeNil())
		Expect(info.Size()).To(BeNumerically(">", 0))

		summary, err := snapshot.Inspect(path, false)
		Expect(err).To(BeNil())
		Expect(summary.UpdateCount).To(Equal(2))
		Expect(summary.LastSentences).To(ConsistOf("phi", "psi"))
	})

	It("round-trips through zstd compression", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "snap.json.zst")

		Expect(snapshot.Save(buildHistory(), path, true)).To(Succeed())

		summary, err := snapshot.Inspect(path, true)
		Expect(err).To(BeNil())
		Expect(summary.UpdateCount).To(Equal(2))
	})

	It("reports zero updates for an empty history", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "empty.json")

		Expect(snapshot.Save(history.New(), path, false)).To(Succeed())

		summary, err := snapshot.Inspect(path, false)
		Expect(err).To(BeNil())
		Expect(summary.UpdateCount).To(Equal(0))
	})
})
