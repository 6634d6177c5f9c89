// Copyright (c) 2024 Neomantra Corp

// Package snapshot offers an optional, write-mostly persistence layer for a
// History: one JSON object per committed update, mapping a sentence's
// display text to its credence as an exact rational string ("3/4"),
// optionally zstd-compressed. It exists purely for the CLI's run --save flag
// and inspect subcommand; the core update loop keeps its histories in memory and
// never reads a snapshot back in, so this package reconstructs no History
// -- it only writes and inspects.
package snapshot

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/segmentio/encoding/json"

	"github.com/NimbleMarkets/logind-go/history"
)

// Update is the JSON shape of one committed belief state.
type Update map[string]string

// Save writes h to filename as a JSON array of Update, one per committed
// update in order. If filename ends in ".zst" or ".zstd", or useZstd is
// true, the output is zstd-compressed.
func Save(h *history.History, filename string, useZstd bool) error {
	writer, closeFn, err := makeCompressedWriter(filename, useZstd)
	if err != nil {
		return err
	}
	defer closeFn()

	updates := make([]Update, 0, h.Len())
	for day := 1; day <= h.Len(); day++ {
		state, err := h.StateAt(day)
		if err != nil {
			return err
		}
		update := make(Update, state.Len())
		for _, s := range state.Keys() {
			credence, _ := state.Get(s)
			update[s.String()] = credence.RatString()
		}
		updates = append(updates, update)
	}

	enc := json.NewEncoder(writer)
	return enc.Encode(updates)
}

// isCompressed reports whether filename's contents are (or should be
// written as) zstd-compressed.
func isCompressed(filename string, useZstd bool) bool {
	return useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd")
}

func makeCompressedWriter(filename string, useZstd bool) (io.Writer, func(), error) {
	var writer io.Writer
	var closer io.Closer
	if filename != "-" {
		file, err := os.Create(filename)
		if err != nil {
			return nil, nil, err
		}
		writer, closer = file, file
	} else {
		writer = os.Stdout
	}
	closeFn := func() {
		if closer != nil {
			closer.Close()
		}
	}

	if !isCompressed(filename, useZstd) {
		return writer, closeFn, nil
	}
	zstdWriter, err := zstd.NewWriter(writer)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return zstdWriter, func() { zstdWriter.Close(); closeFn() }, nil
}

func makeCompressedReader(filename string, useZstd bool) (io.Reader, io.Closer, error) {
	var reader io.Reader
	var closer io.Closer
	if filename != "-" {
		file, err := os.Open(filename)
		if err != nil {
			return nil, nil, err
		}
		reader, closer = file, file
	} else {
		reader = os.Stdin
	}

	if !isCompressed(filename, useZstd) {
		return reader, closer, nil
	}
	zstdReader, err := zstd.NewReader(reader)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, nil, err
	}
	return zstdReader, closer, nil
}
