// Copyright (c) 2024 Neomantra Corp

package snapshot

import (
	"fmt"
	"io"

	"github.com/valyala/fastjson"
)

// Summary describes a snapshot file without fully unmarshaling it into
// Update values: a shallow fastjson pass pulls out just the update count
// and the last update's sentence keys instead of decoding every record.
type Summary struct {
	UpdateCount   int
	LastSentences []string
}

// Inspect scans filename and returns a Summary: how many updates it holds,
// and the sentence keys present in the most recent one.
func Inspect(filename string, useZstd bool) (Summary, error) {
	reader, closer, err := makeCompressedReader(filename, useZstd)
	if err != nil {
		return Summary{}, err
	}
	if closer != nil {
		defer closer.Close()
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return Summary{}, err
	}

	var p fastjson.Parser
	val, err := p.ParseBytes(data)
	if err != nil {
		return Summary{}, fmt.Errorf("snapshot: invalid JSON: %w", err)
	}

	arr, err := val.Array()
	if err != nil {
		return Summary{}, fmt.Errorf("snapshot: expected a top-level JSON array: %w", err)
	}

	summary := Summary{UpdateCount: len(arr)}
	if len(arr) == 0 {
		return summary, nil
	}

	last := arr[len(arr)-1]
	obj, err := last.Object()
	if err != nil {
		return Summary{}, fmt.Errorf("snapshot: expected an object per update: %w", err)
	}
	obj.Visit(func(key []byte, v *fastjson.Value) {
		summary.LastSentences = append(summary.LastSentences, string(key))
	})

	return summary, nil
}
