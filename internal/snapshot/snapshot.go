// Package snapshot reads and writes msgpack snapshots of comparison results,
// so a finished run can be re-plotted or served without re-benchmarking.
package snapshot

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Koliatoday/goit-algo-hw-04/internal/bench"
)

func Save(path string, results []bench.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %v", err)
	}
	defer f.Close()

	encoder := msgpack.NewEncoder(f)
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %v", err)
	}
	return nil
}

func Load(path string) ([]bench.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %v", err)
	}
	defer f.Close()

	decoder := msgpack.NewDecoder(f)
	var results []bench.Result
	if err := decoder.Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %v", err)
	}
	return results, nil
}
