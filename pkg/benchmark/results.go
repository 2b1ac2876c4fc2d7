package benchmark

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// PrintResults writes a human-readable summary of one run to stdout.
func PrintResults(r *Results) {
	fmt.Printf("=== Fuzz Benchmark: ARIA-%d ===\n", r.KeySizeBits)
	fmt.Printf("Iterations: %d\n", r.Iterations)
	fmt.Printf("Seed: %#x\n", r.Seed)
	fmt.Printf("Mismatches: %d\n", r.Mismatches)
	fmt.Printf("Total Time: %v\n", r.TotalTime)
	fmt.Printf("Per Iteration: %.2f ns\n", r.NsPerOp)
	fmt.Printf("Min Latency: %v\n", r.MinLatency)
	fmt.Printf("Avg Latency: %v\n", r.AvgLatency)
	fmt.Printf("Median Latency: %v\n", r.MedianLatency)
	fmt.Printf("95th Percentile: %v\n", r.P95Latency)
	fmt.Printf("99th Percentile: %v\n", r.P99Latency)
	fmt.Printf("Max Latency: %v\n", r.MaxLatency)
	fmt.Println("==========================================")
}

const csvHeader = "KeySizeBits,Iterations,Seed,Mismatches,MinLatencyNs,AvgLatencyNs,MedianLatencyNs,P95LatencyNs,P99LatencyNs,MaxLatencyNs,TotalTimeNs,NsPerOp\n"

// SaveResultsToFile writes runs as CSV. A filename ending in .zst writes
// the same CSV through a Zstandard encoder instead.
func SaveResultsToFile(results []*Results, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	var w io.Writer = f
	var enc *zstd.Encoder
	if strings.HasSuffix(filename, ".zst") {
		enc, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			return fmt.Errorf("benchmark: failed to initialize zstd encoder: %w", err)
		}
		w = enc
	}

	if err := writeCSV(w, results); err != nil {
		if enc != nil {
			enc.Close()
		}
		return err
	}
	if enc != nil {
		// Close flushes the final zstd block; without it the file is truncated.
		if err := enc.Close(); err != nil {
			return fmt.Errorf("benchmark: failed to close zstd encoder: %w", err)
		}
	}
	return nil
}

func writeCSV(w io.Writer, results []*Results) error {
	if _, err := io.WriteString(w, csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		_, err := fmt.Fprintf(w, "%d,%d,%#x,%d,%d,%d,%d,%d,%d,%d,%d,%.2f\n",
			r.KeySizeBits,
			r.Iterations,
			r.Seed,
			r.Mismatches,
			r.MinLatency.Nanoseconds(),
			r.AvgLatency.Nanoseconds(),
			r.MedianLatency.Nanoseconds(),
			r.P95Latency.Nanoseconds(),
			r.P99Latency.Nanoseconds(),
			r.MaxLatency.Nanoseconds(),
			r.TotalTime.Nanoseconds(),
			r.NsPerOp)
		if err != nil {
			return err
		}
	}
	return nil
}
