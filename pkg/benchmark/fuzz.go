// Package benchmark drives the cipher fuzz/benchmark mode: seeded random
// key and plaintext, encrypt, decrypt, compare, repeated for a configured
// number of iterations, with per-iteration latency statistics.
package benchmark

import (
	"fmt"
	"sort"
	"time"

	"aria-go/pkg/aria"
	"aria-go/pkg/hrtimer"
	"aria-go/pkg/log"
	"aria-go/pkg/xorshift"
)

// DefaultSeed matches the reference harness seed, so runs are comparable
// across machines.
const DefaultSeed = 0x5a5a5a5a5a5a5a5a

// Options configures a fuzz/benchmark run.
type Options struct {
	Iterations  int
	KeySizeBits int
	Seed        uint64
}

// DefaultOptions returns the reference harness parameters: one million
// 256-bit-key round trips from the fixed seed.
func DefaultOptions() *Options {
	return &Options{
		Iterations:  1000000,
		KeySizeBits: 256,
		Seed:        DefaultSeed,
	}
}

// Results holds the outcome of one fuzz/benchmark run. One iteration
// covers both schedule derivations, the encryption, the decryption, and
// the comparison.
type Results struct {
	Iterations  int
	KeySizeBits int
	Seed        uint64
	Mismatches  int
	TotalTime   time.Duration
	NsPerOp     float64

	MinLatency    time.Duration
	AvgLatency    time.Duration
	MedianLatency time.Duration
	P95Latency    time.Duration
	P99Latency    time.Duration
	MaxLatency    time.Duration
}

// Run executes the encrypt-then-decrypt fuzz loop. Every iteration draws
// six 64-bit words (two key halves and the plaintext) from a xorshift128+
// stream, builds both schedules, and checks that decryption restores the
// plaintext. A nonzero mismatch count means the cipher is broken.
func Run(opts *Options) (*Results, error) {
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("benchmark: iterations must be positive, got %d", opts.Iterations)
	}
	switch opts.KeySizeBits {
	case 128, 192, 256:
	default:
		return nil, fmt.Errorf("benchmark: unsupported key size %d bits", opts.KeySizeBits)
	}

	rng := xorshift.NewXorShift128Plus(opts.Seed)
	latencies := make([]time.Duration, 0, opts.Iterations)
	mismatches := 0

	log.Printf("fuzzing %d iterations with %d-bit keys, seed %#x",
		opts.Iterations, opts.KeySizeBits, opts.Seed)

	runStart := hrtimer.Nanoseconds()
	for i := 0; i < opts.Iterations; i++ {
		keyLeft := aria.Block128{Left: rng.Next(), Right: rng.Next()}
		keyRight := aria.Block128{Left: rng.Next(), Right: rng.Next()}
		plaintext := aria.Block128{Left: rng.Next(), Right: rng.Next()}
		switch opts.KeySizeBits {
		case 128:
			keyRight = aria.Block128{}
		case 192:
			keyRight.Right = 0
		}

		iterStart := hrtimer.Nanoseconds()
		enc, err := aria.InitKeySchedule(keyLeft, keyRight, aria.Encrypt, opts.KeySizeBits)
		if err != nil {
			return nil, fmt.Errorf("benchmark: encrypt schedule: %w", err)
		}
		dec, err := aria.InitKeySchedule(keyLeft, keyRight, aria.Decrypt, opts.KeySizeBits)
		if err != nil {
			return nil, fmt.Errorf("benchmark: decrypt schedule: %w", err)
		}
		if got := dec.Crypt(enc.Crypt(plaintext)); got != plaintext {
			mismatches++
			log.Error().
				Int("iteration", i).
				Str("plaintext", plaintext.String()).
				Str("got", got.String()).
				Msg("round trip mismatch")
		}
		latencies = append(latencies, hrtimer.Elapsed(iterStart))
	}
	totalTime := hrtimer.Elapsed(runStart)

	results := calculateStats(latencies, totalTime)
	results.Iterations = opts.Iterations
	results.KeySizeBits = opts.KeySizeBits
	results.Seed = opts.Seed
	results.Mismatches = mismatches
	return results, nil
}

// calculateStats sorts the latency samples and fills the aggregate fields.
func calculateStats(latencies []time.Duration, totalTime time.Duration) *Results {
	r := &Results{TotalTime: totalTime}
	if len(latencies) == 0 {
		return r
	}

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	r.MinLatency = latencies[0]
	r.MaxLatency = latencies[len(latencies)-1]
	r.AvgLatency = sum / time.Duration(len(latencies))
	r.MedianLatency = latencies[len(latencies)/2]
	r.P95Latency = latencies[(len(latencies)*95)/100]
	r.P99Latency = latencies[(len(latencies)*99)/100]
	r.NsPerOp = float64(totalTime.Nanoseconds()) / float64(len(latencies))
	return r
}
