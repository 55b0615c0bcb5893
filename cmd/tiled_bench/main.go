// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// tiled_bench generates random tiles, applies the Shift and ScalShift operators to all of them in
// parallel, both permuting and not, and verifies the results: permutation round trip, shift
// round trip, fused against unfused evaluation and consuming against copying evaluation.
//
// The element type of the tiles is selected with -dtype (e.g. "float32", "int8", "bf16"). For
// float16 and bfloat16 tiles the ScalShift operator converts its results to float32.
//
// It prints a report with the throughput and the number of failures, and exits with status 1 if
// any verification failed.
//
// Example:
//
//	go run ./cmd/tiled_bench -rank=4 -dim=16 -tiles=1000 -perm=3,2,0,1 -shift=1,-2,3,0 -factor=0.5 -consume -dtype=f32
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/tiled/internal/workerspool"
	"github.com/gomlx/tiled/pkg/core/dtypes"
	"github.com/gomlx/tiled/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/tiled/pkg/core/permutations"
	"github.com/gomlx/tiled/pkg/core/ranges"
	"github.com/gomlx/tiled/pkg/core/tileops"
	"github.com/gomlx/tiled/pkg/core/tiles"
	"github.com/gomlx/tiled/pkg/support/xslices"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/schollz/progressbar/v3"
	"github.com/x448/float16"
	"k8s.io/klog/v2"
)

var (
	flagRank        = flag.Int("rank", 3, "Rank (number of axes) of the generated tiles.")
	flagDim         = flag.Int("dim", 8, "Extent of each axis of the generated tiles.")
	flagNumTiles    = flag.Int("tiles", 256, "Number of tiles to generate.")
	flagParallelism = flag.Int("parallelism", 0, "Maximum number of tiles evaluated in parallel. "+
		"0 uses the number of CPUs, -1 is unlimited.")
	flagPerm = xslices.IntsFlag("perm", nil, "Comma-separated permutation of the axes: axis i is moved to perm[i]. "+
		"Defaults to reversing the axes.")
	flagShift    = xslices.IntsFlag("shift", nil, "Comma-separated offsets, one per axis. Defaults to 1 for every axis.")
	flagFactor   = flag.Float64("factor", 2.0, "Scalar factor used by the ScalShift operator.")
	flagConsume  = flag.Bool("consume", false, "Use the Consuming strategy, so owned tiles are evaluated in place.")
	flagNoColor  = flag.Bool("no_color", false, "Disable colors in the report.")
	flagProgress = flag.Bool("progress", true, "Display a progress bar while evaluating the tiles.")
	flagSeed     = flag.Uint64("seed", 42, "Seed for the random tile values.")
	flagDType    = flag.String("dtype", "float64", "Element type of the tiles, by name (\"float32\") or short name (\"F32\"), case-insensitive. "+
		"Numeric types, float16 and bfloat16 are accepted.")
)

// config of one benchmark run, parsed from the flags.
type config struct {
	dtype       dtypes.DType
	numTiles    int
	parallelism int
	tileRange   ranges.Range
	perm        permutations.Permutation
	offsets     []int
	factor      float64
	consume     bool
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg := parseConfig()
	stats := runDType(cfg)
	printReport(cfg, stats)
	if stats.numFailures > 0 {
		os.Exit(1)
	}
}

func parseConfig() config {
	if *flagRank < 0 || *flagDim < 0 || *flagNumTiles <= 0 {
		klog.Fatalf("invalid -rank=%d, -dim=%d or -tiles=%d", *flagRank, *flagDim, *flagNumTiles)
	}
	dtype, found := dtypes.MapOfNames[*flagDType]
	if !found {
		klog.Fatalf("unknown -dtype=%q", *flagDType)
	}
	cfg := config{
		dtype:       dtype,
		numTiles:    *flagNumTiles,
		parallelism: *flagParallelism,
		factor:      *flagFactor,
		consume:     *flagConsume,
	}
	extents := make([]int, *flagRank)
	xslices.FillSlice(extents, *flagDim)
	cfg.tileRange = ranges.Make(extents...)

	if len(*flagPerm) == 0 {
		p := xslices.Iota(0, *flagRank)
		slices.Reverse(p)
		cfg.perm = permutations.Make(p...)
	} else {
		cfg.perm = must.M1(permutations.New(*flagPerm...))
		must.M(cfg.perm.CheckDim(*flagRank))
	}

	if len(*flagShift) == 0 {
		cfg.offsets = make([]int, *flagRank)
		xslices.FillSlice(cfg.offsets, 1)
	} else {
		cfg.offsets = *flagShift
		if len(cfg.offsets) != *flagRank {
			klog.Fatalf("-shift=%v has %d offsets, but -rank=%d", cfg.offsets, len(cfg.offsets), *flagRank)
		}
	}
	return cfg
}

// runStats collects the results of a run.
type runStats struct {
	numTiles, numElements int
	numFailures           int
	failures              []string
	parallelism           int
	elapsed               time.Duration
}

// runDType runs the benchmark with tiles of the element type selected by cfg.dtype.
func runDType(cfg config) *runStats {
	switch cfg.dtype {
	case dtypes.Int8:
		return runNumber[int8](cfg)
	case dtypes.Int16:
		return runNumber[int16](cfg)
	case dtypes.Int32:
		return runNumber[int32](cfg)
	case dtypes.Int64:
		return runNumber[int64](cfg)
	case dtypes.Uint8:
		return runNumber[uint8](cfg)
	case dtypes.Uint16:
		return runNumber[uint16](cfg)
	case dtypes.Uint32:
		return runNumber[uint32](cfg)
	case dtypes.Uint64:
		return runNumber[uint64](cfg)
	case dtypes.Float32:
		return runNumber[float32](cfg)
	case dtypes.Float64:
		return runNumber[float64](cfg)
	case dtypes.Complex64:
		return runNumber[complex64](cfg)
	case dtypes.Complex128:
		return runNumber[complex128](cfg)
	case dtypes.Float16:
		return runHalf[float16.Float16](cfg)
	case dtypes.BFloat16:
		return runHalf[bfloat16.BFloat16](cfg)
	default:
		klog.Fatalf("-dtype=%s is not supported: the ScalShift operator needs a numeric type", cfg.dtype)
		return nil
	}
}

// runNumber verifies Shift and ScalShift over tiles of a native numeric type, with the strategy
// selected by cfg.consume.
func runNumber[T dtypes.Number](cfg config) *runStats {
	if cfg.consume {
		return run(cfg, verifyAll[T](
			verifyShift[T, tileops.Consuming[T]],
			verifyScalShift[T, T, tileops.Consuming[T]]))
	}
	return run(cfg, verifyAll[T](
		verifyShift[T, tileops.Copying[T, T]],
		verifyScalShift[T, T, tileops.Copying[T, T]]))
}

// runHalf verifies Shift over tiles of a 16 bits float type, and ScalShift converting them to float32.
// The converting ScalShift never consumes its argument, whatever cfg.consume.
func runHalf[T dtypes.Supported](cfg config) *runStats {
	if cfg.consume {
		return run(cfg, verifyAll[T](
			verifyShift[T, tileops.Consuming[T]],
			verifyScalShift[float32, T, tileops.Copying[float32, T]]))
	}
	return run(cfg, verifyAll[T](
		verifyShift[T, tileops.Copying[T, T]],
		verifyScalShift[float32, T, tileops.Copying[float32, T]]))
}

// verifyFn evaluates the operators over one tile, and returns the description of the failed verifications.
type verifyFn[T dtypes.Supported] func(cfg config, tile *tiles.Tile[T]) []string

// verifyAll returns a verifyFn that runs all the given ones and collects their failures.
func verifyAll[T dtypes.Supported](fns ...verifyFn[T]) verifyFn[T] {
	return func(cfg config, tile *tiles.Tile[T]) (failures []string) {
		for _, fn := range fns {
			failures = append(failures, fn(cfg, tile)...)
		}
		return
	}
}

// run generates cfg.numTiles random tiles of type T, and verifies them in parallel.
// Values are drawn from [0, 100), so they are representable by every numeric type.
func run[T dtypes.Supported](cfg config, verify verifyFn[T]) *runStats {
	rng := rand.New(rand.NewPCG(*flagSeed, uint64(cfg.numTiles)))
	convert := dtypes.ConvertFunc[T, float64]()
	sources := make([]*tiles.Tile[T], cfg.numTiles)
	for i := range sources {
		sources[i] = tiles.New[T](cfg.tileRange)
		for j := range sources[i].Flat() {
			sources[i].Flat()[j] = convert(rng.Float64() * 100)
		}
	}

	pool := workerspool.New()
	if cfg.parallelism != 0 {
		pool.SetMaxParallelism(cfg.parallelism)
	}
	var bar *progressbar.ProgressBar
	if *flagProgress {
		bar = progressbar.NewOptions(cfg.numTiles,
			progressbar.OptionSetDescription(fmt.Sprintf("Evaluating %s tiles", cfg.dtype)),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("tiles"),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
			progressbar.OptionClearOnFinish(),
		)
	}

	failures := make([][]string, cfg.numTiles)
	start := time.Now()
	errs := pool.ForEach(cfg.numTiles, func(i int) {
		failures[i] = verify(cfg, sources[i])
		if bar != nil {
			_ = bar.Add(1)
		}
	})
	stats := &runStats{
		numTiles:    cfg.numTiles,
		numElements: cfg.numTiles * cfg.tileRange.Volume(),
		parallelism: pool.MaxParallelism(),
		elapsed:     time.Since(start),
	}
	if bar != nil {
		_ = bar.Finish()
	}

	for i := range cfg.numTiles {
		if len(errs) > 0 && errs[i] != nil {
			failures[i] = append(failures[i], fmt.Sprintf("panic: %v", errs[i]))
		}
		if len(failures[i]) > 0 {
			stats.numFailures++
			for _, failure := range failures[i] {
				stats.failures = append(stats.failures, fmt.Sprintf("tile #%d: %s", i, failure))
			}
		}
	}
	klog.V(1).Infof("evaluated %d %s tiles in %s, %d failed", stats.numTiles, cfg.dtype, stats.elapsed, stats.numFailures)
	return stats
}

// checker returns a function that appends a failure message to *failures when ok is false.
func checker(failures *[]string) func(ok bool, format string, args ...any) {
	return func(ok bool, format string, args ...any) {
		if !ok {
			*failures = append(*failures, fmt.Sprintf(format, args...))
		}
	}
}

// verifyShift runs the Shift operator with the strategy S over src, and checks its results.
//
// src is never modified: consumed arguments are clones.
func verifyShift[T dtypes.Supported, S tileops.Strategy[T, T]](cfg config, src *tiles.Tile[T]) (failures []string) {
	check := checker(&failures)
	perm, offsets := cfg.perm, cfg.offsets
	shift := tileops.NewShift[T, T, S](offsets)

	// Permutation round trip.
	permuted := tiles.Permute(src, perm)
	check(tiles.Permute(permuted, perm.Inverse()).Equal(src), "permute %s and back differs", perm)

	// Shift round trip.
	shifted := shift.Apply(src)
	back := tileops.NewShift[T, T, S](xslices.Negate(offsets)).Apply(shifted)
	check(back.Equal(src), "shift by %v and back differs", offsets)

	// Owned evaluation, consuming or not, matches the borrowed evaluation.
	arg := src.Clone()
	check(shift.ApplyOwned(tiles.Take(&arg)).Equal(shifted), "owned Shift differs from borrowed Shift")

	// Fused against unfused permuted evaluation.
	want := tiles.ShiftTo(permuted, offsets)
	check(shift.ApplyPermuted(src, perm).Equal(want), "fused Shift with %s differs from unfused", perm)
	return
}

// verifyScalShift runs the ScalShift operator with the strategy S over src, and checks its results.
// The factor is cfg.factor converted to R.
//
// src is never modified: consumed arguments are clones.
func verifyScalShift[R dtypes.Number, A dtypes.Supported, S tileops.Strategy[R, A]](cfg config, src *tiles.Tile[A]) (failures []string) {
	check := checker(&failures)
	perm, offsets := cfg.perm, cfg.offsets
	factor := dtypes.Convert[R](cfg.factor)
	scalShift := tileops.NewScalShift[R, A, S](offsets, factor)

	// Owned evaluation, consuming or not, matches the borrowed evaluation.
	scaled := scalShift.Apply(src)
	arg := src.Clone()
	check(scalShift.ApplyOwned(tiles.Take(&arg)).Equal(scaled), "owned ScalShift differs from borrowed ScalShift")

	// Negating the factor twice is the identity.
	check(scalShift.Negate().Negate().Apply(src).Equal(scaled), "ScalShift with factor negated twice differs")

	// Fused against unfused permuted evaluation.
	want := tiles.ShiftTo(tiles.Permute(tiles.Scale(src, factor), perm), offsets)
	check(scalShift.ApplyPermuted(src, perm).Equal(want), "fused ScalShift with %s differs from unfused", perm)
	return
}
