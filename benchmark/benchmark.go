// benchmark.go
// A reusable benchmarking module for the Rosalind tools
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"rosalind_go/logger"
)

// Report holds the resource usage of one wrapped run
type Report struct {
	Label           string
	Elapsed         time.Duration
	HeapDeltaMB     float64
	TotalAllocMB    float64
	PeakHeapMB      float64
	GCCycles        uint32
	SysMB           float64
	CPUCores        int
	GoroutinesStart int
	GoroutinesEnd   int
}

func toMB(b uint64) float64 { return float64(b) / 1024.0 / 1024.0 }

// Measure runs f and returns its resource usage
func Measure(label string, f func()) Report {
	runtime.GC()																// Settle the heap before measuring
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	return Report{
		Label:           label,
		Elapsed:         elapsed,
		HeapDeltaMB:     toMB(memEnd.Alloc) - toMB(memStart.Alloc),				// Can be negative if GC ran
		TotalAllocMB:    toMB(memEnd.TotalAlloc - memStart.TotalAlloc),
		PeakHeapMB:      toMB(memEnd.HeapAlloc),
		GCCycles:        memEnd.NumGC - memStart.NumGC,
		SysMB:           toMB(memEnd.Sys),
		CPUCores:        runtime.NumCPU(),
		GoroutinesStart: startGoroutines,
		GoroutinesEnd:   runtime.NumGoroutine(),
	}
}

// Run wraps any function to measure its runtime and memory usage.
// Host and OS information is logged alongside for repeatability; everything
// goes to the diagnostic log so tool output on stdout stays clean.
func Run(label string, f func()) {
	log := logger.Named("benchmark").Level(zerolog.InfoLevel)		// Visible whatever level the tool picked

	host, _ := os.Hostname()
	log.Info().
		Str("run", label).
		Str("host", host).
		Str("go_version", runtime.Version()).
		Str("os_arch", runtime.GOOS+"/"+runtime.GOARCH).
		Msg("benchmark started")

	r := Measure(label, f)

	log.Info().
		Str("run", r.Label).
		Dur("elapsed", r.Elapsed).
		Float64("heap_delta_mb", r.HeapDeltaMB).
		Float64("total_alloc_mb", r.TotalAllocMB).
		Float64("peak_heap_mb", r.PeakHeapMB).
		Uint32("gc_cycles", r.GCCycles).
		Float64("sys_mb", r.SysMB).
		Int("cpu_cores", r.CPUCores).
		Int("goroutines_start", r.GoroutinesStart).
		Int("goroutines_end", r.GoroutinesEnd).
		Msg("benchmark finished")
}
