// Package profile captures CPU and heap pprof profiles of a jlv run.
// The hot loop is the whole point of this tool, so the hooks stay wired in
// release builds behind hidden flags.
package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/pflag"
)

// Config holds profile output paths. Empty paths disable the corresponding
// profile; the zero value disables everything.
//
// Register flags with [Config.RegisterFlags] and bracket the run with
// [Config.Start] and [Profiler.Stop].
type Config struct {
	CPUProfile  string
	HeapProfile string
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet], hidden
// from normal help output.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, "cpu-profile", "", "write a CPU profile to file")
	flags.StringVar(&c.HeapProfile, "heap-profile", "", "write a heap profile to file")

	for _, name := range []string{"cpu-profile", "heap-profile"} {
		// Lookup cannot miss; the flags were just added.
		_ = flags.MarkHidden(name)
	}
}

// Profiler is an active profiling session created by [Config.Start].
type Profiler struct {
	cfg     Config
	cpuFile *os.File
}

// Start begins CPU profiling if configured. Always returns a Profiler to
// stop, even when nothing is enabled.
func (c *Config) Start() (*Profiler, error) {
	p := &Profiler{cfg: *c}

	if c.CPUProfile == "" {
		return p, nil
	}

	f, err := os.Create(c.CPUProfile) //nolint:gosec // Path comes from a CLI flag.
	if err != nil {
		return nil, fmt.Errorf("creating CPU profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}

	p.cpuFile = f

	return p, nil
}

// Stop ends CPU profiling and writes the heap snapshot if configured.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}
	}

	if p.cfg.HeapProfile == "" {
		return nil
	}

	f, err := os.Create(p.cfg.HeapProfile) //nolint:gosec // Path comes from a CLI flag.
	if err != nil {
		return fmt.Errorf("creating heap profile: %w", err)
	}

	runtime.GC()

	err = pprof.Lookup("heap").WriteTo(f, 0)
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("writing heap profile: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("writing heap profile: %w", err)
	}

	return nil
}
