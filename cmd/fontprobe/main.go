// Command fontprobe measures font descriptors and prints their metrics.
//
// Descriptors come from a probe file, from CSS font shorthands given as
// arguments, or from the platform default editor settings:
//
//	fontprobe "14px/19px Go Mono" "bold 13px Go"
//	fontprobe -config probes.toml -backend gotext
//
// Fonts that measure degenerate are clamped and re-measured until they
// stabilise or -wait expires.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/gogpu/fontinfo"
	"github.com/gogpu/fontinfo/library"
)

const defaultWait = 2 * time.Second

func main() {
	var (
		configPath = flag.String("config", "", "probe file (.toml, .yaml or .yml)")
		backend    = flag.String("backend", "", "measurement backend: canvas, freetype, gotext or ximage")
		wait       = flag.Duration("wait", 0, "how long to wait for degenerate fonts to stabilise (default 2s)")
		verbose    = flag.Bool("v", false, "log measurements to stderr")
	)
	flag.Parse()

	if *verbose {
		fontinfo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := &Config{}
	dir := "."
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
		dir = filepath.Dir(*configPath)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *wait > 0 {
		cfg.Wait = wait.String()
	}
	for _, arg := range flag.Args() {
		cfg.Probes = append(cfg.Probes, Probe{Font: arg})
	}

	stable, err := run(cfg, dir, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if !stable {
		log.Print("some fonts did not stabilise; their widths are clamped")
		os.Exit(2)
	}
}

// run measures every probe of cfg and writes a table to out. It reports
// whether all measurements stabilised before the wait expired.
func run(cfg *Config, dir string, out io.Writer) (bool, error) {
	wait, err := cfg.WaitDuration(defaultWait)
	if err != nil {
		return false, err
	}

	lib := library.New()
	if cfg.UseGoFonts() {
		if err := lib.RegisterGoFonts(); err != nil {
			return false, err
		}
	}
	if err := cfg.Register(lib, dir); err != nil {
		return false, err
	}
	m, err := newMeasurer(cfg.Backend, lib)
	if err != nil {
		return false, err
	}

	probes := cfg.Probes
	if len(probes) == 0 {
		probes = []Probe{{Name: "default"}}
	}
	descs := make([]fontinfo.Descriptor, len(probes))
	for i, p := range probes {
		if descs[i], err = p.Descriptor(); err != nil {
			return false, err
		}
	}

	reg := fontinfo.New(m)
	defer reg.Dispose()

	changed := make(chan struct{}, 1)
	reg.OnDidChange(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	for _, d := range descs {
		reg.Read(d)
	}
	stable := waitStable(reg, changed, wait)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMONO\tHALF\tFULL\tSPACE\tDIGIT\tMIDDOT\tWSMIDDOT\tARROW")
	for i, d := range descs {
		fm := reg.Read(d)
		fmt.Fprintf(tw, "%s\t%t\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%t\n",
			probes[i].Label(d), fm.IsMonospace,
			fm.TypicalHalfwidthCharacterWidth, fm.TypicalFullwidthCharacterWidth,
			fm.SpaceWidth, fm.MaxDigitWidth, fm.MiddotWidth, fm.WSMiddotWidth,
			fm.CanUseHalfwidthRightwardsArrow)
	}
	return stable, tw.Flush()
}

// waitStable blocks until no entry of reg is clamped or timeout expires.
func waitStable(reg *fontinfo.Registry, changed <-chan struct{}, timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for reg.Pending() > 0 {
		select {
		case <-changed:
		case <-deadline.C:
			return reg.Pending() == 0
		}
	}
	return true
}
