// Command hrvinfo computes heart-rate-variability descriptors for recorded
// sessions.
//
// Usage:
//
//	hrvinfo [flags] recording ...
//
// A recording holds one record per line: either the S/B/Q line protocol
// (S raw sensor sample, B averaged heart rate, Q inter-beat interval in ms)
// or a plain list of intervals in ms. The session is replayed beat by beat;
// descriptors are recomputed every -every beats and after the last beat.
//
// Examples:
//
//	hrvinfo session.txt
//	hrvinfo -every 10 -window 120 session.txt
//	hrvinfo -nonlinear -format json session.txt
//	hrvinfo -config profile.yaml -print-config
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cwbudde/algo-hrv/dsp/spectrum"
	"github.com/cwbudde/algo-hrv/dsp/window"
	"github.com/cwbudde/algo-hrv/hrv"
	"github.com/cwbudde/algo-hrv/internal/config"
	"github.com/cwbudde/algo-hrv/internal/log"
	"github.com/cwbudde/algo-hrv/internal/recording"
	"github.com/cwbudde/algo-hrv/internal/report"
)

var errUsage = errors.New("usage")

type options struct {
	cfg         hrv.Config
	format      report.Format
	every       int
	window      int
	workers     int
	capacity    int
	debug       bool
	printConfig bool
	files       []string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(2)
	}

	if err := log.Init(opts.debug); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Errorw("hrvinfo failed", "err", err)
		log.Sync()
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("hrvinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	rate := fs.Float64("rate", hrv.DefaultSampleRate, "resampling rate in Hz")
	nonlinear := fs.Bool("nonlinear", false, "also compute approximate entropy and fractal dimension")
	format := fs.String("format", "text", "output format: text, json or msgpack")
	taper := fs.String("taper", "rectangular", "spectral window: rectangular, hann, hamming or blackman")
	detrend := fs.Bool("detrend", false, "subtract the mean before the FFT")
	backend := fs.String("backend", "auto", "FFT backend: auto, algofft or gonum")
	profile := fs.String("config", "", "YAML analysis profile; flags given explicitly override it")
	every := fs.Int("every", 0, "recompute every N beats (0: only after the last beat)")
	win := fs.Int("window", 0, "analyse only the last N intervals (0: whole history)")
	workers := fs.Int("workers", 0, "parallel computations (0: unbounded)")
	capacity := fs.Int("capacity", recording.DefaultCapacity, "intervals kept in the history")
	debug := fs.Bool("debug", false, "enable debug logging")
	printConfig := fs.Bool("print-config", false, "print the effective profile as YAML and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: hrvinfo [flags] recording ...\n\n")
		fmt.Fprintf(stderr, "Computes heart-rate-variability descriptors for recorded sessions.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  hrvinfo session.txt\n")
		fmt.Fprintf(stderr, "  hrvinfo -every 10 -window 120 session.txt\n")
		fmt.Fprintf(stderr, "  hrvinfo -nonlinear -format json session.txt\n")
		fmt.Fprintf(stderr, "  hrvinfo -config profile.yaml -print-config\n")
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := hrv.DefaultConfig()
	if *profile != "" {
		p, err := config.Load(*profile)
		if err != nil {
			return options{}, err
		}
		if cfg, err = p.Apply(cfg); err != nil {
			return options{}, err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch f.Name {
		case "rate":
			cfg.SampleRate = *rate
		case "nonlinear":
			cfg.Nonlinear = *nonlinear
		case "detrend":
			cfg.RemoveMean = *detrend
		case "taper":
			cfg.Window, flagErr = window.ParseType(*taper)
		case "backend":
			cfg.Backend, flagErr = spectrum.ParseBackend(*backend)
		}
	})
	if flagErr != nil {
		return options{}, flagErr
	}
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}

	f, err := report.ParseFormat(*format)
	if err != nil {
		return options{}, err
	}

	switch {
	case *every < 0:
		return options{}, fmt.Errorf("-every must not be negative, got %d", *every)
	case *win == 1 || *win < 0:
		return options{}, fmt.Errorf("-window must be 0 or at least 2, got %d", *win)
	case *capacity < 2:
		return options{}, fmt.Errorf("-capacity must be at least 2, got %d", *capacity)
	}

	opts := options{
		cfg:         cfg,
		format:      f,
		every:       *every,
		window:      *win,
		workers:     *workers,
		capacity:    *capacity,
		debug:       *debug,
		printConfig: *printConfig,
		files:       fs.Args(),
	}
	if len(opts.files) == 0 && !opts.printConfig {
		fs.Usage()
		return options{}, errUsage
	}
	return opts, nil
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	if opts.printConfig {
		data, err := config.FromConfig(opts.cfg).Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	formatter := report.NewFormatter(opts.format)
	for _, path := range opts.files {
		entries, err := analyzeFile(ctx, path, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if opts.format == report.FormatText && len(opts.files) > 1 {
			if _, err := fmt.Fprintf(stdout, "== %s ==\n", path); err != nil {
				return err
			}
		}
		if err := formatter.Write(stdout, entries); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// analyzeFile replays one recording and returns an entry per recomputation.
func analyzeFile(ctx context.Context, path string, opts options) ([]report.Entry, error) {
	sess, err := recording.ParseFile(path)
	if err != nil {
		return nil, err
	}
	for _, issue := range sess.Issues {
		log.Warnw("skipped record", "file", path, "line", issue.Line, "text", issue.Text, "err", issue.Err)
	}
	log.Infow("session parsed", "file", path, "records", sess.Lines, "intervals", len(sess.IBI), "skipped", len(sess.Issues))

	var (
		history   = recording.NewHistory(opts.capacity)
		snapshots [][]float64
		beats     []int
		minimum   = minIntervals(opts.cfg)
	)
	for i, v := range sess.IBI {
		history.Push(v)
		n := i + 1
		last := n == len(sess.IBI)
		if !last && (opts.every == 0 || n%opts.every != 0) {
			continue
		}
		snap := history.Last(opts.window)
		if len(snap) < minimum {
			log.Debugw("snapshot too short", "file", path, "beats", n, "intervals", len(snap), "need", minimum)
			continue
		}
		snapshots = append(snapshots, snap)
		beats = append(beats, n)
	}
	if history.Dropped() > 0 {
		log.Infow("history overflowed", "file", path, "dropped", history.Dropped(), "capacity", history.Cap())
	}
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("%w: %d intervals, need %d", hrv.ErrInsufficientData, len(sess.IBI), minimum)
	}

	sets, err := hrv.ComputeBatch(ctx, snapshots, opts.cfg, opts.workers)
	if err != nil {
		return nil, err
	}

	entries := make([]report.Entry, len(sets))
	for i, set := range sets {
		entries[i] = report.NewEntry(beats[i], len(snapshots[i]), set)
		if err := set.Check(hrv.LFHF); err != nil {
			log.Debugw("descriptor not meaningful", "file", path, "beats", beats[i], "name", hrv.LFHF, "err", err)
		}
	}
	return entries, nil
}

// minIntervals is the shortest history cfg can be computed on.
func minIntervals(cfg hrv.Config) int {
	n := 2
	if !cfg.Nonlinear {
		return n
	}
	p := cfg.NonlinearParams
	// ApEn embeds at m+1 and needs one row; FracDim needs two rows.
	n = max(n, p.M*p.Tau+1, (p.FracDimM-1)*p.FracDimTau+2)
	return n
}
