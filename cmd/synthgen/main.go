// Command synthgen builds a synthetic seismogram from a LAS well log and a
// checkshot survey.
//
// Usage:
//
//	synthgen --las well.las --checkshots shots.csv [flags]
//
// Examples:
//
//	synthgen --las disco-1.las --checkshots disco-1_cs.csv
//	synthgen --las disco-1.las --checkshots disco-1_cs.csv --frequency 40 --dt 0.001
//	synthgen --las disco-1.las --checkshots disco-1_cs.csv --aliases aliases.yaml \
//	    --density BULK_DENSITY --sonic SONIC --out trace.csv
//
// The output is CSV with one row per time sample: time, reflectivity,
// amplitude. It goes to stdout unless --out names a file.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-seis/io/las"
	"github.com/cwbudde/algo-seis/io/tabular"
	"github.com/cwbudde/algo-seis/nomen"
	"github.com/cwbudde/algo-seis/pipeline"
	"github.com/cwbudde/algo-seis/unit"
	"github.com/cwbudde/algo-seis/well"
)

type options struct {
	lasPath       string
	checkshotPath string
	topsPath      string
	aliasPath     string
	outPath       string

	density   string
	sonic     string
	frequency float64
	dt        float64
	duration  float64
	verbose   bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "synthgen:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "synthgen",
		Short:         "Build a synthetic seismogram from a well log",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.lasPath, "las", "", "path to LAS 2.0 well log (required)")
	cmd.Flags().StringVar(&opts.checkshotPath, "checkshots", "", "path to depth,time checkshot CSV (required)")
	cmd.Flags().StringVar(&opts.topsPath, "tops", "", "path to name,depth formation tops CSV")
	cmd.Flags().StringVar(&opts.aliasPath, "aliases", "", "path to YAML mnemonic alias table")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "output CSV path (default stdout)")
	cmd.Flags().StringVar(&opts.density, "density", "RHOB", "density curve name or canonical log type")
	cmd.Flags().StringVar(&opts.sonic, "sonic", "DT", "sonic curve name or canonical log type")
	cmd.Flags().Float64Var(&opts.frequency, "frequency", 30, "Ricker peak frequency in Hz")
	cmd.Flags().Float64Var(&opts.dt, "dt", 0.002, "time sample interval in seconds")
	cmd.Flags().Float64Var(&opts.duration, "duration", 0.128, "wavelet duration in seconds")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	_ = cmd.MarkFlagRequired("las")
	_ = cmd.MarkFlagRequired("checkshots")

	return cmd
}

func run(opts *options, stdout io.Writer) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	w, err := loadWell(opts)
	if err != nil {
		return err
	}

	cfg := pipeline.Config{
		DensityCurve:    opts.density,
		SonicCurve:      opts.sonic,
		Frequency:       opts.frequency,
		SampleInterval:  opts.dt,
		WaveletDuration: opts.duration,
		Units:           unit.NewConverter(),
	}
	if opts.aliasPath != "" {
		aliases, err := loadAliases(opts.aliasPath)
		if err != nil {
			return err
		}
		cfg.Aliases = aliases
	}

	slog.Info("running pipeline", "well", w.Header.Name,
		"frequency", opts.frequency, "dt", opts.dt)
	res, err := pipeline.Run(w, cfg)
	if err != nil {
		return err
	}
	slog.Info("pipeline done", "samples", res.Trace.Len(), "wavelet_len", res.Wavelet.Len())

	out := stdout
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return writeTrace(out, res)
}

func loadWell(opts *options) (*well.Well, error) {
	lasFile, err := os.Open(opts.lasPath)
	if err != nil {
		return nil, fmt.Errorf("open las: %w", err)
	}
	defer lasFile.Close()

	parsed, err := las.Read(lasFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("las loaded", "well", parsed.Header.Name)

	csFile, err := os.Open(opts.checkshotPath)
	if err != nil {
		return nil, fmt.Errorf("open checkshots: %w", err)
	}
	defer csFile.Close()

	parsed.Checkshots, err = tabular.LoadCheckshots(csFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("checkshots loaded", "count", parsed.Checkshots.Len())

	if opts.topsPath != "" {
		topsFile, err := os.Open(opts.topsPath)
		if err != nil {
			return nil, fmt.Errorf("open tops: %w", err)
		}
		defer topsFile.Close()

		tops, err := tabular.LoadTops(topsFile)
		if err != nil {
			return nil, err
		}
		for _, top := range tops {
			parsed.AddTop(top.Name, top.Depth)
		}
		slog.Debug("tops loaded", "count", len(tops))
	}

	return parsed, nil
}

func loadAliases(path string) (*nomen.Nomenclature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open aliases: %w", err)
	}
	defer f.Close()

	m, err := nomen.LoadAliases(f)
	if err != nil {
		return nil, err
	}
	return nomen.New(m), nil
}

func writeTrace(w io.Writer, res *pipeline.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "reflectivity", "amplitude"}); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	for i, t := range res.Trace.Index {
		row := []string{
			strconv.FormatFloat(t, 'f', 6, 64),
			strconv.FormatFloat(res.Reflectivity.Values[i], 'g', 8, 64),
			strconv.FormatFloat(res.Trace.Values[i], 'g', 8, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
