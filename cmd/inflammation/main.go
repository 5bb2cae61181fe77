// Package main is the command-line front end for inflammation statistics.
package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sartorproj/inflammation/internal/config"
	"github.com/sartorproj/inflammation/models"
	"github.com/sartorproj/inflammation/stats"
	"github.com/sartorproj/inflammation/table"
)

const version = "0.1.0"

type options struct {
	normalise bool
	describe  bool
	patient   int
	names     []string
	format    string
	precision int
	header    bool
	delimiter rune
}

func main() {
	cfg := config.Load()
	config.InitLogger(cfg, os.Stderr)

	if err := run(os.Args[1:], cfg, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("inflammation failed", "error", err)
		}
		os.Exit(1)
	}
}

func run(args []string, cfg *config.Config, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inflammation", flag.ContinueOnError)
	fs.SetOutput(stderr)

	normalise := fs.Bool("normalise", false, "Print each patient's readings scaled by their peak")
	describe := fs.Bool("describe", false, "Print quartiles for each day")
	patient := fs.Int("patient", -1, "Print a summary for one patient (row index)")
	names := fs.String("names", "", "Comma separated patient names, in row order")
	format := fs.String("format", "text", "Output format: text, csv, json")
	precision := fs.Int("precision", cfg.Precision, "Decimal places in text and csv output")
	header := fs.Bool("header", cfg.CSV.HasHeader, "Input files start with a header row")
	delimiter := fs.String("delimiter", string(cfg.CSV.Delimiter), "Input field delimiter")
	showVersion := fs.Bool("version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `inflammation: daily statistics for patient inflammation data

Usage:
  inflammation [flags] file.csv [file.csv ...]

Flags:
`)
		fs.PrintDefaults()
		fmt.Fprintf(stderr, `
Environment:
  INFLAMMATION_ENV        development or production (log format)
  INFLAMMATION_LOG_LEVEL  debug, info, warn, error
  INFLAMMATION_DELIMITER  default for -delimiter
  INFLAMMATION_HEADER     default for -header
  INFLAMMATION_PRECISION  default for -precision
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "inflammation %s\n", version)
		return nil
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("at least one input file is required")
	}

	opts := options{
		normalise: *normalise,
		describe:  *describe,
		patient:   *patient,
		format:    *format,
		precision: *precision,
		header:    *header,
	}
	if *names != "" {
		for _, n := range strings.Split(*names, ",") {
			opts.names = append(opts.names, strings.TrimSpace(n))
		}
	}
	switch d := []rune(*delimiter); {
	case *delimiter == `\t`:
		opts.delimiter = '\t'
	case len(d) == 1:
		opts.delimiter = d[0]
	default:
		return fmt.Errorf("invalid delimiter %q", *delimiter)
	}
	switch opts.format {
	case "text", "csv", "json":
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	for _, filename := range fs.Args() {
		if err := analyse(filename, opts, stdout); err != nil {
			return err
		}
	}
	return nil
}

func analyse(filename string, opts options, w io.Writer) error {
	csvOpts := table.DefaultCSVOptions()
	csvOpts.Delimiter = opts.delimiter
	csvOpts.HasHeader = opts.header

	t, err := table.LoadCSV(filename, csvOpts)
	if err != nil {
		return err
	}
	patients, days := t.Dims()
	slog.Info("loaded table", "file", filename, "patients", patients, "days", days)

	rep := report{
		File:     filename,
		Patients: patients,
		Days:     days,
		Mean:     numbers(stats.DailyMean(t)),
		Min:      numbers(stats.DailyMin(t)),
		Max:      numbers(stats.DailyMax(t)),
		Std:      numbers(stats.DailyStd(t)),
	}

	if opts.describe {
		rep.Describe = stats.Describe(t)
	}

	if opts.patient >= 0 {
		s, err := stats.PatientSummary(t, opts.patient)
		if err != nil {
			return err
		}
		p := models.AttachNames(t, opts.names)[opts.patient]
		rep.Patient = &patientReport{
			Index:        opts.patient,
			Name:         p.Name,
			Observations: len(p.Observations),
			Summary:      s,
		}
	}

	if opts.normalise {
		normalised, err := stats.PatientNormalise(t)
		if err != nil {
			return err
		}
		rep.Normalised = normalised
		slog.Debug("normalised table", "file", filename)
	}

	switch opts.format {
	case "json":
		return writeJSON(w, rep)
	case "csv":
		return writeCSV(w, rep, opts.precision)
	default:
		return writeText(w, rep, opts.precision)
	}
}

type report struct {
	File       string          `json:"file"`
	Patients   int             `json:"patients"`
	Days       int             `json:"days"`
	Mean       []number        `json:"mean"`
	Min        []number        `json:"min"`
	Max        []number        `json:"max"`
	Std        []number        `json:"std"`
	Describe   []stats.Summary `json:"-"`
	Patient    *patientReport  `json:"-"`
	Normalised *table.Table    `json:"-"`
}

type patientReport struct {
	Index        int
	Name         string
	Observations int
	Summary      stats.Summary
}

// number is a float64 that encodes NaN and Inf as JSON null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func numbers(xs []float64) []number {
	out := make([]number, len(xs))
	for i, x := range xs {
		out[i] = number(x)
	}
	return out
}

func writeJSON(w io.Writer, rep report) error {
	type summaryJSON struct {
		N       int    `json:"n"`
		Missing int    `json:"missing"`
		Mean    number `json:"mean"`
		StdDev  number `json:"std"`
		Min     number `json:"min"`
		Q1      number `json:"q1"`
		Median  number `json:"median"`
		Q3      number `json:"q3"`
		Max     number `json:"max"`
	}
	toJSON := func(s stats.Summary) summaryJSON {
		return summaryJSON{s.N, s.Missing, number(s.Mean), number(s.StdDev), number(s.Min),
			number(s.Q1), number(s.Median), number(s.Q3), number(s.Max)}
	}

	out := struct {
		report
		Describe   []summaryJSON `json:"describe,omitempty"`
		Patient    any           `json:"patient,omitempty"`
		Normalised [][]number    `json:"normalised,omitempty"`
	}{report: rep}

	for _, s := range rep.Describe {
		out.Describe = append(out.Describe, toJSON(s))
	}
	if rep.Patient != nil {
		out.Patient = struct {
			Index        int         `json:"index"`
			Name         string      `json:"name,omitempty"`
			Observations int         `json:"observations"`
			Summary      summaryJSON `json:"summary"`
		}{rep.Patient.Index, rep.Patient.Name, rep.Patient.Observations, toJSON(rep.Patient.Summary)}
	}
	if rep.Normalised != nil {
		for _, row := range rep.Normalised.Rows() {
			out.Normalised = append(out.Normalised, numbers(row))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(w io.Writer, rep report, precision int) error {
	cw := csv.NewWriter(w)
	format := func(v number) string {
		return strconv.FormatFloat(float64(v), 'f', precision, 64)
	}

	cw.Write([]string{"file", "day", "mean", "min", "max", "std"})
	for j := 0; j < rep.Days; j++ {
		cw.Write([]string{rep.File, strconv.Itoa(j), format(rep.Mean[j]), format(rep.Min[j]), format(rep.Max[j]), format(rep.Std[j])})
	}

	if rep.Normalised != nil {
		cw.Flush()
		fmt.Fprintln(w)
		if err := table.WriteCSV(rep.Normalised, w); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeText(w io.Writer, rep report, precision int) error {
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	fmt.Fprintf(w, "%s: %d patients x %d days\n\n", rep.File, rep.Patients, rep.Days)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "day\tmean\tmin\tmax\tstd\t")
	for j := 0; j < rep.Days; j++ {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", j,
			f(float64(rep.Mean[j])), f(float64(rep.Min[j])), f(float64(rep.Max[j])), f(float64(rep.Std[j])))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(rep.Describe) > 0 {
		fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "day\tn\tmissing\tmin\tq1\tmedian\tq3\tmax\t")
		for j, s := range rep.Describe {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t\n", j, s.N, s.Missing,
				f(s.Min), f(s.Q1), f(s.Median), f(s.Q3), f(s.Max))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if p := rep.Patient; p != nil {
		label := fmt.Sprintf("patient %d", p.Index)
		if p.Name != "" {
			label += " (" + p.Name + ")"
		}
		s := p.Summary
		fmt.Fprintf(w, "\n%s: %d observations, mean=%s std=%s min=%s median=%s max=%s\n",
			label, p.Observations, f(s.Mean), f(s.StdDev), f(s.Min), f(s.Median), f(s.Max))
	}

	if rep.Normalised != nil {
		fmt.Fprintf(w, "\nnormalised:\n")
		for _, row := range rep.Normalised.Rows() {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = f(v)
			}
			fmt.Fprintln(w, strings.Join(cells, " "))
		}
	}

	fmt.Fprintln(w)
	return nil
}
