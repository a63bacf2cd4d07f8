/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
	"github.com/budistudiobank-hash/tanggap-cinta-anak/pregnancy"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"

	batchWorkers = 8
)

func newOutputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   outputText,
		Usage:   "output format: text, json or yaml",
		Validator: func(v string) error {
			switch v {
			case outputText, outputJSON, outputYAML:
				return nil
			default:
				return fmt.Errorf("%w: %q", errUnknownOutputFormat, v)
			}
		},
	}
}

var CmdAssess = newAssessCommand()

// newAssessCommand builds the assess command tree. Each call returns fresh
// flag state.
func newAssessCommand() *cli.Command {
	return &cli.Command{
		Name:  "assess",
		Usage: "Score measurements from the command line",
		Commands: []*cli.Command{
			{
				Name:  "child",
				Usage: "Compute growth Z-scores for one child",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "age", Usage: "age in months", Required: true},
					&cli.StringFlag{Name: "sex", Usage: "male or female", Required: true},
					&cli.FloatFlag{Name: "height", Usage: "height in cm", Required: true},
					&cli.FloatFlag{Name: "weight", Usage: "weight in kg", Required: true},
					newOutputFlag(),
				},
				Action: assessChild,
			},
			{
				Name:  "pregnancy",
				Usage: "Assess maternal stunting risk factors",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "mother-age", Usage: "mother's age in years", Required: true},
					&cli.IntFlag{Name: "weeks", Usage: "pregnancy week", Required: true},
					&cli.FloatFlag{Name: "height", Usage: "mother's height in cm", Required: true},
					&cli.FloatFlag{Name: "pre-weight", Usage: "weight before pregnancy in kg", Required: true},
					&cli.FloatFlag{Name: "current-weight", Usage: "current weight in kg", Required: true},
					&cli.BoolFlag{Name: "iron-folic", Usage: "taking iron and folic acid supplements"},
					&cli.IntFlag{Name: "anc-visits", Usage: "antenatal care visits so far", Required: true},
					newOutputFlag(),
				},
				Action: assessPregnancy,
			},
			{
				Name:  "batch",
				Usage: "Score every entry of a YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "YAML input file, - for stdin", Required: true},
					newOutputFlag(),
				},
				Action: assessBatch,
			},
		},
	}
}

// ChildReport is the CLI output for one child measurement.
type ChildReport struct {
	Input        growth.MeasurementInput `json:"input" yaml:"input"`
	Scores       growth.ScoreResult      `json:"scores" yaml:"scores"`
	IdealWeight  growth.WeightRange      `json:"ideal_weight" yaml:"ideal_weight"`
	WeightStatus growth.WeightStatus     `json:"weight_status" yaml:"weight_status"`
}

// PregnancyReport is the CLI output for one pregnancy assessment.
type PregnancyReport struct {
	Input      pregnancy.Input      `json:"input" yaml:"input"`
	Assessment pregnancy.Assessment `json:"assessment" yaml:"assessment"`
}

// BatchFile is the YAML layout read by "assess batch".
type BatchFile struct {
	Children    []growth.MeasurementInput `yaml:"children"`
	Pregnancies []pregnancy.Input         `yaml:"pregnancies"`
}

// BatchReport holds the batch results in input order.
type BatchReport struct {
	Children    []ChildReport     `json:"children" yaml:"children"`
	Pregnancies []PregnancyReport `json:"pregnancies" yaml:"pregnancies"`
}

func outputWriter(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}

	return os.Stdout
}

func buildChildReport(in growth.MeasurementInput) (ChildReport, error) {
	sex, err := growth.ParseSex(string(in.Sex))
	if err != nil {
		return ChildReport{}, err
	}
	in.Sex = sex

	if err := in.Validate(); err != nil {
		return ChildReport{}, err
	}

	return ChildReport{
		Input:        in,
		Scores:       in.Score(),
		IdealWeight:  growth.IdealWeightRange(in.AgeMonths, in.Sex),
		WeightStatus: growth.ClassifyWeightStatus(in.Weight, in.AgeMonths, in.Sex),
	}, nil
}

func buildPregnancyReport(in pregnancy.Input) (PregnancyReport, error) {
	if err := in.Validate(); err != nil {
		return PregnancyReport{}, err
	}

	return PregnancyReport{Input: in, Assessment: pregnancy.Assess(in)}, nil
}

func assessChild(_ context.Context, cmd *cli.Command) error {
	report, err := buildChildReport(growth.MeasurementInput{
		AgeMonths: cmd.Float("age"),
		Sex:       growth.Sex(cmd.String("sex")),
		Height:    cmd.Float("height"),
		Weight:    cmd.Float("weight"),
	})
	if err != nil {
		return err
	}

	return writeReport(outputWriter(cmd), cmd.String("output"), report)
}

func assessPregnancy(_ context.Context, cmd *cli.Command) error {
	report, err := buildPregnancyReport(pregnancy.Input{
		MotherAge:          cmd.Float("mother-age"),
		PregnancyWeeks:     int(cmd.Int("weeks")),
		MotherHeight:       cmd.Float("height"),
		PrePregnancyWeight: cmd.Float("pre-weight"),
		CurrentWeight:      cmd.Float("current-weight"),
		IronFolicIntake:    cmd.Bool("iron-folic"),
		ANCVisits:          int(cmd.Int("anc-visits")),
	})
	if err != nil {
		return err
	}

	return writeReport(outputWriter(cmd), cmd.String("output"), report)
}

func assessBatch(ctx context.Context, cmd *cli.Command) error {
	batch, err := readBatchFile(cmd.String("file"))
	if err != nil {
		return err
	}

	report, err := runBatch(ctx, batch)
	if err != nil {
		return err
	}

	cliLogger.Info("Batch scored", "children", len(report.Children), "pregnancies", len(report.Pregnancies))

	return writeReport(outputWriter(cmd), cmd.String("output"), report)
}

func readBatchFile(path string) (BatchFile, error) {
	var r io.Reader

	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return BatchFile{}, fmt.Errorf("failed to open batch file: %w", err)
		}
		defer f.Close()

		r = f
	}

	return decodeBatch(r)
}

func decodeBatch(r io.Reader) (BatchFile, error) {
	var batch BatchFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&batch); err != nil {
		if errors.Is(err, io.EOF) {
			return batch, errEmptyBatch
		}

		return batch, fmt.Errorf("failed to parse batch file: %w", err)
	}

	if len(batch.Children) == 0 && len(batch.Pregnancies) == 0 {
		return batch, errEmptyBatch
	}

	return batch, nil
}

// runBatch scores all entries concurrently. The first invalid entry aborts
// the run and is reported with its position.
func runBatch(ctx context.Context, batch BatchFile) (BatchReport, error) {
	report := BatchReport{
		Children:    make([]ChildReport, len(batch.Children)),
		Pregnancies: make([]PregnancyReport, len(batch.Pregnancies)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)

	for i, in := range batch.Children {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r, err := buildChildReport(in)
			if err != nil {
				return fmt.Errorf("children[%d]: %w", i, err)
			}

			report.Children[i] = r
			return nil
		})
	}

	for i, in := range batch.Pregnancies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r, err := buildPregnancyReport(in)
			if err != nil {
				return fmt.Errorf("pregnancies[%d]: %w", i, err)
			}

			report.Pregnancies[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return BatchReport{}, err
	}

	return report, nil
}

func writeReport(w io.Writer, format string, report any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(report)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return enc.Close()
	case outputText, "":
		return writeText(w, report)
	default:
		return fmt.Errorf("%w: %q", errUnknownOutputFormat, format)
	}
}

func writeText(w io.Writer, report any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	switch r := report.(type) {
	case ChildReport:
		writeChildText(tw, r)
	case PregnancyReport:
		writePregnancyText(tw, r)
	case BatchReport:
		for i, c := range r.Children {
			fmt.Fprintf(tw, "# child %d\n", i+1)
			writeChildText(tw, c)
			fmt.Fprintln(tw)
		}

		for i, p := range r.Pregnancies {
			fmt.Fprintf(tw, "# pregnancy %d\n", i+1)
			writePregnancyText(tw, p)
			fmt.Fprintln(tw)
		}
	default:
		return fmt.Errorf("%w: %T", errUnknownOutputFormat, report)
	}

	return tw.Flush()
}

func writeChildText(w io.Writer, r ChildReport) {
	fmt.Fprintf(w, "Age\t%.1f months\n", r.Input.AgeMonths)
	fmt.Fprintf(w, "Sex\t%s\n", r.Input.Sex)
	fmt.Fprintf(w, "HAZ\t%s\n", formatZScore(r.Scores.HAZ))
	fmt.Fprintf(w, "WAZ\t%s\n", formatZScore(r.Scores.WAZ))
	fmt.Fprintf(w, "WHZ\t%s\n", formatZScore(r.Scores.WHZ))
	fmt.Fprintf(w, "Status\t%s (%s)\n", r.Scores.Status, r.Scores.RiskColor)
	fmt.Fprintf(w, "Ideal weight\t%.1f-%.1f kg\n", r.IdealWeight.Min, r.IdealWeight.Max)
	fmt.Fprintf(w, "Weight status\t%s\n", r.WeightStatus.Label)
}

func writePregnancyText(w io.Writer, r PregnancyReport) {
	fmt.Fprintf(w, "Risk level\t%s\n", r.Assessment.Level)
	fmt.Fprintf(w, "Score\t%d\n", r.Assessment.Score)

	if len(r.Assessment.Factors) > 0 {
		fmt.Fprintf(w, "Factors\t%s\n", strings.Join(r.Assessment.Factors, "; "))
	}

	for _, rec := range r.Assessment.Recommendations {
		fmt.Fprintf(w, "-\t%s\n", rec)
	}
}
