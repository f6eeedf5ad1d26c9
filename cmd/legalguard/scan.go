package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/NeuralTrust/LegalGuard/pkg/app/review"
	"github.com/NeuralTrust/LegalGuard/pkg/dependency_container"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	infraLogger "github.com/NeuralTrust/LegalGuard/pkg/infra/logger"
	safetyMonitor "github.com/NeuralTrust/LegalGuard/pkg/safety"
	"github.com/spf13/cobra"
)

const stdinSource = "-"

var ErrLevelExceeded = errors.New("scan found outputs at or above the failure level")

var (
	scanRewrite     bool
	scanContentType string
	scanFailOn      string
)

var scanCmd = &cobra.Command{
	Use:   "scan [files...]",
	Short: "Review AI outputs from files or stdin and print the results as JSON",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanRewrite, "rewrite", false, "rewrite advisory text as general information")
	scanCmd.Flags().StringVar(&scanContentType, "content-type", "", "content type hint, e.g. client_communication")
	scanCmd.Flags().StringVar(&scanFailOn, "fail-on", "", "exit non-zero when any output reaches this level (WARNING, DANGER, CRITICAL)")
	rootCmd.AddCommand(scanCmd)
}

type ScanInput struct {
	Source string
	Text   string
}

type ScanResult struct {
	Source string         `json:"source"`
	Review *review.Result `json:"review"`
}

type ScanReport struct {
	Results []ScanResult                 `json:"results"`
	Status  safetyMonitor.StatusSnapshot `json:"status"`
}

func runScan(cmd *cobra.Command, args []string) error {
	var failOn *safety.Level
	if scanFailOn != "" {
		level, err := safety.ParseLevel(scanFailOn)
		if err != nil {
			return err
		}
		failOn = &level
	}

	cfg, logger, err := loadConfig("scan", infraLogger.WithoutFile(), infraLogger.WithConsole(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:              cfg,
		Logger:           logger,
		WithoutExporters: true,
	})
	if err != nil {
		return err
	}
	defer container.Close(logger)

	inputs, err := readInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var hints safety.Hints
	if scanContentType != "" {
		hints = safety.Hints{safetyMonitor.HintContentType: scanContentType}
	}

	report, err := scan(cmd.Context(), container.Reviewer, container.Monitor, inputs, hints, scanRewrite)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}

	if failOn != nil && report.MaxLevel() >= *failOn {
		return fmt.Errorf("%w: %s", ErrLevelExceeded, report.MaxLevel())
	}
	return nil
}

// scan reviews every input in order against one monitor, so the status
// snapshot covers the whole run.
func scan(
	ctx context.Context,
	reviewer review.Reviewer,
	monitor *safetyMonitor.Monitor,
	inputs []ScanInput,
	hints safety.Hints,
	rewrite bool,
) (*ScanReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	report := &ScanReport{Results: make([]ScanResult, 0, len(inputs))}
	for _, in := range inputs {
		result, err := reviewer.Review(ctx, review.Request{
			Text:    in.Text,
			Hints:   hints,
			Rewrite: rewrite,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to review %s: %w", in.Source, err)
		}
		report.Results = append(report.Results, ScanResult{Source: in.Source, Review: result})
	}
	report.Status = monitor.StatusSnapshot()
	return report, nil
}

func (r *ScanReport) MaxLevel() safety.Level {
	level := safety.LevelSafe
	for _, res := range r.Results {
		if res.Review != nil && res.Review.Safety.Level > level {
			level = res.Review.Safety.Level
		}
	}
	return level
}

func readInputs(stdin io.Reader, paths []string) ([]ScanInput, error) {
	if len(paths) == 0 {
		paths = []string{stdinSource}
	}
	inputs := make([]ScanInput, 0, len(paths))
	for _, path := range paths {
		var (
			data []byte
			err  error
		)
		if path == stdinSource {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		inputs = append(inputs, ScanInput{Source: path, Text: string(data)})
	}
	return inputs, nil
}
