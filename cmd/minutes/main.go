package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/dataset"
	"github.com/nguyentantai21042004/meeting-minutes/internal/evaluation"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-minutes/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-minutes/internal/watcher"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "minutes",
		Short:        "Meeting transcript summarizer and action-item extractor",
		Long:         "Minutes summarizes meeting transcripts with a local or hosted chat model and grades the results with an LLM judge.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "config.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a .env file loaded before the configuration")

	rootCmd.AddCommand(newSummarizeCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newEvalCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the .env file, the configuration and the logger.
func setup(cmd *cobra.Command) (*config.Config, logger.Logger, error) {
	configPath, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, logger.New(cfg.Logging.Level), nil
}

func newSummarizer(cfg *config.Config, log logger.Logger) summarizer.Summarizer {
	return summarizer.New(cfg.Backend(), log,
		summarizer.WithSummaryPrompt(cfg.Prompts.Summary),
		summarizer.WithActionItemPrompt(cfg.Prompts.ActionItems),
		summarizer.WithCodeFenceStripping(cfg.Extraction.StripCodeFences),
	)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func newSummarizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <transcript.txt>",
		Short: "Summarize one transcript and print the summary and action items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}

			ctx, cancel := signalContext()
			defer cancel()

			summary, items := newSummarizer(cfg, log).Summarize(ctx, string(content))
			record, err := items.JSON()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, summary.Text)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "JSON:")
			fmt.Fprintln(out, record)
			return nil
		},
	}
}

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Process every transcript currently in the input folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			p := pipeline.New(cfg, newSummarizer(cfg, log), log)
			return p.ProcessDir(ctx, cfg.Paths.Input)
		},
	}
}

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input folder and process new transcripts as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			p := pipeline.New(cfg, newSummarizer(cfg, log), log)
			w, err := watcher.New(cfg.Paths.Input, p.Process, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer w.Stop()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				errChan <- w.Start(ctx)
			}()

			log.Info(ctx, "Execution mode: %s", cfg.Execution.Mode)
			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				if err != nil && !errors.Is(err, context.Canceled) {
					return fmt.Errorf("watcher: %w", err)
				}
				return nil
			}

			cancel()
			if err := <-errChan; err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("watcher: %w", err)
			}
			log.Info(ctx, "Watcher stopped")
			return nil
		},
	}
}

func newEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Summarize the evaluation dataset and grade it against the suite metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suitePath, _ := cmd.Flags().GetString("suite")

			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			suite, err := evaluation.LoadSuite(suitePath)
			if err != nil {
				return err
			}

			metrics, err := suite.BuildMetrics(evaluation.NewBuilder(cfg.Backend(), log))
			if err != nil {
				return err
			}

			goldens, err := loadGoldens(suite, cfg)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			cases, err := dataset.BuildCases(ctx, goldens, newSummarizer(cfg, log))
			if err != nil {
				return err
			}

			evaluator := evaluation.NewEvaluator(log)
			var failures []error
			for _, target := range evaluation.Targets {
				if len(metrics[target]) == 0 || len(cases[target]) == 0 {
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "\n== %s ==\n", target)
				report, err := evaluator.Evaluate(ctx, cases[target], metrics[target])
				if err != nil {
					return fmt.Errorf("evaluate %s: %w", target, err)
				}
				if err := evaluation.Render(cmd.OutOrStdout(), report); err != nil {
					return err
				}
				if err := report.Err(); err != nil {
					failures = append(failures, fmt.Errorf("%s: %w", target, err))
				}
			}

			return errors.Join(failures...)
		},
	}

	cmd.Flags().String("suite", "suite.yaml", "Path to the evaluation suite")
	return cmd
}

// loadGoldens reads the suite's transcript folder (paths.input when unset)
// and its goldens file, if any.
func loadGoldens(suite *evaluation.Suite, cfg *config.Config) ([]dataset.Golden, error) {
	dir := suite.Transcripts
	if dir == "" && suite.Goldens == "" {
		dir = cfg.Paths.Input
	}

	var goldens []dataset.Golden
	if dir != "" {
		transcripts, err := dataset.LoadTranscripts(dir)
		if err != nil {
			return nil, err
		}
		goldens = append(goldens, transcripts...)
	}
	if suite.Goldens != "" {
		more, err := dataset.LoadGoldens(suite.Goldens)
		if err != nil {
			return nil, err
		}
		goldens = append(goldens, more...)
	}
	return goldens, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
