package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/atamiles/vlures-bench/internal/api"
	"github.com/atamiles/vlures-bench/internal/checkpoint"
	"github.com/atamiles/vlures-bench/internal/config"
	"github.com/atamiles/vlures-bench/internal/download"
	"github.com/atamiles/vlures-bench/internal/evaluation"
	"github.com/atamiles/vlures-bench/internal/inference"
	"github.com/atamiles/vlures-bench/internal/metrics"
	"github.com/atamiles/vlures-bench/internal/prompts"
	"github.com/atamiles/vlures-bench/internal/runlog"
	"github.com/atamiles/vlures-bench/pkg/models"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	configPath  string
	envFile     string
	verbose     bool
	metricsAddr string

	dataDir       string
	outputDir     string
	checkpointDir string

	language    string
	task        int
	setting     string
	model       string
	workers     int
	maxTokens   int
	temperature float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vlures",
		Short: "VLURes - Vision-Language Understanding benchmark harness",
		Long: `vlures runs the VLURes benchmark end to end: downloading the multilingual
image/text dataset, querying a vision-language model under different
prompting settings, and scoring the responses with an LLM judge.

All long-running pipelines checkpoint their progress and resume where they
left off when re-invoked.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to environment file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Address to expose Prometheus metrics on (e.g. :2112; disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the configured data directory")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Override the configured inference output directory")
	rootCmd.PersistentFlags().StringVar(&checkpointDir, "checkpoint-dir", "", "Override the configured checkpoint directory")

	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download the benchmark dataset",
		Long: `Download every split of the benchmark dataset into the local data
directory. Already-present images are skipped, so an interrupted download
can simply be re-run.`,
		RunE: runDownload,
	}
	downloadCmd.Flags().IntVar(&workers, "workers", 0, "Override the configured download worker count")

	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Run VLM inference for one language/task/setting",
		Long: `Query the configured vision-language model for one language, task and
prompting setting. Tasks 1-5 are image-only and processed in batches;
tasks 6-8 pair each image with its associated text and run item by item.
Progress is checkpointed and the run resumes from the checkpoint when
re-invoked with the same parameters.`,
		RunE: runInference,
	}
	inferCmd.Flags().StringVar(&language, "language", "", "Language to process (English, Japanese, Swahili, Urdu)")
	inferCmd.Flags().IntVar(&task, "task", 0, "Task number to run (1-8)")
	inferCmd.Flags().StringVar(&setting, "setting", string(models.SettingZeroShot), "Prompting setting (zeroshot_no_rationales or zeroshot_with_rationales)")
	inferCmd.Flags().StringVar(&model, "model", "", "Model name for output files (defaults to the configured VLM model)")
	inferCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Override the configured VLM max tokens")
	inferCmd.Flags().Float64Var(&temperature, "temperature", 0, "Override the configured VLM temperature")
	_ = inferCmd.MarkFlagRequired("language")
	_ = inferCmd.MarkFlagRequired("task")

	evaluateCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score inference outputs with the LLM judge",
		Long: `Score every inference output file for a model and language with the
configured judge model. Each response receives a 0-100 quality score;
scoring is checkpointed per file and resumes on re-invocation.`,
		RunE: runEvaluation,
	}
	evaluateCmd.Flags().StringVar(&language, "language", "", "Language of the outputs to evaluate")
	evaluateCmd.Flags().StringVar(&model, "model-to-evaluate", "", "Name of the VLM whose outputs are to be evaluated")
	_ = evaluateCmd.MarkFlagRequired("language")
	_ = evaluateCmd.MarkFlagRequired("model-to-evaluate")

	checkpointCmd := &cobra.Command{
		Use:   "checkpoint",
		Short: "Manage checkpoints",
		Long:  "Inspect and list checkpoints of interrupted runs",
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all checkpoints",
		Long:  "List every checkpoint file in the checkpoint directory with its item count",
		RunE:  listCheckpoints,
	}
	inspectCmd := &cobra.Command{
		Use:   "inspect <checkpoint-file>",
		Short: "Inspect a checkpoint",
		Long:  "Display the completed item ids recorded in a checkpoint file",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectCheckpoint,
	}
	checkpointCmd.AddCommand(listCmd)
	checkpointCmd.AddCommand(inspectCmd)

	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(checkpointCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the env file and configuration and wires up logging and
// metrics. The returned cleanup closes the log file.
func setup() (*config.Config, *config.Secrets, *slog.Logger, *metrics.Collector, func(), error) {
	if envFile != "" {
		if err := config.LoadEnvFile(envFile); err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Warning: failed to load env file: %v\n", err)
			}
		} else if verbose {
			fmt.Fprintf(os.Stderr, "Loaded env file: %s\n", envFile)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if dataDir != "" {
		cfg.Paths.DataDir = dataDir
	}
	if outputDir != "" {
		cfg.Paths.OutputDir = outputDir
	}
	if checkpointDir != "" {
		cfg.Paths.CheckpointDir = checkpointDir
	}
	secrets := config.LoadSecrets()

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger, logFile, err := runlog.Setup(cfg.Paths.LogDir, logLevel)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	cleanup := func() {
		_ = logFile.Sync()
		_ = logFile.Close()
	}

	collector := metrics.NewCollector(logger)
	if metricsAddr != "" {
		collector.Serve(metricsAddr)
		logger.Info("Metrics endpoint enabled", "addr", metricsAddr)
	}

	// Validate the prompt tables up front so a broken catalog fails the run
	// before any network traffic.
	if err := prompts.ValidateAll(); err != nil {
		cleanup()
		return nil, nil, nil, nil, nil, fmt.Errorf("prompt catalog validation failed: %w", err)
	}

	return cfg, secrets, logger, collector, cleanup, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runDownload(cmd *cobra.Command, args []string) error {
	cfg, _, logger, collector, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	if cmd.Flags().Changed("workers") {
		cfg.Download.Workers = workers
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	ctx, stop := signalContext()
	defer stop()

	logger.Info("vlures download starting",
		"version", Version,
		"repo", cfg.Download.DatasetRepo,
		"data_dir", cfg.Paths.DataDir)

	d := download.NewDownloader(cfg.Download, cfg.Retry, logger, collector)
	stats, err := d.Run(ctx, cfg.Paths.DataDir)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("Download interrupted - re-run to resume",
				"downloaded", stats.Succeeded)
			return fmt.Errorf("download interrupted")
		}
		return fmt.Errorf("download failed: %w", err)
	}

	logger.Info("Download complete",
		"total", stats.Total,
		"downloaded", stats.Succeeded,
		"failed", stats.Failed,
		"duration", stats.Duration)
	return nil
}

func runInference(cmd *cobra.Command, args []string) error {
	cfg, secrets, logger, collector, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	if secrets.VLMAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	if _, err := prompts.ForSetting(models.PromptSetting(setting)); err != nil {
		return err
	}
	if model == "" {
		model = cfg.VLM.Model
	}
	if cmd.Flags().Changed("max-tokens") {
		cfg.VLM.MaxTokens = maxTokens
	}
	if cmd.Flags().Changed("temperature") {
		cfg.VLM.Temperature = temperature
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	scope := models.RunScope{
		Language: language,
		Task:     task,
		Setting:  models.PromptSetting(setting),
		Model:    model,
	}

	ctx, stop := signalContext()
	defer stop()

	logger.Info("vlures infer starting",
		"version", Version,
		"scope", scope.String())

	client := api.NewVLMClient(cfg.VLM, secrets.VLMAPIKey, logger)
	runner := inference.NewRunner(cfg, client, logger, collector)

	stats, err := runner.Run(ctx, scope)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("Inference interrupted - re-run with the same parameters to resume",
				"completed", stats.Succeeded)
			return fmt.Errorf("inference interrupted")
		}
		return fmt.Errorf("inference failed: %w", err)
	}

	logger.Info("Inference complete",
		"scope", scope.String(),
		"total", stats.Total,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"already_done", stats.Skipped,
		"duration", stats.Duration)
	return nil
}

func runEvaluation(cmd *cobra.Command, args []string) error {
	cfg, secrets, logger, collector, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	if secrets.JudgeAPIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY environment variable not set")
	}

	ctx, stop := signalContext()
	defer stop()

	logger.Info("vlures evaluate starting",
		"version", Version,
		"model", model,
		"language", language)

	client := api.NewJudgeClient(cfg.Judge, secrets.JudgeAPIKey, logger)
	evaluator := evaluation.NewEvaluator(cfg, client, logger, collector)

	stats, err := evaluator.Run(ctx, model, language)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("Evaluation interrupted - re-run to resume",
				"scored", stats.Succeeded)
			return fmt.Errorf("evaluation interrupted")
		}
		return fmt.Errorf("evaluation failed: %w", err)
	}

	logger.Info("Evaluation complete",
		"total", stats.Total,
		"scored", stats.Succeeded,
		"defaulted", stats.Defaulted,
		"failed", stats.Failed,
		"already_done", stats.Skipped,
		"duration", stats.Duration)
	return nil
}

func listCheckpoints(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	entries, err := os.ReadDir(cfg.Paths.CheckpointDir)
	if os.IsNotExist(err) {
		fmt.Println("No checkpoints found.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read checkpoint directory: %w", err)
	}

	found := false
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, checkpoint.CheckpointPrefix) {
			continue
		}
		path := filepath.Join(cfg.Paths.CheckpointDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("  %s (unreadable: %v)\n", name, err)
			continue
		}
		ids, _, err := checkpoint.DecodeOrdered(data)
		if err != nil {
			fmt.Printf("  %s (corrupt: %v)\n", name, err)
			continue
		}
		if !found {
			fmt.Printf("Checkpoints in %s:\n", cfg.Paths.CheckpointDir)
			found = true
		}
		info, _ := entry.Info()
		fmt.Printf("  %s  items=%d  modified=%s\n", name, len(ids), info.ModTime().Format("2006-01-02 15:04:05"))
	}
	if !found {
		fmt.Println("No checkpoints found.")
	}
	return nil
}

func inspectCheckpoint(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read checkpoint: %w", err)
	}
	ids, _, err := checkpoint.DecodeOrdered(data)
	if err != nil {
		return fmt.Errorf("corrupt checkpoint: %w", err)
	}

	fmt.Printf("Checkpoint: %s\n", filepath.Base(path))
	fmt.Printf("Completed items: %d\n", len(ids))
	if len(ids) > 0 {
		fmt.Printf("First id: %s\n", ids[0])
		fmt.Printf("Last id:  %s\n", ids[len(ids)-1])
	}
	return nil
}
