package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen one resume or a directory of resumes against job rules",
	Long: `Evaluates resume files against a job rules JSON file and prints the
decision, score and explanation for each as JSON.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runScreen,
}

var (
	screenConfigPath  string
	screenRules       string
	screenResume      string
	screenResumeDir   string
	screenVocabulary  string
	screenOutput      string
	screenPretty      bool
	screenConcurrency int
	screenVerbose     bool
)

func init() {
	screenCmd.Flags().StringVar(&screenConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	screenCmd.Flags().StringVarP(&screenRules, "rules", "r", "", "Path to job rules JSON file (required)")
	screenCmd.Flags().StringVarP(&screenResume, "resume", "i", "", "Path to a single resume file (mutually exclusive with --resume-dir)")
	screenCmd.Flags().StringVarP(&screenResumeDir, "resume-dir", "d", "", "Directory of resumes to screen (mutually exclusive with --resume)")
	screenCmd.Flags().StringVar(&screenVocabulary, "vocabulary", "", "Path to a custom extraction vocabulary JSON file")
	screenCmd.Flags().StringVarP(&screenOutput, "out", "o", "", "Path to write results JSON (default: stdout)")
	screenCmd.Flags().BoolVar(&screenPretty, "pretty", false, "Indent result JSON")
	screenCmd.Flags().IntVar(&screenConcurrency, "concurrency", 0, "Parallel workers for batch screening")
	screenCmd.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(screenCmd)
}

// batchResult is one line of batch output: the source file plus either its
// evaluation or the error that prevented one.
type batchResult struct {
	File   string                  `json:"file"`
	Result *types.EvaluationResult `json:"result,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

func runScreen(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if screenConfigPath != "" {
		loadedCfg, err := config.LoadConfig(screenConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if screenVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", screenConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("rules") {
		cfg.Rules = screenRules
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = screenResume
	}
	if cmd.Flags().Changed("resume-dir") {
		cfg.ResumeDir = screenResumeDir
	}
	if cmd.Flags().Changed("vocabulary") {
		cfg.Vocabulary = screenVocabulary
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = screenOutput
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Pretty = screenPretty
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = screenConcurrency
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = screenVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{Concurrency: 4})

	// Step 4: Validate required fields
	if cfg.Rules == "" {
		return fmt.Errorf("--rules is required (via flag or config)")
	}
	if cfg.Resume == "" && cfg.ResumeDir == "" {
		return fmt.Errorf("either --resume or --resume-dir must be provided (via flag or config)")
	}
	if cfg.Resume != "" && cfg.ResumeDir != "" {
		return fmt.Errorf("--resume and --resume-dir are mutually exclusive; provide only one")
	}

	jobRules, err := loadRules(cfg.Rules)
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg.Vocabulary)
	if err != nil {
		return err
	}

	var printer *observability.Printer
	if cfg.Verbose {
		printer = observability.NewPrinter(os.Stderr)
	}

	if cfg.Resume != "" {
		result, err := screenFile(engine, cfg.Resume, jobRules, printer)
		if err != nil {
			return err
		}
		if printer != nil {
			printer.PrintEvaluation(result)
		}
		return writeResult(cfg, result)
	}

	results, err := screenDirectory(engine, cfg, jobRules)
	if err != nil {
		return err
	}
	if printer != nil {
		var selected, rejected, failed int
		for _, r := range results {
			switch {
			case r.Error != "":
				failed++
			case r.Result.Decision == types.DecisionSelected:
				selected++
			default:
				rejected++
			}
		}
		printer.PrintBatchSummary(len(results), selected, rejected, failed)
	}
	return writeResult(cfg, results)
}

// loadRules reads a rules file and runs it through schema validation before
// decoding, so shape errors surface with field paths instead of as silent
// zero values.
func loadRules(path string) (*types.JobRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	if err := schemas.ValidateJobRulesJSON(data); err != nil {
		return nil, err
	}

	var jobRules types.JobRules
	if err := json.Unmarshal(data, &jobRules); err != nil {
		return nil, fmt.Errorf("failed to parse rules JSON: %w", err)
	}

	if err := screening.ValidateRules(&jobRules); err != nil {
		return nil, err
	}

	return &jobRules, nil
}

func buildEngine(vocabularyPath string) (*screening.Engine, error) {
	if vocabularyPath == "" {
		return screening.NewEngine(), nil
	}

	vocab, err := extraction.LoadVocabulary(vocabularyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return screening.NewEngineWithVocabulary(vocab), nil
}

func screenFile(engine *screening.Engine, path string, jobRules *types.JobRules, printer *observability.Printer) (*types.EvaluationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	mimeType := ingestion.MimeTypeForExtension(filepath.Ext(path))
	if mimeType == "" {
		return nil, &ingestion.UnsupportedFormatError{
			MimeType: filepath.Ext(path),
			Reason:   "unrecognized file extension",
		}
	}

	text, err := ingestion.ExtractText(data, mimeType)
	if err != nil {
		return nil, err
	}

	if printer != nil {
		printer.PrintProfile(engine.ExtractProfile(text, jobRules))
	}

	return engine.Screen(text, jobRules)
}

// screenDirectory screens every supported file directly under the configured
// directory with a bounded worker pool. Per-file failures are reported in the
// output rather than aborting the batch.
func screenDirectory(engine *screening.Engine, cfg config.Config, jobRules *types.JobRules) ([]batchResult, error) {
	entries, err := os.ReadDir(cfg.ResumeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ingestion.MimeTypeForExtension(filepath.Ext(entry.Name())) == "" {
			if cfg.Verbose {
				_, _ = fmt.Fprintf(os.Stderr, "Skipping %s: unsupported extension\n", entry.Name())
			}
			continue
		}
		files = append(files, filepath.Join(cfg.ResumeDir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no supported resume files found in %s", cfg.ResumeDir)
	}

	var (
		mu      sync.Mutex
		results = make([]batchResult, 0, len(files))
	)

	var g errgroup.Group
	g.SetLimit(cfg.Concurrency)

	for _, file := range files {
		g.Go(func() error {
			result, err := screenFile(engine, file, jobRules, nil)

			entry := batchResult{File: file, Result: result}
			if err != nil {
				entry.Error = err.Error()
				if cfg.Verbose {
					_, _ = fmt.Fprintf(os.Stderr, "Failed to screen %s: %v\n", file, err)
				}
			}

			mu.Lock()
			results = append(results, entry)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Worker completion order is nondeterministic; sort for stable output.
	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })
	return results, nil
}

func writeResult(cfg config.Config, v any) error {
	var (
		data []byte
		err  error
	)
	if cfg.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	data = append(data, '\n')

	if cfg.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", cfg.Output, err)
	}
	if cfg.Verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Results written to: %s\n", cfg.Output)
	}
	return nil
}
