package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/handiism/ostep-downloader/internal/config"
	"github.com/handiism/ostep-downloader/internal/download"
	"github.com/spf13/cobra"
)

type options struct {
	url        string
	output     string
	configPath string
	workers    int
	verbose    bool
	dryRun     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ostep-dl [url]",
		Short: "Download every PDF linked from the OSTEP index page",
		Long: "ostep-dl fetches an index page, extracts the linked PDF documents and\n" +
			"downloads them concurrently into a fresh local directory.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && opts.url == "" {
				opts.url = args[0]
			}
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.url, "url", "", "Index URL (overrides config)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output directory (overrides config, reset on every run)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to config file (.json, .yaml)")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Number of parallel downloads (default: one per CPU)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Fetch and parse the index without downloading documents")

	return cmd
}

func loadSettings(opts *options) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if opts.configPath != "" {
		var err error
		settings, err = config.Load(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	// Apply flags
	if opts.url != "" {
		settings.BaseURL = opts.url
	}
	if opts.output != "" {
		settings.DestDir = opts.output
	}
	if opts.workers > 0 {
		settings.MaxConcurrentDownloads = opts.workers
	}

	return settings, settings.Validate()
}

func run(ctx context.Context, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !opts.verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "[error] "
		case download.LevelWarning:
			prefix = "[warn]  "
		case download.LevelSuccess:
			prefix = "[ok]    "
		case download.LevelInfo:
			prefix = "[info]  "
		default:
			prefix = "        "
		}

		mu.Lock()
		defer mu.Unlock()
		fmt.Println(prefix + event.Message)
	})

	fmt.Println("OSTEP Downloader")
	fmt.Printf("Index: %s\n", settings.BaseURL)
	fmt.Printf("Output: %s (%d workers)\n", settings.DestDir, settings.Workers())
	fmt.Println()

	if err := manager.Initialize(ctx); err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Println("\n[Dry run - not downloading]")
		for _, doc := range manager.Documents() {
			fmt.Printf("  %s <- %s\n", doc.DisplayName(), doc.SourceURL(settings.BaseURL))
		}
		return nil
	}

	result := manager.StartDownloads(ctx)

	fmt.Println()
	fmt.Println(result)
	return nil
}
