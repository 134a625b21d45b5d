package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/farrago/flickr-backup/internal/config"
	"github.com/farrago/flickr-backup/internal/organize"
)

var version = "development"

func main() {
	// Command line flags
	var (
		outputFlag   = flag.String("output", "", "Output directory (defaults to the photos directory)")
		manifestFlag = flag.String("manifest", "", "Directory containing albums.json (defaults to the photos directory)")
		configFlag   = flag.String("config", "", "Path to config file")
		unicodeFlag  = flag.Bool("unicode", false, "Keep unicode characters in album directory names")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag   = flag.Bool("dry-run", false, "Match and report without copying anything")
		versionFlag  = flag.Bool("version", false, "Print version and exit")
	)

	flag.Parse()

	if *versionFlag {
		fmt.Println("flickr-backup " + version)
		return
	}

	// CLI mode - require the photos directory
	if flag.NArg() == 0 {
		fmt.Println("Flickr Backup - Organize a Flickr photo export into albums")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  flickr-backup <photos_dir> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: flickr-backup-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}
	photosDir := flag.Arg(0)

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *unicodeFlag {
		settings.AllowUnicodeNames = true
	}
	if *dryRunFlag {
		settings.DryRun = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := organize.NewManager(settings, func(event organize.ProgressEvent) {
		if event.Level == organize.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case organize.LevelError:
			prefix = "❌ "
		case organize.LevelWarning:
			prefix = "⚠️  "
		case organize.LevelSuccess:
			prefix = "✅ "
		case organize.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("📦 Flickr Backup")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.Initialize(ctx, *manifestFlag, photosDir, *outputFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	if settings.DryRun {
		fmt.Println("\n[Dry run - nothing will be copied]")
		fmt.Println()
	}

	summary, err := manager.Organize(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nOrganizing cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error while organizing: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! %d albums, %d photos in albums (%d shared), %d without album, %d files copied\n",
		summary.Albums, summary.Matched, summary.Duplicates, summary.Albumless, summary.Copied)
}
