package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/cfkey-extractor/internal/extract"
	"github.com/handiism/cfkey-extractor/internal/model"
)

func main() {
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

	// Create extractor with progress callback
	extractor := extract.NewExtractor(model.DefaultTarget(), model.DefaultMarker(), func(event extract.ProgressEvent) {
		if event.Level == extract.LevelError {
			fmt.Fprintln(os.Stderr, "❌ "+event.Message)
			return
		}

		prefix := ""
		switch event.Level {
		case extract.LevelWarning:
			prefix = "⚠️  "
		case extract.LevelSuccess:
			prefix = "✅ "
		case extract.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🔑 CurseForge Key Extractor")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if _, err := extractor.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to extract API key")
		os.Exit(1)
	}
}
