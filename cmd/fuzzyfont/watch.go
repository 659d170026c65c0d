package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/solarbyte-dev/fuzzyfont/internal/discovery"
	apperrors "github.com/solarbyte-dev/fuzzyfont/internal/errors"
	"github.com/solarbyte-dev/fuzzyfont/internal/watch"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch font directories and rebuild the catalog on changes",
		Long: `Watch the configured font directories for installed or removed fonts.
Change bursts are coalesced before the catalog is rebuilt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := newClassifier()
			if err != nil {
				return err
			}
			scanner, err := discovery.New(cfg)
			if err != nil {
				return err
			}

			debounce := time.Duration(cfg.Watch.Debounce) * time.Second
			watcher, err := watch.New(scanner, classifier, debounce)
			if err != nil {
				return err
			}
			defer watcher.Stop()

			watched := 0
			for _, dir := range scanner.Directories() {
				if err := watcher.AddDirectory(dir); err != nil {
					fmt.Println(warningText(fmt.Sprintf("Cannot watch %s: %v", dir, err)))
					continue
				}
				fmt.Printf("  - %s\n", dir)
				watched++
			}
			if watched == 0 {
				return apperrors.Newf("none of %d font directories can be watched", len(scanner.Directories()))
			}

			if err := watcher.Start(); err != nil {
				return err
			}
			fmt.Println(infoText("Watching for font changes. Press Ctrl+C to stop."))

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			for {
				select {
				case update, ok := <-watcher.Updates():
					if !ok {
						return nil
					}
					fmt.Printf("%s catalog rebuilt: %d fonts (%s)\n",
						update.Timestamp.Format("15:04:05"), update.Catalog.Len(), mutedText(update.Trigger))
				case <-sigChan:
					fmt.Println(infoText("Stopping."))
					return nil
				}
			}
		},
	}
}
