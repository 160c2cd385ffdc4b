package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ZSeanYves/tmplpack/internal/generator"
	"github.com/ZSeanYves/tmplpack/internal/ui"
)

// watchDebounce is how long to wait after the last filesystem event before
// regenerating. Editors often emit several events per save.
const watchDebounce = 200 * time.Millisecond

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the template directory changes",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWatch(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// runWatch performs one generation pass, then watches the template directory
// and re-runs the full pass after each burst of matching file events. Every
// regeneration is a complete run over the directory; nothing is cached
// between passes. Returns when interrupted.
//
// Returns:
//   - error: An error if the initial configuration load or the watcher setup
//     fails. Later generation failures are reported and watching continues.
func runWatch() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	regenerate := func() {
		res, err := generator.Generate(cfg)
		if err != nil {
			ui.PrintError("generate", err.Error())
			return
		}
		ui.PrintSuccess("generate", fmt.Sprintf("%s (%d templates)", res.OutputPath, res.Count))
	}

	regenerate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.Templates.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.Templates.Dir, err)
	}
	fmt.Printf("Watching %s (*%s)...\n", cfg.Templates.Dir, cfg.Templates.Ext)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, cfg.Templates.Ext) {
				continue
			}
			slog.Debug("template changed", "path", event.Name, "op", event.Op.String())
			debounce.Reset(watchDebounce)
		case <-debounce.C:
			regenerate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ui.PrintWarning("watch", err.Error())
		case <-sig:
			fmt.Println("Stopping watch.")
			return nil
		}
	}
}
