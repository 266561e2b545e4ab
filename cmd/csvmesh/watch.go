package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/csvmesh/pkg/importer"
	"github.com/philipparndt/csvmesh/pkg/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Reconvert a CSV capture whenever it changes",
	Long: `Convert once, then watch the capture and reconvert after every save
until interrupted. A failed conversion keeps the watch running; the
next save gets another chance.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond,
		"Delay after the last change before reconverting")
	addOutputFlags(watchCmd)
	addImportFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	host := fileHost(cmd, cfg, filename)
	opts := cfg.Options()

	convert := func(path string) {
		if result, err := importer.Import(path, host, opts); err == nil {
			fmt.Printf("Wrote %s\n", result.Object)
		}
	}
	convert(filename)

	fw, err := watcher.New(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	if err := fw.Watch(filename, convert); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fw.Start()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", filename)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("\nStopped.")
}
