// Command turtle runs LOGO turtle graphics from the terminal.
//
// Commands are read one per line from standard input, or from -c, and
// drawn onto an off-screen canvas that is saved as PNG on exit:
//
//	echo 'REPEAT 4 [FD 100 RT 90]' | turtle -o square.png
//	turtle -c 'REPEAT 36 [FD 10 RT 10]' -gif circle.gif
//
// Type HELP at the prompt for the command list.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/turtle/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		width      = flag.Int("width", 0, "canvas width (overrides config)")
		height     = flag.Int("height", 0, "canvas height (overrides config)")
		output     = flag.String("o", "turtle.png", "PNG written on exit; empty to skip")
		gifPath    = flag.String("gif", "", "record the session as an animated GIF")
		dbPath     = flag.String("db", "", "command history database (overrides config)")
		history    = flag.Bool("history", false, "print the command history and exit")
		replay     = flag.Bool("replay", false, "replay the command history before reading input")
		commands   = flag.String("c", "", "commands to run instead of reading standard input; ';' outside brackets separates commands")
		verbose    = flag.Bool("v", false, "log at debug level")
		logFile    = flag.String("log", "", "also write JSON logs to this file (overrides config)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *dbPath != "" {
		cfg.History = *dbPath
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second interrupt kills the process.
		<-ctx.Done()
		stop()
	}()

	s := session{
		cfg:         cfg,
		pngPath:     *output,
		gifPath:     *gifPath,
		replay:      *replay,
		interactive: *commands == "" && isatty.IsTerminal(os.Stdin.Fd()),
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	var err error
	switch {
	case *history:
		err = s.printHistory()
	case *commands != "":
		err = s.run(ctx, scriptReader(*commands))
	default:
		err = s.run(ctx, os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "turtle:", err)
		os.Exit(1)
	}
}
