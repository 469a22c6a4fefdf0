package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/atomicstack/quickrun/internal/app"
	"github.com/atomicstack/quickrun/internal/config"
	"github.com/atomicstack/quickrun/internal/launcher"
	"github.com/atomicstack/quickrun/internal/logging"
	"github.com/atomicstack/quickrun/internal/logging/events"
	"github.com/atomicstack/quickrun/internal/menu"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	traceStartup(cfg)

	if err := ensureInteractive(); err != nil {
		fmt.Fprintf(os.Stderr, "quickrun: %v\n", err)
		os.Exit(1)
	}

	path, err := menu.ResolvePath(cfg.App.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quickrun: %v\n", err)
		os.Exit(1)
	}
	catalog, err := menu.Load(path)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "quickrun: %v\n", err)
		os.Exit(1)
	}
	if catalog.Empty() {
		fmt.Printf("No items in config. Please add some in %s\n", path)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	item, err := app.Run(ctx, cfg.App, catalog)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if item == nil {
		return
	}

	launcher.Announce(os.Stdout, item.Name, item.Command)
	if cfg.App.PrintOnly {
		return
	}
	if err := launcher.Exec(item.Name, item.Command); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: exec %s: %v\n", launcher.Shell, err)
		os.Exit(1)
	}
}

// ensureInteractive rejects running without a terminal on both ends;
// the grid cannot render into a pipe.
func ensureInteractive() error {
	streams := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
	}
	for _, stream := range streams {
		if isatty.IsTerminal(stream.fd) || isatty.IsCygwinTerminal(stream.fd) {
			continue
		}
		return fmt.Errorf("%s is not a terminal", stream.name)
	}
	return nil
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
