// Command xrbridge-sim runs the input runtime against a simulated headset.
//
// The simulator plays both sides of a session: application commands create
// actions, drive the session and query action state, while headset commands
// connect controllers, press buttons and move devices.
//
// Usage:
//
//	xrbridge-sim [flags]
//
// Flags:
//
//	-config string     Settings file (.yaml, .toml or .json)
//	-watch             Reload the settings file when it changes (default true)
//	-trace string      Write a trace of every API call to this file
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-script string     Run the commands in this file instead of a prompt
//	-record string     Capture the hardware frames the runtime reads to this file
//	-eye-gaze          Enable the eye gaze interaction extension
//	-trackers          Enable the tracker interaction extension
//	-foveated          Enable the foveated rendering extension
//	-quad-views        Enable the quad views extension
//
// Examples:
//
//	# Interactive session with a trace file
//	xrbridge-sim -trace session.xlog
//
//	# Watch a settings file and replay a script
//	xrbridge-sim -config settings.yaml -script demo.txt
//
//	# Capture a scripted session for replay in tests
//	xrbridge-sim -script demo.txt -record demo.xrrec
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/xrbridge/xrbridge-go/cmd/xrbridge-sim/interactive"
	"github.com/xrbridge/xrbridge-go/pkg/config"
	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/hmd/record"
	"github.com/xrbridge/xrbridge-go/pkg/hmd/sim"
	"github.com/xrbridge/xrbridge-go/pkg/log"
	"github.com/xrbridge/xrbridge-go/pkg/runtime"
)

// Config holds the simulator configuration.
type Config struct {
	ConfigFile string
	Watch      bool
	TraceFile  string
	LogLevel   string
	Script     string
	Record     string

	Extensions runtime.Extensions
}

var cfg Config

func init() {
	flag.StringVar(&cfg.ConfigFile, "config", "", "Settings file (.yaml, .toml or .json)")
	flag.BoolVar(&cfg.Watch, "watch", true, "Reload the settings file when it changes")
	flag.StringVar(&cfg.TraceFile, "trace", "", "Write a trace of every API call to this file")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&cfg.Script, "script", "", "Run the commands in this file instead of a prompt")
	flag.StringVar(&cfg.Record, "record", "", "Capture the hardware frames the runtime reads to this file")

	flag.BoolVar(&cfg.Extensions.EyeGazeInteraction, "eye-gaze", false, "Enable the eye gaze interaction extension")
	flag.BoolVar(&cfg.Extensions.ViveTrackerInteraction, "trackers", false, "Enable the tracker interaction extension")
	flag.BoolVar(&cfg.Extensions.FoveatedRendering, "foveated", false, "Enable the foveated rendering extension")
	flag.BoolVar(&cfg.Extensions.QuadViews, "quad-views", false, "Enable the quad views extension")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := setupLogging(cfg.LogLevel, os.Stderr)

	rtConfig := runtime.DefaultConfig()
	rtConfig.Logger = logger
	rtConfig.Extensions = cfg.Extensions

	var loader *config.Loader
	if cfg.ConfigFile != "" {
		loader = config.NewLoader(cfg.ConfigFile, logger)
		settings, err := loader.Load()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		rtConfig.Settings = settings
	}

	traces := []log.Logger{log.NewSlogAdapter(logger)}
	if cfg.TraceFile != "" {
		fl, err := log.NewFileLogger(cfg.TraceFile)
		if err != nil {
			return fmt.Errorf("open trace file: %w", err)
		}
		defer fl.Close()
		traces = append(traces, fl)
		logger.Info("tracing", "file", cfg.TraceFile)
	}
	rtConfig.Trace = log.NewMultiLogger(traces...)

	dev := sim.New()
	var session hmd.Session = dev
	if cfg.Record != "" {
		rec, err := record.CreateRecorder(dev, cfg.Record)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				logger.Warn("close capture", "error", err)
				return
			}
			logger.Info("capture written", "file", cfg.Record, "frames", rec.Frames())
		}()
		session = rec
	}

	rt, err := runtime.New(session, rtConfig)
	if err != nil {
		return err
	}

	if loader != nil && cfg.Watch {
		loader.OnChange(func(s config.Settings) {
			if err := rt.ApplySettings(s); err != nil {
				logger.Warn("settings rejected", "error", err)
				return
			}
			logger.Info("settings reloaded", "file", cfg.ConfigFile)
		})
		if err := loader.Watch(); err != nil {
			return fmt.Errorf("watch settings: %w", err)
		}
		defer loader.Close()
	}

	if cfg.Script != "" {
		f, err := os.Open(cfg.Script)
		if err != nil {
			return err
		}
		defer f.Close()
		return runScript(interactive.NewApp(rt, dev, os.Stdout), f)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	shell, err := interactive.New(rt, dev)
	if err != nil {
		return err
	}
	shell.Run(ctx, cancel)
	return rt.Err()
}

// runScript executes one command per line. Blank lines and lines starting
// with # are skipped. The first error stops the script.
func runScript(app *interactive.App, r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := app.Exec(line); err != nil {
			if errors.Is(err, interactive.ErrQuit) {
				return nil
			}
			return fmt.Errorf("line %d: %s: %w", lineNo, line, err)
		}
	}
	return sc.Err()
}

func setupLogging(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
