// Package interactive provides the interactive command-line interface of
// the headset simulator.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/xrbridge/xrbridge-go/pkg/hmd/sim"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/runtime"
)

// Shell reads commands from a terminal and runs them against an App.
type Shell struct {
	app *App
	rl  *readline.Instance
}

// New creates a new interactive shell.
func New(rt *runtime.Runtime, dev *sim.Device) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "xr> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{
		app: NewApp(rt, dev, rl.Stdout()),
		rl:  rl,
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.app.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		err = s.app.Exec(strings.TrimSpace(line))
		switch {
		case err == nil:
		case errors.Is(err, ErrQuit):
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		case result.IsFatal(err):
			fmt.Fprintf(s.rl.Stdout(), "Fatal: %v\n", err)
			cancel()
			return
		default:
			fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		}
	}
}

