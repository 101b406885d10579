package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ry/internal/driver"
	"ry/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode, out io.Writer) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(out)
	}
}

type parseOutcome struct {
	results []driver.ParseDirResult
	err     error
}

// parseDirWithUI runs ParseDir while a Bubble Tea view renders its progress
// events on stderr, so stdout stays clean for the AST.
func (a *app) parseDirWithUI(ctx context.Context, dir string, opts driver.DirOptions) ([]driver.ParseDirResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)
	go func() {
		opts.Progress = driver.ChanSink(events)
		_, results, err := driver.ParseDir(ctx, dir, opts)
		outcomeCh <- parseOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("parsing "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(a.stderr), tea.WithContext(ctx))
	final, uiErr := program.Run()

	// вид мог закрыться раньше воркеров: отменяем и вычитываем канал
	interrupted := ui.Interrupted(final)
	if interrupted {
		cancel()
	}
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh

	switch {
	case interrupted:
		return nil, errors.New("interrupted")
	case uiErr != nil && !errors.Is(uiErr, tea.ErrProgramKilled):
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
