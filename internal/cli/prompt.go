package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) ask(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	return a.readLine()
}

// askDefault shows the current value and keeps it on an empty answer,
// mirroring the update prompts of the original tool.
func (a *App) askDefault(label, current string) (string, error) {
	fmt.Fprintf(a.out, "%s [%s]: ", label, current)
	line, err := a.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return current, nil
	}
	return line, nil
}

func (a *App) askInt(label string) (int, error) {
	answer, err := a.ask(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", answer)
	}
	return value, nil
}

func (a *App) askFloat(label string) (float64, error) {
	answer, err := a.ask(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", answer)
	}
	return value, nil
}

// askDate accepts YYYY-MM-DD or an empty answer meaning "now".
func (a *App) askDate(label string) (time.Time, error) {
	answer, err := a.ask(label + " (YYYY-MM-DD, empty for today)")
	if err != nil {
		return time.Time{}, err
	}
	if answer == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse("2006-01-02", answer)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a date in YYYY-MM-DD form", answer)
	}
	return date, nil
}

func (a *App) confirm(label string) (bool, error) {
	fmt.Fprintf(a.out, "%s [y/N]: ", label)
	answer, err := a.readLine()
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
