package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

type Method uint8

const (
	MethodSystem Method = iota
	MethodOSC52
)

func (m Method) String() string {
	switch m {
	case MethodOSC52:
		return "osc52"
	default:
		return "system"
	}
}

var (
	writeSystem = clipboard.WriteAll
	writeOSC52  = writeOSC52Clipboard
)

// Copy places text on the system clipboard, falling back to an OSC52 escape
// sequence written to the controlling terminal.
func Copy(text string) (Method, error) {
	err := writeSystem(text)
	if err == nil {
		return MethodSystem, nil
	}
	oscErr := writeOSC52(text)
	if oscErr == nil {
		return MethodOSC52, nil
	}
	return MethodSystem, combineErrors(err, oscErr)
}

func writeOSC52Clipboard(text string) error {
	if !shouldAttemptOSC52() {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeOSC52Sequence(tty, text)
}

// writeOSC52Sequence writes the copy sequence for the current multiplexer.
// Inside tmux the bare sequence goes out ahead of the passthrough form, since
// which one reaches the outer terminal depends on tmux's set-clipboard option.
func writeOSC52Sequence(w io.Writer, text string) error {
	var seqs []osc52.Sequence
	switch {
	case os.Getenv("TMUX") != "":
		seqs = []osc52.Sequence{osc52.New(text), osc52.New(text).Tmux()}
	case strings.HasPrefix(strings.ToLower(os.Getenv("TERM")), "screen"):
		seqs = []osc52.Sequence{osc52.New(text).Screen()}
	default:
		seqs = []osc52.Sequence{osc52.New(text)}
	}
	for _, seq := range seqs {
		if _, err := seq.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func shouldAttemptOSC52() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SHORTCUTS_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	termName := strings.TrimSpace(os.Getenv("TERM"))
	return termName != "" && !strings.EqualFold(termName, "dumb")
}

func combineErrors(systemErr, oscErr error) error {
	if missingDisplay() {
		return fmt.Errorf("no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset); OSC52 fallback failed: %v", oscErr)
	}
	return fmt.Errorf("system clipboard failed: %v; OSC52 fallback failed: %v", systemErr, oscErr)
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}
