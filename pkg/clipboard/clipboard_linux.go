//go:build linux

package clipboard

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	atotto "github.com/atotto/clipboard"
)

// writeAll tries atotto first, then the clipboard tools of the running
// session. On Wayland wl-copy is preferred; xclip and xsel cover X11.
func writeAll(text string) error {
	err := atotto.WriteAll(text)
	if err == nil {
		return nil
	}

	for _, argv := range fallbackCommands() {
		if _, lookErr := exec.LookPath(argv[0]); lookErr != nil {
			continue
		}
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdin = bytes.NewBufferString(text)
		if runErr := cmd.Run(); runErr == nil {
			return nil
		}
	}

	if atotto.Unsupported {
		return errors.New("no clipboard utility found (install wl-clipboard, xclip or xsel)")
	}
	return err
}

func fallbackCommands() [][]string {
	x11 := [][]string{
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return append([][]string{{"wl-copy"}}, x11...)
	}
	return x11
}
