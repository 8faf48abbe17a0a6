// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package page

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clipboardFadeMsg clears the "copied" notice from the status line.
type clipboardFadeMsg struct{}

// clipboardFadeDelay is how long the "copied" notice stays visible.
const clipboardFadeDelay = 3 * time.Second

// copyToClipboard writes text to the system clipboard via OSC 52,
// directly on the controlling terminal so the escape bypasses the
// bubbletea renderer. Inside tmux the sequence is additionally sent
// through a DCS passthrough wrapper (requires tmux allow-passthrough).
func copyToClipboard(text string) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
			if err != nil {
				return nil
			}
			defer tty.Close()

			encoded := base64.StdEncoding.EncodeToString([]byte(text))
			osc52 := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)

			inTmux := os.Getenv("TMUX") != "" ||
				strings.HasPrefix(os.Getenv("TERM"), "tmux") ||
				strings.HasPrefix(os.Getenv("TERM"), "screen")
			if inTmux {
				fmt.Fprintf(tty, "\x1bPtmux;\x1b%s\x1b\\", osc52)
			}

			tty.WriteString(osc52)
			return nil
		},
		tea.Tick(clipboardFadeDelay, func(time.Time) tea.Msg {
			return clipboardFadeMsg{}
		}),
	)
}
