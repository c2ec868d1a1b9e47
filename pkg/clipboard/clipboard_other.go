//go:build !linux

package clipboard

import atotto "github.com/atotto/clipboard"

// writeAll copies text with atotto. Non-Linux platforms have a single
// native backend, so there is nothing to fall back to.
func writeAll(text string) error {
	return atotto.WriteAll(text)
}
