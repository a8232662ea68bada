// Package palette assigns display colours to people.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors is the rotation of person colours, in assignment order.
var Colors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E2", "#F8B400", "#52B788",
	"#E63946", "#A8DADC", "#F77F00", "#06FFA5", "#8338EC",
}

// ForIndex returns the colour for the n-th person added to a ledger.
func ForIndex(n int) string {
	if n < 0 {
		n = -n
	}
	return Colors[n%len(Colors)]
}

// Normalize validates a hex colour and returns it in lowercase #rrggbb form.
// Short forms such as "#f0a" are expanded.
func Normalize(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c.Hex(), nil
}
