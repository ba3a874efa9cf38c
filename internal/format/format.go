// Package format holds the formatter seam the patch commands push their
// output through before it is written back.
package format

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Formatter normalizes patched source text before it is written back.
type Formatter interface {
	Format(text string) (string, error)
}

// Normalizer is the built-in fallback: trailing whitespace stripped from
// every line, exactly one trailing newline. Idempotent and layout-neutral;
// real reflowing (breaking the nudged struct literals into block form) needs
// an external formatter via Command.
type Normalizer struct{}

// Format implements Formatter.
func (n *Normalizer) Format(text string) (string, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	out := strings.Join(lines, "\n")
	out = strings.TrimRight(out, "\n") + "\n"

	return out, nil
}

// Command pipes text through an external pretty-printer reading stdin and
// writing stdout, e.g. "black -".
type Command struct {
	Name string
	Args []string
}

// Format implements Formatter.
func (c *Command) Format(text string) (string, error) {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("failed to run formatter %s: %s: %w", c.Name, msg, err)
		}

		return "", fmt.Errorf("failed to run formatter %s: %w", c.Name, err)
	}

	return stdout.String(), nil
}
