package autosys

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrCredentialsIncomplete reports that interactive credential resolution
// could not produce a usable credential set.
var ErrCredentialsIncomplete = errors.New("credentials incomplete")

// Credentials holds the optional authentication values appended to every
// external scheduler command. Empty fields are simply omitted; the
// external tool then falls back to its ambient session.
type Credentials struct {
	User     string
	Password string
	Instance string
	Server   string
}

// Prompter asks the operator for a credential value. Secret input must not
// be echoed.
type Prompter interface {
	Secret(label string) (string, error)
	Plain(label string) (string, error)
}

// Resolve completes the credential set before any command runs: a user
// without a password gets one no-echo password prompt, a user without an
// instance gets one plain prompt. The server is never prompted for.
func (c *Credentials) Resolve(p Prompter) error {
	if c.User == "" {
		return nil
	}
	if c.Password == "" {
		pw, err := p.Secret(fmt.Sprintf("Enter password for %s: ", c.User))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCredentialsIncomplete, err)
		}
		c.Password = pw
	}
	if c.Instance == "" {
		inst, err := p.Plain("Enter instance name: ")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCredentialsIncomplete, err)
		}
		c.Instance = strings.TrimSpace(inst)
	}
	return nil
}

// Flags returns the credential flag pairs for present values, in the order
// the scheduler CLIs document them.
func (c Credentials) Flags() []string {
	var flags []string
	if c.User != "" {
		flags = append(flags, "-u", c.User)
	}
	if c.Password != "" {
		flags = append(flags, "-p", c.Password)
	}
	if c.Instance != "" {
		flags = append(flags, "-i", c.Instance)
	}
	if c.Server != "" {
		flags = append(flags, "-s", c.Server)
	}
	return flags
}

// TerminalPrompter reads credential values from the controlling terminal.
type TerminalPrompter struct{}

// Secret prints label to stderr and reads a line with echo disabled.
func (TerminalPrompter) Secret(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// Plain prints label to stderr and reads an echoed line from stdin.
func (TerminalPrompter) Plain(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
