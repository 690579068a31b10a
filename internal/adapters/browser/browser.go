// Package browser opens a URL in the operator's default browser by trying the
// well-known opener commands in order: the macOS opener, then the Linux one,
// then the Windows one. The ordered probe keeps a single code path across
// platforms and degrades cleanly inside containers and headless sessions.
package browser

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrNoOpener is returned when none of the known opener commands is on PATH.
var ErrNoOpener = errors.New("no browser opener found")

type command struct {
	name string
	args []string
}

// Opener implements ports.BrowserOpener by shelling out to platform openers.
type Opener struct {
	candidates []command

	// hooks for tests
	lookPath func(file string) (string, error)
	start    func(name string, args ...string) error
}

// NewOpener creates an Opener with the standard candidate commands.
func NewOpener() *Opener {
	return &Opener{
		candidates: []command{
			{name: "open"},
			{name: "xdg-open"},
			{name: "rundll32", args: []string{"url.dll,FileProtocolHandler"}},
		},
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open launches the first available opener with the URL appended. It returns
// ErrNoOpener when no candidate is on PATH.
func (o *Opener) Open(url string) error {
	for _, c := range o.candidates {
		if _, err := o.lookPath(c.name); err != nil {
			continue
		}
		args := append(append([]string{}, c.args...), url)
		if err := o.start(c.name, args...); err != nil {
			return fmt.Errorf("failed to run %s: %w", c.name, err)
		}
		return nil
	}
	return ErrNoOpener
}
