// Package launcher implements the dev launch sequence: an ordered list of
// fallible steps executed until the first failure. Each step is either a
// precondition gate or a side-effecting action against one of the ports.
package launcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/melih/devlaunch/internal/core/domain"
	"github.com/melih/devlaunch/internal/core/ports"
	"github.com/melih/devlaunch/internal/logger"
)

// readyTimeout bounds the opt-in readiness poll. The default settle path is a
// blind wait, matching the original behavior.
const (
	readyTimeout  = 30 * time.Second
	readyInterval = 500 * time.Millisecond
)

// Options fixes the launch parameters for one invocation.
type Options struct {
	Workdir     string
	AppName     string
	Port        int
	AppFile     string
	Stylesheet  string
	ConfigFile  string
	SettleDelay time.Duration
	WaitReady   bool
	RepoURL     string
	OpenBrowser bool
}

// Launcher orchestrates the launch sequence over the capability ports.
type Launcher struct {
	runtime ports.ContainerRuntime
	builder ports.ImageBuilder
	browser ports.BrowserOpener
	log     *slog.Logger
	out     io.Writer

	// test hooks
	sleep func(time.Duration)
	probe func(ctx context.Context, url string) error
}

// New wires a Launcher from its ports. Step progress messages go to out.
func New(runtime ports.ContainerRuntime, builder ports.ImageBuilder, browser ports.BrowserOpener, log *slog.Logger, out io.Writer) *Launcher {
	l := &Launcher{
		runtime: runtime,
		builder: builder,
		browser: browser,
		log:     log,
		out:     out,
		sleep:   time.Sleep,
	}
	l.probe = l.httpProbe
	return l
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

// Up runs the full launch sequence. Any step failure aborts the run; only the
// final browser-open step is tolerated (the URL is printed instead).
func (l *Launcher) Up(ctx context.Context, opts Options) error {
	log := logger.FromContext(ctx, l.log)

	spec := domain.LaunchSpec{
		Name:          opts.AppName,
		Image:         opts.AppName,
		HostPort:      opts.Port,
		ContainerPort: domain.DefaultPort,
		Env: map[string]string{
			"STREAMLIT_SERVER_RUN_ON_SAVE":       "true",
			"STREAMLIT_SERVER_FILE_WATCHER_TYPE": "poll",
		},
	}

	steps := []step{
		{"runtime check", func(ctx context.Context) error {
			return l.runtime.Ping(ctx)
		}},
		{"source files", func(ctx context.Context) error {
			return l.checkSources(opts)
		}},
		{"image build", func(ctx context.Context) error {
			return l.build(ctx, opts)
		}},
		{"replace container", func(ctx context.Context) error {
			return l.replace(ctx, opts.AppName)
		}},
		{"start container", func(ctx context.Context) error {
			mounts, err := l.mounts(opts)
			if err != nil {
				return err
			}
			spec.Mounts = mounts
			id, err := l.runtime.StartContainer(ctx, spec)
			if err != nil {
				return err
			}
			log.Info("container started", "name", spec.Name, "id", id)
			return nil
		}},
		{"settle", func(ctx context.Context) error {
			return l.settle(ctx, opts, spec.URL())
		}},
	}

	for _, s := range steps {
		log.Debug("running step", "step", s.name)
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	l.openBrowser(opts, spec.URL())
	fmt.Fprintf(l.out, "%s is running at %s\n", opts.AppName, spec.URL())
	return nil
}

// Down stops and removes the named container if it exists.
func (l *Launcher) Down(ctx context.Context, name string) error {
	existing, err := l.runtime.FindContainer(ctx, name, true)
	if err != nil {
		return err
	}
	if existing == nil {
		fmt.Fprintf(l.out, "No container named %s\n", name)
		return nil
	}
	return l.replace(ctx, name)
}

// Status prints whether the named container exists and in which state.
func (l *Launcher) Status(ctx context.Context, name string) error {
	c, err := l.runtime.FindContainer(ctx, name, true)
	if err != nil {
		return err
	}
	if c == nil {
		fmt.Fprintf(l.out, "%s: not created\n", name)
		return nil
	}
	fmt.Fprintf(l.out, "%s: %s (%s)\n", c.Name, c.State, c.Status)
	return nil
}

// Logs streams the named container's logs to w.
func (l *Launcher) Logs(ctx context.Context, name string, follow bool, w io.Writer) error {
	c, err := l.runtime.FindContainer(ctx, name, true)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("no container named %s", name)
	}
	logs, err := l.runtime.ContainerLogs(ctx, c.ID, follow)
	if err != nil {
		return err
	}
	defer logs.Close()
	_, err = io.Copy(w, logs)
	return err
}

// checkSources gates on the two required files, each with its own message.
func (l *Launcher) checkSources(opts Options) error {
	if _, err := os.Stat(filepath.Join(opts.Workdir, opts.AppFile)); err != nil {
		return fmt.Errorf("%s not found in %s (run from the app directory)", opts.AppFile, opts.Workdir)
	}
	if _, err := os.Stat(filepath.Join(opts.Workdir, opts.Stylesheet)); err != nil {
		return fmt.Errorf("%s not found in %s (the app needs its stylesheet)", opts.Stylesheet, opts.Workdir)
	}
	return nil
}

func (l *Launcher) build(ctx context.Context, opts Options) error {
	fmt.Fprintf(l.out, "Building image %s...\n", opts.AppName)
	if opts.RepoURL != "" {
		_, err := l.builder.BuildImageFromRepo(ctx, opts.RepoURL, opts.AppName)
		return err
	}
	_, err := l.builder.BuildImage(ctx, opts.Workdir, opts.AppName)
	return err
}

// replace guarantees at most one container with the given name exists before
// the next start: stop the running one, then remove any leftover.
func (l *Launcher) replace(ctx context.Context, name string) error {
	running, err := l.runtime.FindContainer(ctx, name, false)
	if err != nil {
		return err
	}
	if running != nil {
		fmt.Fprintf(l.out, "Stopping running container %s...\n", name)
		if err := l.runtime.StopContainer(ctx, running.ID); err != nil {
			return err
		}
	}

	existing, err := l.runtime.FindContainer(ctx, name, true)
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Fprintf(l.out, "Removing old container %s...\n", name)
		if err := l.runtime.RemoveContainer(ctx, existing.ID); err != nil {
			return err
		}
	}
	return nil
}

// mounts prepares the bind mounts: the two source files read-write, plus the
// optional configuration file read-only if and only if it exists right now.
func (l *Launcher) mounts(opts Options) ([]domain.Mount, error) {
	var mounts []domain.Mount
	for _, f := range []string{opts.AppFile, opts.Stylesheet} {
		src, err := filepath.Abs(filepath.Join(opts.Workdir, f))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		mounts = append(mounts, domain.Mount{
			Source: src,
			Target: filepath.ToSlash(filepath.Join(domain.DefaultContainerRoot, f)),
		})
	}

	cfg := filepath.Join(opts.Workdir, opts.ConfigFile)
	if _, err := os.Stat(cfg); err == nil {
		src, err := filepath.Abs(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", opts.ConfigFile, err)
		}
		mounts = append(mounts, domain.Mount{
			Source:   src,
			Target:   filepath.ToSlash(filepath.Join(domain.DefaultContainerRoot, opts.ConfigFile)),
			ReadOnly: true,
		})
	}
	return mounts, nil
}

// settle gives the service time to begin listening. The default is the fixed
// delay the original used; WaitReady upgrades it to an HTTP readiness poll.
func (l *Launcher) settle(ctx context.Context, opts Options, url string) error {
	if !opts.WaitReady {
		l.sleep(opts.SettleDelay)
		return nil
	}

	deadline := time.Now().Add(readyTimeout)
	for {
		if err := l.probe(ctx, url); err == nil {
			return nil
		} else if ctx.Err() != nil {
			return ctx.Err()
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("service did not become ready at %s within %s", url, readyTimeout)
		}
		l.sleep(readyInterval)
	}
}

func (l *Launcher) httpProbe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("service responded %d", resp.StatusCode)
	}
	return nil
}

// openBrowser is best-effort: a missing opener degrades to printing the URL.
func (l *Launcher) openBrowser(opts Options, url string) {
	if !opts.OpenBrowser {
		return
	}
	if err := l.browser.Open(url); err != nil {
		l.log.Debug("browser open failed", "error", err)
		fmt.Fprintf(l.out, "Open %s in your browser\n", url)
	}
}
