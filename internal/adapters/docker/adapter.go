package docker

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"github.com/melih/devlaunch/internal/core/domain"
)

// Adapter implements ports.ContainerRuntime using the Docker SDK.
type Adapter struct {
	cli dockerClient
}

// NewAdapter creates a new Docker adapter instance. The client is configured
// from the standard environment variables (DOCKER_HOST, etc.).
func NewAdapter() (*Adapter, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Adapter{cli: cli}, nil
}

// Close releases the underlying client connection.
func (a *Adapter) Close() error {
	return a.cli.Close()
}

// Ping verifies the Docker daemon is reachable.
func (a *Adapter) Ping(ctx context.Context) error {
	if _, err := a.cli.Ping(ctx); err != nil {
		return fmt.Errorf("docker daemon is not reachable (is Docker running?): %w", err)
	}
	return nil
}

// FindContainer looks up a container by exact name. The name filter on the
// list endpoint matches substrings, so results are re-checked against the
// canonical /name form.
func (a *Adapter) FindContainer(ctx context.Context, name string, all bool) (*domain.Container, error) {
	containers, err := a.cli.ContainerList(ctx, container.ListOptions{
		All:     all,
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	for _, c := range containers {
		for _, n := range c.Names {
			if n == "/"+name {
				found := domain.Container{
					ID:     c.ID[:12], // Short ID
					Name:   name,
					Image:  c.Image,
					Status: c.Status,
					State:  c.State,
				}
				return &found, nil
			}
		}
	}
	return nil, nil
}

// StartContainer creates and starts a detached container per the launch spec.
// The binding publishes the service's fixed container port on the chosen host
// port.
func (a *Adapter) StartContainer(ctx context.Context, spec domain.LaunchSpec) (string, error) {
	containerPort := nat.Port(fmt.Sprintf("%d/tcp", spec.ContainerPort))

	config := &container.Config{
		Image:        spec.Image,
		Env:          envList(spec.Env),
		ExposedPorts: nat.PortSet{containerPort: struct{}{}},
		Tty:          true, // keeps the log stream unmultiplexed
	}
	hostConfig := &container.HostConfig{
		PortBindings: nat.PortMap{
			containerPort: []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: strconv.Itoa(spec.HostPort)}},
		},
		Binds: bindList(spec.Mounts),
	}

	resp, err := a.cli.ContainerCreate(ctx, config, hostConfig, nil, nil, spec.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create container %s: %w", spec.Name, err)
	}

	if err := a.cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return "", fmt.Errorf("failed to start container %s: %w", spec.Name, err)
	}

	return resp.ID, nil
}

// StopContainer stops a running container.
func (a *Adapter) StopContainer(ctx context.Context, id string) error {
	// Timeout can be configurable, but keeping it simple for now
	timeout := 10 * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := a.cli.ContainerStop(ctx, id, container.StopOptions{}); err != nil {
		return fmt.Errorf("failed to stop container %s: %w", id, err)
	}
	return nil
}

// RemoveContainer removes a container in any state.
func (a *Adapter) RemoveContainer(ctx context.Context, id string) error {
	if err := a.cli.ContainerRemove(ctx, id, container.RemoveOptions{Force: true}); err != nil {
		return fmt.Errorf("failed to remove container %s: %w", id, err)
	}
	return nil
}

// ContainerLogs returns a stream of container logs.
func (a *Adapter) ContainerLogs(ctx context.Context, id string, follow bool) (io.ReadCloser, error) {
	logs, err := a.cli.ContainerLogs(ctx, id, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     follow,
		Timestamps: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs for %s: %w", id, err)
	}
	return logs, nil
}

func envList(m map[string]string) []string {
	env := make([]string, 0, len(m))
	for k, v := range m {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)
	return env
}

func bindList(mounts []domain.Mount) []string {
	var binds []string
	for _, m := range mounts {
		binds = append(binds, m.String())
	}
	return binds
}
