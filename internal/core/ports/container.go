package ports

import (
	"context"
	"io"

	"github.com/melih/devlaunch/internal/core/domain"
)

// ContainerRuntime defines the container operations the launcher needs.
// This interface allows us to switch between Docker, Podman, or Kubernetes
// without changing the launch logic, and to substitute fakes in tests.
type ContainerRuntime interface {
	// Ping verifies the runtime daemon is reachable.
	Ping(ctx context.Context) error
	// FindContainer looks up a container by exact name. With all=false only
	// running containers are considered. Returns nil when no match exists.
	FindContainer(ctx context.Context, name string, all bool) (*domain.Container, error)
	// StartContainer creates and starts a detached container described by
	// the launch spec and returns its ID.
	StartContainer(ctx context.Context, spec domain.LaunchSpec) (string, error)
	StopContainer(ctx context.Context, id string) error
	RemoveContainer(ctx context.Context, id string) error
	ContainerLogs(ctx context.Context, id string, follow bool) (io.ReadCloser, error)
}
