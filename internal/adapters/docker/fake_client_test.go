package docker

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	specs "github.com/opencontainers/image-spec/specs-go/v1"
)

type containerCreateCall struct {
	config     *container.Config
	hostConfig *container.HostConfig
	name       string
}

type listCall struct {
	all    bool
	filter string
}

type fakeDockerClient struct {
	mu sync.Mutex

	pingErr   error
	listed    []types.Container
	listErr   error
	createErr error
	startErr  error
	stopErr   error
	removeErr error
	logData   string

	pings       int
	listCalls   []listCall
	createCalls []containerCreateCall
	startIDs    []string
	stopIDs     []string
	removeIDs   []string
	removeForce []bool
	closed      bool
}

func (f *fakeDockerClient) Ping(ctx context.Context) (types.Ping, error) {
	f.mu.Lock()
	f.pings++
	f.mu.Unlock()
	return types.Ping{}, f.pingErr
}

func (f *fakeDockerClient) ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error) {
	f.mu.Lock()
	filter := strings.Join(options.Filters.Get("name"), ",")
	f.listCalls = append(f.listCalls, listCall{all: options.All, filter: filter})
	f.mu.Unlock()
	return f.listed, f.listErr
}

func (f *fakeDockerClient) ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *specs.Platform, containerName string) (container.CreateResponse, error) {
	f.mu.Lock()
	f.createCalls = append(f.createCalls, containerCreateCall{config: config, hostConfig: hostConfig, name: containerName})
	f.mu.Unlock()
	if f.createErr != nil {
		return container.CreateResponse{}, f.createErr
	}
	return container.CreateResponse{ID: "created-container-id"}, nil
}

func (f *fakeDockerClient) ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error {
	f.mu.Lock()
	f.startIDs = append(f.startIDs, containerID)
	f.mu.Unlock()
	return f.startErr
}

func (f *fakeDockerClient) ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error {
	f.mu.Lock()
	f.stopIDs = append(f.stopIDs, containerID)
	f.mu.Unlock()
	return f.stopErr
}

func (f *fakeDockerClient) ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error {
	f.mu.Lock()
	f.removeIDs = append(f.removeIDs, containerID)
	f.removeForce = append(f.removeForce, options.Force)
	f.mu.Unlock()
	return f.removeErr
}

func (f *fakeDockerClient) ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(f.logData)), nil
}

func (f *fakeDockerClient) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}
