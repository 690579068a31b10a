package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/archive"
	git "github.com/go-git/go-git/v5"
)

// buildClient is the slice of the Docker SDK the builder uses.
type buildClient interface {
	ImageBuild(ctx context.Context, buildContext io.Reader, options types.ImageBuildOptions) (types.ImageBuildResponse, error)
}

// Adapter implements ports.ImageBuilder against the Docker build endpoint.
type Adapter struct {
	cli buildClient
}

// NewAdapter creates a new builder adapter instance.
func NewAdapter() (*Adapter, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Adapter{cli: cli}, nil
}

// BuildImage tars the context directory and builds it into an image tagged
// imageName. Build errors reported inside the daemon's progress stream are
// surfaced as errors, not just transport failures.
func (a *Adapter) BuildImage(ctx context.Context, contextDir string, imageName string) (string, error) {
	tar, err := archive.TarWithOptions(contextDir, &archive.TarOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to create build context: %w", err)
	}
	defer tar.Close()

	resp, err := a.cli.ImageBuild(ctx, tar, types.ImageBuildOptions{
		Tags:       []string{imageName},
		Dockerfile: "Dockerfile",
		Remove:     true, // Remove intermediate containers
	})
	if err != nil {
		return "", fmt.Errorf("failed to build image %s: %w", imageName, err)
	}
	defer resp.Body.Close()

	if err := drainBuildStream(resp.Body); err != nil {
		return "", fmt.Errorf("build of %s failed: %w", imageName, err)
	}
	return imageName, nil
}

// BuildImageFromRepo clones a git repository into a temporary directory and
// builds the image from its working tree.
func (a *Adapter) BuildImageFromRepo(ctx context.Context, repoURL string, imageName string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "devlaunch-build-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir) // Clean up after build

	_, err = git.PlainCloneContext(ctx, tmpDir, false, &git.CloneOptions{
		URL:   repoURL,
		Depth: 1, // Shallow clone for speed
	})
	if err != nil {
		return "", fmt.Errorf("failed to clone repo %s: %w", repoURL, err)
	}

	return a.BuildImage(ctx, tmpDir, imageName)
}

// buildMessage is one line of the daemon's JSON progress stream.
type buildMessage struct {
	Stream      string `json:"stream"`
	Error       string `json:"error"`
	ErrorDetail *struct {
		Message string `json:"message"`
	} `json:"errorDetail"`
}

// drainBuildStream consumes the progress stream until EOF. The daemon reports
// step failures inside the stream with a 200 response, so the stream must be
// scanned rather than discarded.
func drainBuildStream(r io.Reader) error {
	dec := json.NewDecoder(r)
	for {
		var msg buildMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("malformed build output: %w", err)
		}
		if msg.Error != "" {
			return errors.New(msg.Error)
		}
		if msg.ErrorDetail != nil && msg.ErrorDetail.Message != "" {
			return errors.New(msg.ErrorDetail.Message)
		}
	}
}
