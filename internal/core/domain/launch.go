package domain

import "fmt"

// Defaults for the dev launcher. They mirror what the application expects:
// a Streamlit service on its standard port, with the app source and stylesheet
// mounted over the image copies so edits on the host show up on save.
const (
	DefaultAppName       = "ai-fit-tool"
	DefaultPort          = 8501
	DefaultAppFile       = "app.py"
	DefaultStylesheet    = "style.css"
	DefaultConfigFile    = ".streamlit/config.toml"
	DefaultContainerRoot = "/app"
	DefaultHost          = "localhost"
)

// Mount is a single host-path-to-container-path bind mount.
type Mount struct {
	Source   string
	Target   string
	ReadOnly bool
}

// String renders the mount in Docker's SOURCE:TARGET[:ro] bind syntax.
func (m Mount) String() string {
	if m.ReadOnly {
		return fmt.Sprintf("%s:%s:ro", m.Source, m.Target)
	}
	return fmt.Sprintf("%s:%s", m.Source, m.Target)
}

// LaunchSpec describes the container the launcher should start: image, identity,
// port mapping, environment, and bind mounts. Values are fixed at process start.
// The container side of the port mapping stays on the service's fixed listen
// port; only the host side is operator-configurable.
type LaunchSpec struct {
	Name          string            // container name, also used as the image tag
	Image         string            // image to run
	HostPort      int               // host port the service is published on
	ContainerPort int               // fixed port the service listens on inside
	Env           map[string]string // environment passed to the service
	Mounts        []Mount
}

// URL is the address the service will be reachable at once it comes up.
func (s LaunchSpec) URL() string {
	return fmt.Sprintf("http://%s:%d", DefaultHost, s.HostPort)
}
