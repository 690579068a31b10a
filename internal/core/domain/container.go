package domain

// Container represents a container as reported by the runtime (Docker, Podman, etc.)
type Container struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Status string `json:"status"`
	State  string `json:"state"` // running, exited, etc.
}

// Running reports whether the runtime considers the container running.
func (c Container) Running() bool {
	return c.State == "running"
}
