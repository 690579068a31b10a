package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMountString(t *testing.T) {
	rw := Mount{Source: "/work/app.py", Target: "/app/app.py"}
	assert.Equal(t, "/work/app.py:/app/app.py", rw.String())

	ro := Mount{Source: "/work/.streamlit/config.toml", Target: "/app/.streamlit/config.toml", ReadOnly: true}
	assert.Equal(t, "/work/.streamlit/config.toml:/app/.streamlit/config.toml:ro", ro.String())
}

func TestLaunchSpecURLUsesHostPort(t *testing.T) {
	spec := LaunchSpec{Name: DefaultAppName, HostPort: DefaultPort, ContainerPort: DefaultPort}
	assert.Equal(t, "http://localhost:8501", spec.URL())

	spec.HostPort = 9000
	assert.Equal(t, "http://localhost:9000", spec.URL())
}

func TestContainerRunning(t *testing.T) {
	assert.True(t, Container{State: "running"}.Running())
	assert.False(t, Container{State: "exited"}.Running())
}
