package testenv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
)

const (
	serverImage = "jupyter/base-notebook:latest"
	serverPort  = "8888/tcp"
)

// Server is a disposable Jupyter Server container backing the opt-in
// integration tests. The image must already be present locally.
type Server struct {
	dockerClient *client.Client
	containerID  string
	logger       *logrus.Logger

	BaseURL string
	Token   string
}

// StartServer creates and starts a Jupyter Server container with a
// random token, published on an ephemeral localhost port.
func StartServer(ctx context.Context) (*Server, error) {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %v", err)
	}

	token := uuid.NewString()
	config := &container.Config{
		Image: serverImage,
		Cmd: []string{
			"start-notebook.sh",
			"--ServerApp.ip=0.0.0.0",
			"--ServerApp.token=" + token,
		},
		ExposedPorts: nat.PortSet{serverPort: struct{}{}},
	}
	hostConfig := &container.HostConfig{
		PortBindings: nat.PortMap{
			serverPort: []nat.PortBinding{{HostIP: "127.0.0.1", HostPort: "0"}},
		},
	}

	resp, err := dockerClient.ContainerCreate(ctx, config, hostConfig, nil, nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %v", err)
	}

	if err := dockerClient.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		dockerClient.ContainerRemove(ctx, resp.ID, container.RemoveOptions{Force: true})
		return nil, fmt.Errorf("failed to start container: %v", err)
	}

	inspect, err := dockerClient.ContainerInspect(ctx, resp.ID)
	if err != nil {
		dockerClient.ContainerRemove(ctx, resp.ID, container.RemoveOptions{Force: true})
		return nil, fmt.Errorf("failed to inspect container: %v", err)
	}
	bindings := inspect.NetworkSettings.Ports[serverPort]
	if len(bindings) == 0 {
		dockerClient.ContainerRemove(ctx, resp.ID, container.RemoveOptions{Force: true})
		return nil, errors.New("no host port bound for the server container")
	}

	logger := logrus.New()
	logger.Printf("Started Jupyter Server container: %s", shortID(resp.ID))

	return &Server{
		dockerClient: dockerClient,
		containerID:  resp.ID,
		logger:       logger,
		BaseURL:      "http://127.0.0.1:" + bindings[0].HostPort,
		Token:        token,
	}, nil
}

// WaitReady polls /api/ until the server answers or timeout elapses.
func (s *Server) WaitReady(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	httpClient := &http.Client{Timeout: 2 * time.Second}

	for time.Now().Before(deadline) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/api/", nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+s.Token)

		resp, err := httpClient.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}

// Shutdown force-removes the container.
func (s *Server) Shutdown() {
	ctx := context.Background()
	if err := s.dockerClient.ContainerRemove(ctx, s.containerID, container.RemoveOptions{Force: true}); err != nil {
		s.logger.Printf("Failed to remove container %s: %v", shortID(s.containerID), err)
		return
	}
	s.logger.Printf("Removed container: %s", shortID(s.containerID))
}

// shortID returns a shortened container ID for logging
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
