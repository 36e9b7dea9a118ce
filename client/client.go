package client

import (
	"context"
	"fmt"

	"jupyterclient/config"
	"jupyterclient/executor"
	"jupyterclient/managers"
	"jupyterclient/model"
	"jupyterclient/transport"

	"go.uber.org/zap"
)

// Client is the entry point of the library. It bundles the shared
// transport with one manager per API area plus the executor. The
// configuration is read once at construction; nothing mutates it
// afterwards, so a Client is safe for concurrent use.
type Client struct {
	Transport   *transport.Transport
	Kernels     *managers.KernelsManager
	KernelSpecs *managers.KernelSpecsManager
	Contents    *managers.ContentsManager
	Sessions    *managers.SessionsManager
	Terminals   *managers.TerminalsManager
	Execs       *executor.Executor
}

// New creates a client from cfg. logger may be nil.
func New(cfg config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := transport.New(cfg.BaseURL, cfg.Token, cfg.RequestTimeout, logger)

	return &Client{
		Transport:   t,
		Kernels:     managers.NewKernelsManager(t),
		KernelSpecs: managers.NewKernelSpecsManager(t),
		Contents:    managers.NewContentsManager(t),
		Sessions:    managers.NewSessionsManager(t),
		Terminals:   managers.NewTerminalsManager(t),
		Execs:       executor.New(t, cfg.PollInterval, cfg.MaxCodeLength, nil),
	}
}

// GetVersion returns the server version from /api/.
func (c *Client) GetVersion(ctx context.Context) (*model.VersionInfo, error) {
	var info model.VersionInfo
	if err := c.Transport.GetJSON(ctx, "/api/", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetStatus returns the server status from /api/status.
func (c *Client) GetStatus(ctx context.Context) (*model.ServerStatus, error) {
	var status model.ServerStatus
	if err := c.Transport.GetJSON(ctx, "/api/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) String() string {
	return fmt.Sprintf("JupyterClient(%s)", c.Transport.BaseURL())
}
