package client

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"jupyterclient/config"
	"jupyterclient/testenv"
)

// Exercises the full workflow against a real Jupyter Server running in
// a local docker container. Opt in with JUPYTER_INTEGRATION=1; the
// jupyter/base-notebook image must be available locally.
func TestIntegrationExecute(t *testing.T) {
	if os.Getenv("JUPYTER_INTEGRATION") == "" {
		t.Skip("set JUPYTER_INTEGRATION=1 to run against a real server")
	}

	ctx := context.Background()
	srv, err := testenv.StartServer(ctx)
	if err != nil {
		t.Skipf("could not start server container: %v", err)
	}
	defer srv.Shutdown()

	if err := srv.WaitReady(ctx, 2*time.Minute); err != nil {
		t.Fatalf("server never became ready: %v", err)
	}

	c := New(config.Config{
		BaseURL:        srv.BaseURL,
		Token:          srv.Token,
		RequestTimeout: 30 * time.Second,
		PollInterval:   100 * time.Millisecond,
	}, nil)

	version, err := c.GetVersion(ctx)
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	t.Logf("server version: %s", version.Version)

	specs, err := c.KernelSpecs.ListKernelSpecs(ctx)
	if err != nil {
		t.Fatalf("ListKernelSpecs: %v", err)
	}

	session, err := c.Sessions.CreateSession(ctx, "integration.ipynb", "notebook", specs.Default)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	defer c.Sessions.DeleteSession(ctx, session.ID)

	kernels, err := c.Kernels.ListKernels(ctx)
	if err != nil {
		t.Fatalf("ListKernels: %v", err)
	}
	if len(kernels) == 0 {
		t.Fatal("no kernel after session creation")
	}

	result, err := c.Execs.Execute(ctx, session.Kernel.ID, "print('hello from integration')", time.Minute)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Status != "ok" {
		t.Errorf("status = %q, want ok", result.Status)
	}
	if !strings.Contains(result.Text(), "hello from integration") {
		t.Errorf("stream text = %q", result.Text())
	}

	// Direct fetch of the same result via the execution id in the
	// location is covered by GetExecutionResult unit tests; here the
	// poll-based path is the one worth exercising end to end.
}
