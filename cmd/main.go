package main

import (
	"context"

	"jupyterclient/client"
	"jupyterclient/config"
	"jupyterclient/logger"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Walks the API of a running Jupyter Server: version, kernelspecs,
// running kernels, then a few synchronous code executions on the first
// kernel found. Configure with JUPYTER_SERVER_URL and JUPYTER_TOKEN.
func main() {
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer zlog.Sync()

	c := client.New(cfg, zlog)
	ctx := context.Background()

	color.Cyan("Connecting to Jupyter Server at %s", cfg.BaseURL)

	version, err := c.GetVersion(ctx)
	if err != nil {
		zlog.Fatal("Failed to reach the server",
			zap.String("url", cfg.BaseURL),
			zap.Error(err))
	}
	color.Green("Server version: %s", version.Version)

	specs, err := c.KernelSpecs.ListKernelSpecs(ctx)
	if err != nil {
		zlog.Fatal("Failed to list kernelspecs", zap.Error(err))
	}
	color.Green("Default kernelspec: %s (%d installed)", specs.Default, len(specs.KernelSpecs))

	kernels, err := c.Kernels.ListKernels(ctx)
	if err != nil {
		zlog.Fatal("Failed to list kernels", zap.Error(err))
	}
	if len(kernels) == 0 {
		color.Yellow("No running kernels found.")
		color.Yellow("Start one first, e.g.: c.Sessions.CreateSession(ctx, \"demo.ipynb\", \"notebook\", %q)", specs.Default)
		return
	}

	kernel := kernels[0]
	color.Cyan("Using kernel %s (%s, state %s)", kernel.ID, kernel.Name, kernel.ExecutionState)

	snippets := []string{
		"print('Hello, World!')",
		"1 + 1",
		"x = 42\ny = x * 2\nprint(f'x={x}, y={y}')",
	}
	for _, code := range snippets {
		color.White("--- Executing: %s ---", code)

		result, err := c.Execs.Execute(ctx, kernel.ID, code, cfg.ExecTimeout)
		if err != nil {
			color.Red("Execution failed: %v", err)
			continue
		}

		color.Green("Status: %s", result.Status)
		if result.ExecutionCount != nil {
			color.Green("Execution count: %d", *result.ExecutionCount)
		}
		for i, out := range result.ParsedOutputs() {
			color.White("Output %d: %v", i, out)
		}
	}
}
