package managers

import (
	"context"
	"fmt"

	"jupyterclient/model"
	"jupyterclient/transport"
)

// KernelsManager lists running kernels. It is read-only by contract:
// starting, stopping and restarting kernels belongs to a separate
// kernel client, not to this library.
type KernelsManager struct {
	transport *transport.Transport
}

func NewKernelsManager(t *transport.Transport) *KernelsManager {
	return &KernelsManager{transport: t}
}

// ListKernels returns all running kernels.
func (m *KernelsManager) ListKernels(ctx context.Context) ([]model.Kernel, error) {
	var kernels []model.Kernel
	if err := m.transport.GetJSON(ctx, "/api/kernels", &kernels); err != nil {
		return nil, err
	}
	for i := range kernels {
		if err := kernels[i].Validate(); err != nil {
			return nil, fmt.Errorf("kernel %d: %w", i, err)
		}
	}
	return kernels, nil
}

// GetKernel returns one kernel by id.
func (m *KernelsManager) GetKernel(ctx context.Context, kernelID string) (*model.Kernel, error) {
	var kernel model.Kernel
	if err := m.transport.GetJSON(ctx, "/api/kernels/"+kernelID, &kernel); err != nil {
		return nil, err
	}
	if err := kernel.Validate(); err != nil {
		return nil, err
	}
	return &kernel, nil
}
