package managers

import (
	"context"

	"jupyterclient/model"
	"jupyterclient/transport"
)

// KernelSpecsManager lists the kernelspecs installed on the server.
type KernelSpecsManager struct {
	transport *transport.Transport
}

func NewKernelSpecsManager(t *transport.Transport) *KernelSpecsManager {
	return &KernelSpecsManager{transport: t}
}

// ListKernelSpecs returns the installed kernelspecs and the default.
func (m *KernelSpecsManager) ListKernelSpecs(ctx context.Context) (*model.KernelSpecs, error) {
	var specs model.KernelSpecs
	if err := m.transport.GetJSON(ctx, "/api/kernelspecs", &specs); err != nil {
		return nil, err
	}
	return &specs, nil
}
