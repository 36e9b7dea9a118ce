package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingKernelID   = errors.New("kernel id is required")
	ErrMissingKernelName = errors.New("kernel name is required")
)

// Terminal execution statuses reported by the server. Any other value
// (or a missing status field) means the execution is still running.
const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusAbort = "abort"
)

// IsTerminalStatus reports whether status marks a finished execution.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusOK, StatusError, StatusAbort:
		return true
	}
	return false
}

// ExecutionRequest is the body POSTed to /api/kernels/{id}/execute
type ExecutionRequest struct {
	Code string `json:"code"`
}

// ExecutionResult is the terminal response of a kernel execution
type ExecutionResult struct {
	Status         string   `json:"status"`
	ExecutionCount *int     `json:"execution_count"`
	Outputs        []Output `json:"outputs"`
}

// ParsedOutputs returns the outputs as plain maps, in emission order.
func (r *ExecutionResult) ParsedOutputs() []map[string]any {
	parsed := make([]map[string]any, 0, len(r.Outputs))
	for _, out := range r.Outputs {
		parsed = append(parsed, out.Fields())
	}
	return parsed
}

// Text concatenates the stream output text in emission order.
func (r *ExecutionResult) Text() string {
	var sb strings.Builder
	for _, out := range r.Outputs {
		if out.OutputType == "stream" {
			sb.WriteString(out.Text())
		}
	}
	return sb.String()
}

// Output is one unit of kernel output (stream text, display data or
// error info). The fields beyond output_type depend on the type, so the
// raw record is kept as-is.
type Output struct {
	OutputType string
	raw        map[string]any
}

func (o *Output) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.raw = raw
	if t, ok := raw["output_type"].(string); ok {
		o.OutputType = t
	}
	return nil
}

func (o Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.raw)
}

// Fields returns the raw record of the output.
func (o Output) Fields() map[string]any {
	return o.raw
}

// Text returns the textual payload of the output. Notebook outputs
// carry text either as a string or as a list of lines.
func (o Output) Text() string {
	switch v := o.raw["text"].(type) {
	case string:
		return v
	case []any:
		var sb strings.Builder
		for _, line := range v {
			if s, ok := line.(string); ok {
				sb.WriteString(s)
			}
		}
		return sb.String()
	}
	return ""
}

// Kernel describes a running kernel as reported by /api/kernels
type Kernel struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	LastActivity   time.Time `json:"last_activity"`
	ExecutionState string    `json:"execution_state"`
	Connections    int       `json:"connections"`
}

// Validate checks the mandatory kernel fields. Decoding a kernel
// without id or name is a failure, not a value to null-check later.
func (k *Kernel) Validate() error {
	if k.ID == "" {
		return ErrMissingKernelID
	}
	if k.Name == "" {
		return ErrMissingKernelName
	}
	return nil
}

// SessionKernel is the abbreviated kernel record embedded in a session.
type SessionKernel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session describes a server session binding a path to a kernel
type Session struct {
	ID     string        `json:"id"`
	Path   string        `json:"path"`
	Name   string        `json:"name"`
	Type   string        `json:"type"`
	Kernel SessionKernel `json:"kernel"`
}

// Content describes a file, directory or notebook from /api/contents
type Content struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Type         string    `json:"type"`
	Writable     bool      `json:"writable"`
	LastModified time.Time `json:"last_modified"`
	Created      time.Time `json:"created"`
	Content      any       `json:"content"`
	Format       string    `json:"format,omitempty"`
	Mimetype     string    `json:"mimetype,omitempty"`
	Size         int64     `json:"size,omitempty"`
}

// KernelSpecFile is the kernel.json payload of a kernelspec
type KernelSpecFile struct {
	Language    string   `json:"language"`
	DisplayName string   `json:"display_name"`
	Argv        []string `json:"argv,omitempty"`
}

// KernelSpec describes one installed kernelspec
type KernelSpec struct {
	Name      string            `json:"name"`
	Spec      KernelSpecFile    `json:"spec"`
	Resources map[string]string `json:"resources,omitempty"`
}

// KernelSpecs is the /api/kernelspecs listing
type KernelSpecs struct {
	Default     string                `json:"default"`
	KernelSpecs map[string]KernelSpec `json:"kernelspecs"`
}

// Terminal describes a running terminal from /api/terminals
type Terminal struct {
	Name         string    `json:"name"`
	LastActivity time.Time `json:"last_activity"`
}

// VersionInfo is the /api/ response
type VersionInfo struct {
	Version string `json:"version"`
}

// ServerStatus is the /api/status response
type ServerStatus struct {
	Started      time.Time `json:"started"`
	LastActivity time.Time `json:"last_activity"`
	Kernels      int       `json:"kernels"`
	Connections  int       `json:"connections"`
}
