package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestKernelValidate(t *testing.T) {
	kernel := Kernel{ID: "kernel-123", Name: "python3", ExecutionState: "idle", Connections: 1}
	if err := kernel.Validate(); err != nil {
		t.Errorf("valid kernel rejected: %v", err)
	}

	missingName := Kernel{ID: "kernel-123"}
	if err := missingName.Validate(); !errors.Is(err, ErrMissingKernelName) {
		t.Errorf("err = %v, want ErrMissingKernelName", err)
	}

	missingID := Kernel{Name: "python3"}
	if err := missingID.Validate(); !errors.Is(err, ErrMissingKernelID) {
		t.Errorf("err = %v, want ErrMissingKernelID", err)
	}
}

func TestKernelFromAPIResponse(t *testing.T) {
	payload := `{
		"id": "f8b5c7a9-1234-5678-9abc-def012345678",
		"name": "python3",
		"last_activity": "2023-12-01T10:30:15.123456Z",
		"execution_state": "busy",
		"connections": 3
	}`
	var kernel Kernel
	if err := json.Unmarshal([]byte(payload), &kernel); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := kernel.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if kernel.ExecutionState != "busy" || kernel.Connections != 3 {
		t.Errorf("unexpected kernel: %+v", kernel)
	}
	if kernel.LastActivity.IsZero() {
		t.Error("last_activity not parsed")
	}
}

func TestIsTerminalStatus(t *testing.T) {
	for _, status := range []string{StatusOK, StatusError, StatusAbort} {
		if !IsTerminalStatus(status) {
			t.Errorf("%q should be terminal", status)
		}
	}
	for _, status := range []string{"", "pending", "busy", "running"} {
		if IsTerminalStatus(status) {
			t.Errorf("%q should not be terminal", status)
		}
	}
}

func TestExecutionResultDecoding(t *testing.T) {
	payload := `{
		"status": "ok",
		"execution_count": 5,
		"outputs": [
			{"output_type": "stream", "name": "stdout", "text": "Hello, World!\n"},
			{"output_type": "error", "ename": "ZeroDivisionError", "evalue": "division by zero"}
		]
	}`
	var result ExecutionResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.Status != StatusOK {
		t.Errorf("status = %q", result.Status)
	}
	if result.ExecutionCount == nil || *result.ExecutionCount != 5 {
		t.Errorf("execution_count = %v, want 5", result.ExecutionCount)
	}
	if len(result.Outputs) != 2 {
		t.Fatalf("outputs = %d, want 2", len(result.Outputs))
	}
	if result.Outputs[0].OutputType != "stream" || result.Outputs[1].OutputType != "error" {
		t.Error("output order not preserved")
	}
	if got := result.Outputs[0].Text(); got != "Hello, World!\n" {
		t.Errorf("text = %q", got)
	}

	parsed := result.ParsedOutputs()
	if len(parsed) != 2 {
		t.Fatalf("parsed outputs = %d, want 2", len(parsed))
	}
	if parsed[1]["ename"] != "ZeroDivisionError" {
		t.Errorf("type-specific fields lost: %v", parsed[1])
	}
}

func TestExecutionResultNullExecutionCount(t *testing.T) {
	var result ExecutionResult
	if err := json.Unmarshal([]byte(`{"status": "abort", "execution_count": null, "outputs": []}`), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.ExecutionCount != nil {
		t.Errorf("execution_count = %v, want nil", result.ExecutionCount)
	}
}

func TestOutputTextFromLines(t *testing.T) {
	var out Output
	if err := json.Unmarshal([]byte(`{"output_type": "stream", "text": ["line one\n", "line two\n"]}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := out.Text(); got != "line one\nline two\n" {
		t.Errorf("text = %q", got)
	}
}

func TestOutputRoundTrip(t *testing.T) {
	raw := `{"data":{"image/png":"iVBOR..."},"output_type":"display_data"}`
	var out Output
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	encoded, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again map[string]any
	if err := json.Unmarshal(encoded, &again); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if again["output_type"] != "display_data" {
		t.Errorf("round trip lost fields: %v", again)
	}
}
