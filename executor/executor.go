package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jupyterclient/internal"
	"jupyterclient/model"
	"jupyterclient/transport"

	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
)

// DefaultPollInterval is the delay between result polls.
const DefaultPollInterval = 100 * time.Millisecond

// Executor runs code in a kernel through the /api/kernels/{id}/execute
// endpoint. The endpoint is fire-and-forget: the server answers the
// submit with a Location header pointing at the result resource, and
// the executor turns that into a blocking call by polling the location
// until a terminal status shows up or the deadline elapses.
//
// Note: this is an undocumented endpoint and may change across server
// versions; the terminal-body decoding is isolated in decodeTerminal.
type Executor struct {
	transport     *transport.Transport
	pollInterval  time.Duration
	maxCodeLength int
	logger        *logrus.Logger

	// clock hooks, swapped out in tests to avoid real delays
	now   func() time.Time
	sleep func(time.Duration)
}

// New creates an executor on top of the given transport. pollInterval
// <= 0 selects the default; maxCodeLength <= 0 disables the client-side
// code size guard.
func New(t *transport.Transport, pollInterval time.Duration, maxCodeLength int, logger *logrus.Logger) *Executor {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Executor{
		transport:     t,
		pollInterval:  pollInterval,
		maxCodeLength: maxCodeLength,
		logger:        logger,
		now:           time.Now,
		sleep:         time.Sleep,
	}
}

// Execute submits code to the kernel and blocks until the execution
// finishes or timeout elapses. timeout <= 0 means wait indefinitely.
// Exactly one terminal result or one error comes back; there is no
// intermediate state visible to the caller.
func (e *Executor) Execute(ctx context.Context, kernelID, code string, timeout time.Duration) (*model.ExecutionResult, error) {
	log := e.logger.WithFields(logrus.Fields{
		"trace":  uuid.NewString(),
		"kernel": kernelID,
	})

	if err := internal.ValidateCode(code, e.maxCodeLength); err != nil {
		return nil, &transport.APIError{Kind: transport.KindValidation, Message: err.Error(), Err: err}
	}

	pending, err := e.submit(ctx, kernelID, code, timeout)
	if err != nil {
		log.WithError(err).Warn("Execution submit failed")
		return nil, err
	}
	log.WithField("location", pending.location).Debug("Execution submitted")

	return e.poll(ctx, pending, log)
}

// GetExecutionResult fetches the result of a previously submitted
// execution in one request. The caller is responsible for knowing the
// execution is ready; the body is decoded as terminal unconditionally.
func (e *Executor) GetExecutionResult(ctx context.Context, kernelID, executionID string) (*model.ExecutionResult, error) {
	path := fmt.Sprintf("/api/kernels/%s/executions/%s", kernelID, executionID)
	var result model.ExecutionResult
	if err := e.transport.GetJSON(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// submit POSTs the code and extracts the result location. A response
// without a Location header is a protocol violation the poll loop
// cannot recover from, so it fails here before any poll is issued.
func (e *Executor) submit(ctx context.Context, kernelID, code string, timeout time.Duration) (*pendingExecution, error) {
	path := fmt.Sprintf("/api/kernels/%s/execute", kernelID)
	resp, err := e.transport.Do(ctx, http.MethodPost, path, model.ExecutionRequest{Code: code})
	if err != nil {
		return nil, err
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return nil, transport.NewMissingLocationError()
	}

	pending := &pendingExecution{
		kernelID: kernelID,
		location: location,
		interval: e.pollInterval,
		timeout:  timeout,
	}
	if timeout > 0 {
		pending.deadline = e.now().Add(timeout)
	}
	return pending, nil
}

// poll GETs the result location until the body carries a terminal
// status. Polls are strictly sequential; the only suspension points are
// the network call and the inter-poll sleep. The deadline check at the
// top of each iteration is the sole cancellation mechanism.
func (e *Executor) poll(ctx context.Context, pending *pendingExecution, log *logrus.Entry) (*model.ExecutionResult, error) {
	attempts := 0
	for {
		if pending.expired(e.now()) {
			log.WithField("attempts", attempts).Warn("Execution timed out")
			return nil, transport.NewTimeoutError(pending.timeout)
		}

		resp, err := e.transport.Do(ctx, http.MethodGet, pending.location, nil)
		if err != nil {
			log.WithError(err).WithField("attempts", attempts).Error("Result poll failed")
			return nil, err
		}
		attempts++

		result, done, err := decodeTerminal(resp.Body)
		if err != nil {
			return nil, err
		}
		if done {
			log.WithFields(logrus.Fields{
				"attempts": attempts,
				"status":   result.Status,
			}).Debug("Execution completed")
			return result, nil
		}

		e.sleep(pending.interval)
	}
}

// decodeTerminal decodes one poll body. done stays false while the body
// carries no recognized terminal status — the server provides no stable
// "pending" marker, so absence of a terminal status is the only "still
// running" signal.
func decodeTerminal(body []byte) (*model.ExecutionResult, bool, error) {
	var probe struct {
		Status string `json:"status"`
	}
	if len(body) == 0 || json.Unmarshal(body, &probe) != nil {
		return nil, false, nil
	}
	if !model.IsTerminalStatus(probe.Status) {
		return nil, false, nil
	}

	var result model.ExecutionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, false, fmt.Errorf("decode execution result: %w", err)
	}
	return &result, true, nil
}
