package revrseai

import (
	"context"
	"errors"
	"time"
)

// defaultPollInterval is how long WaitTillDone sleeps between status
// queries when no WithPollInterval option is given.
const defaultPollInterval = 10 * time.Second

// TaskStatus represents the lifecycle state of a generation task.
//
// Tasks move pending → running → {done, failed}. Done and failed are
// terminal; once a task reports either, its status never changes again.
type TaskStatus string

const (
	// TaskPending indicates the task is queued but generation has not started.
	TaskPending TaskStatus = "pending"

	// TaskRunning indicates the platform is exploring the app and building
	// endpoints.
	TaskRunning TaskStatus = "running"

	// TaskDone indicates generation finished and the endpoints are callable.
	TaskDone TaskStatus = "done"

	// TaskFailed indicates generation ended without producing endpoints.
	TaskFailed TaskStatus = "failed"
)

// String returns the string representation of the status.
// This implements the fmt.Stringer interface.
func (s TaskStatus) String() string {
	return string(s)
}

// Terminal reports whether the status is done or failed.
func (s TaskStatus) Terminal() bool {
	return s == TaskDone || s == TaskFailed
}

// Task is a server-side unit of work that generates endpoints from a
// natural-language prompt.
//
// Tasks are created by [Client.Generate] and retrieved by [Client.Task] or
// [Client.Tasks]. The Status field is refreshed by [Task.Update] and by the
// polling loop inside [Task.WaitTillDone]; all other fields are server-owned
// and read-only on the client.
type Task struct {
	// ID is the unique identifier of the task.
	ID string `json:"id"`

	// Title is the server-assigned short title.
	Title string `json:"title"`

	// Description is the server-assigned description of the task.
	Description string `json:"description"`

	// CurrentAction is a human-readable progress note, such as the screen
	// currently being explored.
	CurrentAction string `json:"current_action"`

	// Status is the lifecycle state. See [TaskStatus].
	Status TaskStatus `json:"status"`

	// Error is the service-reported failure detail when Status is
	// [TaskFailed], empty otherwise.
	Error string `json:"error,omitempty"`

	// CreatedAt is when the task was submitted.
	CreatedAt time.Time `json:"created_at"`

	client *Client
	result *GenerationResult
}

// waitConfig holds mutable state while wait options are applied.
type waitConfig struct {
	interval time.Duration
	timeout  time.Duration
}

// WaitOption configures a [Task.WaitTillDone] call.
//
// Built-in options: [WithPollInterval], [WithWaitTimeout].
type WaitOption func(*waitConfig) error

// WithPollInterval sets how long to sleep between status queries.
// Defaults to 10 seconds.
//
// Returns an error if the duration is zero or negative.
func WithPollInterval(d time.Duration) WaitOption {
	return func(cfg *waitConfig) error {
		if d <= 0 {
			return errors.New("poll interval must be positive")
		}
		cfg.interval = d
		return nil
	}
}

// WithWaitTimeout bounds the total time spent polling. When the timeout
// fires before the task reaches a terminal state, [Task.WaitTillDone]
// returns [PollTimeoutError] and issues no further status queries.
//
// No timeout is applied when this option is absent; the wait is then
// bounded only by the caller's context.
//
// Returns an error if the duration is zero or negative.
func WithWaitTimeout(d time.Duration) WaitOption {
	return func(cfg *waitConfig) error {
		if d <= 0 {
			return errors.New("wait timeout must be positive")
		}
		cfg.timeout = d
		return nil
	}
}

// Update refreshes the task's fields from the service using the lightweight
// (no messages, no endpoints) lookup.
func (t *Task) Update(ctx context.Context) error {
	if t.client == nil {
		return errors.New("revrseai: task is not attached to a client")
	}
	fresh, err := t.client.Task(ctx, t.ID)
	if err != nil {
		return err
	}
	client, result := t.client, t.result
	*t = *fresh
	t.client = client
	t.result = result
	return nil
}

// WaitTillDone blocks until the task reaches a terminal state and returns
// the generation result.
//
// The wait loop checks the task's current status first: an already-terminal
// task short-circuits without a status query, returning the cached result
// (or the cached failure for a failed task). Otherwise the loop sleeps for
// the poll interval, refreshes the task, and repeats. Each poll is one
// blocking round trip; the same task is never polled concurrently within a
// single call.
//
//   - done: the full result (messages + endpoints) is fetched once, cached
//     on the task, and returned.
//   - failed: returns [GenerationFailedError] with the service's detail.
//   - timeout exceeded ([WithWaitTimeout]): returns [PollTimeoutError];
//     polling stops immediately.
//   - context cancelled: returns ctx.Err().
//
// Example:
//
//	result, err := task.WaitTillDone(ctx,
//	    revrseai.WithPollInterval(5*time.Second),
//	    revrseai.WithWaitTimeout(10*time.Minute),
//	)
func (t *Task) WaitTillDone(ctx context.Context, opts ...WaitOption) (*GenerationResult, error) {
	cfg := &waitConfig{interval: defaultPollInterval}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if t.client == nil {
		return nil, errors.New("revrseai: task is not attached to a client")
	}

	// deadline channel stays nil (blocks forever) when no timeout is set
	var deadline <-chan time.Time
	if cfg.timeout > 0 {
		timer := time.NewTimer(cfg.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		switch t.Status {
		case TaskDone:
			if t.result == nil {
				result, err := t.client.TaskResult(ctx, t.ID)
				if err != nil {
					return nil, err
				}
				t.result = result
			}
			return t.result, nil
		case TaskFailed:
			return nil, &GenerationFailedError{TaskID: t.ID, Detail: t.failureDetail()}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, &PollTimeoutError{TaskID: t.ID, Timeout: cfg.timeout}
		case <-time.After(cfg.interval):
		}

		if err := t.Update(ctx); err != nil {
			return nil, err
		}
		t.client.logger.Debug("task polled",
			"task_id", t.ID,
			"status", t.Status,
			"current_action", t.CurrentAction,
		)
	}
}

func (t *Task) failureDetail() string {
	if t.Error != "" {
		return t.Error
	}
	return t.CurrentAction
}
