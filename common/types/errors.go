// Copyright (c) 2024 Chronoflow Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package types defines the failure vocabulary of the client: the closed
// set of errors that can terminate or interrupt a workflow or activity
// execution, the classification enums shared with the wire protocol, and
// the cancellation classifier.
//
// Every error here is immutable once constructed. The cause of an error is
// set at construction and read through Unwrap, so a chain can never
// reference itself. An error decoded from the wire additionally carries
// the original wire payload (see Failure), which lets a caught and
// re-raised failure cross the wire again without losing fields this
// client does not interpret.
package types

import (
	"fmt"
	"time"

	failurev1 "github.com/chronoflow/chronoflow-go/api/failure/v1"
)

const (
	// DefaultCancelledErrorMessage is used when a CancelledError is
	// constructed without a message.
	DefaultCancelledErrorMessage = "Cancelled"

	// WorkflowAlreadyStartedErrorMessage is the fixed message of every
	// WorkflowAlreadyStartedError.
	WorkflowAlreadyStartedErrorMessage = "Workflow execution already started"
)

// FailureError is implemented by every error that causes a workflow
// execution failure. Raising any other error type inside workflow or
// activity code is treated as a transient task fault, not a workflow
// failure; see TerminalFailurePolicy.
//
// Do not implement this interface outside this package: the set of
// failure kinds is closed and mapped one-to-one onto the wire protocol.
type FailureError interface {
	error

	// Message returns the human-readable description, without any type
	// prefix an Error() implementation may add.
	Message() string

	// Failure returns the original wire payload this error was decoded
	// from, or nil if the error was constructed directly.
	Failure() *failurev1.Failure

	// Unwrap returns the error that triggered this one, if any.
	Unwrap() error
}

// failureError is the shared state of every concrete failure kind.
type failureError struct {
	message string
	failure *failurev1.Failure
	cause   error
}

func (e *failureError) Error() string               { return e.message }
func (e *failureError) Message() string             { return e.message }
func (e *failureError) Failure() *failurev1.Failure { return e.failure }
func (e *failureError) Unwrap() error               { return e.cause }

// ApplicationError is the only failure kind user code is expected to
// raise directly to signal an application-level failure.
type ApplicationError struct {
	failureError
	errType        string
	details        []*failurev1.Payload
	nonRetryable   bool
	nextRetryDelay *time.Duration
}

// ApplicationErrorOptions are the optional fields of an ApplicationError.
type ApplicationErrorOptions struct {
	// Type is an application-defined category tag. When set it prefixes
	// the Error() string so operators can bucket failures without
	// decoding details.
	Type string

	// NonRetryable marks the error non-retryable at construction time.
	// This is advisory metadata for the retry-policy evaluator, not an
	// enforcement mechanism.
	NonRetryable bool

	// NextRetryDelay overrides the retry policy's delay before the next
	// activity attempt.
	NextRetryDelay *time.Duration

	// Details are opaque encoded payloads attached to the error.
	Details []*failurev1.Payload

	// Cause is the error that triggered this one.
	Cause error

	// Failure is the wire payload this error was decoded from. Set by the
	// wire mapper only; leave nil when constructing errors directly.
	Failure *failurev1.Failure
}

// NewApplicationError returns an error that fails the workflow execution
// when raised from workflow or activity code.
func NewApplicationError(message string, opts ApplicationErrorOptions) *ApplicationError {
	return &ApplicationError{
		failureError:   failureError{message: message, failure: opts.Failure, cause: opts.Cause},
		errType:        opts.Type,
		details:        opts.Details,
		nonRetryable:   opts.NonRetryable,
		nextRetryDelay: opts.NextRetryDelay,
	}
}

// Error returns the display string: the message, prefixed with the type
// tag when one is set. Use Message for the unprefixed text.
func (e *ApplicationError) Error() string {
	if e.errType == "" {
		return e.message
	}
	return fmt.Sprintf("%s: %s", e.errType, e.message)
}

// Type returns the application-defined category tag, or "" if unset.
func (e *ApplicationError) Type() string { return e.errType }

// Details returns the opaque payloads attached to the error.
func (e *ApplicationError) Details() []*failurev1.Payload { return e.details }

// NonRetryable reports whether the error was marked non-retryable when
// created. Retry suppression itself is the retry-policy evaluator's job.
func (e *ApplicationError) NonRetryable() bool { return e.nonRetryable }

// NextRetryDelay returns the requested delay before the next activity
// retry attempt, or nil if none was set.
func (e *ApplicationError) NextRetryDelay() *time.Duration { return e.nextRetryDelay }

// CancelledError represents cooperative cancellation of a workflow or
// activity.
type CancelledError struct {
	failureError
	details []*failurev1.Payload
}

// CancelledErrorOptions are the optional fields of a CancelledError.
type CancelledErrorOptions struct {
	Details []*failurev1.Payload
	Cause   error

	// Failure is set by the wire mapper only.
	Failure *failurev1.Failure
}

// NewCancelledError returns a cancellation error. An empty message
// defaults to "Cancelled".
func NewCancelledError(message string, opts CancelledErrorOptions) *CancelledError {
	if message == "" {
		message = DefaultCancelledErrorMessage
	}
	return &CancelledError{
		failureError: failureError{message: message, failure: opts.Failure, cause: opts.Cause},
		details:      opts.Details,
	}
}

// Details returns the opaque payloads attached to the error.
func (e *CancelledError) Details() []*failurev1.Payload { return e.details }

// TerminatedError represents externally forced termination of a workflow.
type TerminatedError struct {
	failureError
	details []*failurev1.Payload
}

// TerminatedErrorOptions are the optional fields of a TerminatedError.
type TerminatedErrorOptions struct {
	Details []*failurev1.Payload
	Cause   error

	// Failure is set by the wire mapper only.
	Failure *failurev1.Failure
}

// NewTerminatedError returns a termination error.
func NewTerminatedError(message string, opts TerminatedErrorOptions) *TerminatedError {
	return &TerminatedError{
		failureError: failureError{message: message, failure: opts.Failure, cause: opts.Cause},
		details:      opts.Details,
	}
}

// Details returns the opaque payloads attached to the error.
func (e *TerminatedError) Details() []*failurev1.Payload { return e.details }

// TimeoutError represents a workflow or activity timeout, sub-classified
// by TimeoutType.
type TimeoutError struct {
	failureError
	timeoutType          *TimeoutType
	lastHeartbeatDetails []*failurev1.Payload
}

// TimeoutErrorOptions are the optional fields of a TimeoutError.
type TimeoutErrorOptions struct {
	// TimeoutType is nil when the wire carried a value unknown to this
	// client version.
	TimeoutType *TimeoutType

	// LastHeartbeatDetails only apply to heartbeat timeouts and are
	// dropped for any other timeout type.
	LastHeartbeatDetails []*failurev1.Payload

	Cause error

	// Failure is set by the wire mapper only.
	Failure *failurev1.Failure
}

// NewTimeoutError returns a timeout error.
func NewTimeoutError(message string, opts TimeoutErrorOptions) *TimeoutError {
	heartbeatDetails := opts.LastHeartbeatDetails
	if opts.TimeoutType == nil || *opts.TimeoutType != TimeoutTypeHeartbeat {
		heartbeatDetails = nil
	}
	return &TimeoutError{
		failureError:         failureError{message: message, failure: opts.Failure, cause: opts.Cause},
		timeoutType:          opts.TimeoutType,
		lastHeartbeatDetails: heartbeatDetails,
	}
}

// TimeoutType returns the timeout classification, or nil if the wire
// carried a value unknown to this client version.
func (e *TimeoutError) TimeoutType() *TimeoutType { return e.timeoutType }

// LastHeartbeatDetails returns the last recorded heartbeat payloads.
// Populated only for heartbeat timeouts.
func (e *TimeoutError) LastHeartbeatDetails() []*failurev1.Payload { return e.lastHeartbeatDetails }

// ServerError is a failure originating in the orchestration backend
// itself rather than in user code.
type ServerError struct {
	failureError
	nonRetryable bool
}

// ServerErrorOptions are the optional fields of a ServerError.
type ServerErrorOptions struct {
	NonRetryable bool
	Cause        error

	// Failure is set by the wire mapper only.
	Failure *failurev1.Failure
}

// NewServerError returns a backend-originated error.
func NewServerError(message string, opts ServerErrorOptions) *ServerError {
	return &ServerError{
		failureError: failureError{message: message, failure: opts.Failure, cause: opts.Cause},
		nonRetryable: opts.NonRetryable,
	}
}

// NonRetryable reports whether the backend marked this error
// non-retryable.
func (e *ServerError) NonRetryable() bool { return e.nonRetryable }

// ActivityError wraps a failure that occurred during an activity's
// execution. Its cause is the underlying failure.
type ActivityError struct {
	failureError
	scheduledEventID int64
	startedEventID   int64
	identity         string
	activityType     string
	activityID       string
	retryState       *RetryState
}

// ActivityErrorOptions are the fields of an ActivityError.
type ActivityErrorOptions struct {
	ScheduledEventID int64
	StartedEventID   int64
	Identity         string
	ActivityType     string
	ActivityID       string

	// RetryState is nil when the wire carried a value unknown to this
	// client version.
	RetryState *RetryState

	// Cause is the failure that occurred inside the activity.
	Cause error

	// Failure is set by the wire mapper only.
	Failure *failurev1.Failure
}

// NewActivityError returns an error wrapping an activity failure.
func NewActivityError(message string, opts ActivityErrorOptions) *ActivityError {
	return &ActivityError{
		failureError:     failureError{message: message, failure: opts.Failure, cause: opts.Cause},
		scheduledEventID: opts.ScheduledEventID,
		startedEventID:   opts.StartedEventID,
		identity:         opts.Identity,
		activityType:     opts.ActivityType,
		activityID:       opts.ActivityID,
		retryState:       opts.RetryState,
	}
}

// ScheduledEventID returns the history event ID of the activity schedule.
func (e *ActivityError) ScheduledEventID() int64 { return e.scheduledEventID }

// StartedEventID returns the history event ID of the activity start.
func (e *ActivityError) StartedEventID() int64 { return e.startedEventID }

// Identity returns the identity of the worker that ran the activity.
func (e *ActivityError) Identity() string { return e.identity }

// ActivityType returns the activity type name.
func (e *ActivityError) ActivityType() string { return e.activityType }

// ActivityID returns the activity ID.
func (e *ActivityError) ActivityID() string { return e.activityID }

// RetryState returns why the activity stopped retrying, or nil if the
// wire carried a value unknown to this client version.
func (e *ActivityError) RetryState() *RetryState { return e.retryState }

// ChildWorkflowError wraps a failure from a child workflow execution. Its
// cause is the underlying failure.
type ChildWorkflowError struct {
	failureError
	namespace        string
	workflowID       string
	runID            string
	workflowType     string
	initiatedEventID int64
	startedEventID   int64
	retryState       *RetryState
}

// ChildWorkflowErrorOptions are the fields of a ChildWorkflowError.
type ChildWorkflowErrorOptions struct {
	Namespace        string
	WorkflowID       string
	RunID            string
	WorkflowType     string
	InitiatedEventID int64
	StartedEventID   int64

	// RetryState is nil when the wire carried a value unknown to this
	// client version.
	RetryState *RetryState

	// Cause is the failure that occurred inside the child workflow.
	Cause error

	// Failure is set by the wire mapper only.
	Failure *failurev1.Failure
}

// NewChildWorkflowError returns an error wrapping a child workflow
// failure.
func NewChildWorkflowError(message string, opts ChildWorkflowErrorOptions) *ChildWorkflowError {
	return &ChildWorkflowError{
		failureError:     failureError{message: message, failure: opts.Failure, cause: opts.Cause},
		namespace:        opts.Namespace,
		workflowID:       opts.WorkflowID,
		runID:            opts.RunID,
		workflowType:     opts.WorkflowType,
		initiatedEventID: opts.InitiatedEventID,
		startedEventID:   opts.StartedEventID,
		retryState:       opts.RetryState,
	}
}

// Namespace returns the namespace of the child workflow.
func (e *ChildWorkflowError) Namespace() string { return e.namespace }

// WorkflowID returns the workflow ID of the child workflow.
func (e *ChildWorkflowError) WorkflowID() string { return e.workflowID }

// RunID returns the run ID of the child workflow.
func (e *ChildWorkflowError) RunID() string { return e.runID }

// WorkflowType returns the workflow type name of the child workflow.
func (e *ChildWorkflowError) WorkflowType() string { return e.workflowType }

// InitiatedEventID returns the history event ID of the child initiation.
func (e *ChildWorkflowError) InitiatedEventID() int64 { return e.initiatedEventID }

// StartedEventID returns the history event ID of the child start.
func (e *ChildWorkflowError) StartedEventID() int64 { return e.startedEventID }

// RetryState returns why the child workflow stopped retrying, or nil if
// the wire carried a value unknown to this client version.
func (e *ChildWorkflowError) RetryState() *RetryState { return e.retryState }

// WorkflowAlreadyStartedError is returned by client-side start calls when
// a workflow execution with the same ID is already running. It is not
// part of execution-failure propagation.
type WorkflowAlreadyStartedError struct {
	failureError
	workflowID   string
	workflowType string
	runID        *string
}

// WorkflowAlreadyStartedErrorOptions are the optional fields of a
// WorkflowAlreadyStartedError.
type WorkflowAlreadyStartedErrorOptions struct {
	// RunID of the already-started execution. Present when the error is
	// returned by the client; absent when in-workflow code attempted to
	// start a child.
	RunID *string

	Cause error

	// Failure is set by the wire mapper only.
	Failure *failurev1.Failure
}

// NewWorkflowAlreadyStartedError returns an already-started error. Its
// message is fixed.
func NewWorkflowAlreadyStartedError(workflowID, workflowType string, opts WorkflowAlreadyStartedErrorOptions) *WorkflowAlreadyStartedError {
	return &WorkflowAlreadyStartedError{
		failureError: failureError{message: WorkflowAlreadyStartedErrorMessage, failure: opts.Failure, cause: opts.Cause},
		workflowID:   workflowID,
		workflowType: workflowType,
		runID:        opts.RunID,
	}
}

// WorkflowID returns the ID of the already-started workflow.
func (e *WorkflowAlreadyStartedError) WorkflowID() string { return e.workflowID }

// WorkflowType returns the type name of the already-started workflow.
func (e *WorkflowAlreadyStartedError) WorkflowType() string { return e.workflowType }

// RunID returns the run ID of the already-started workflow when the error
// was returned by the client, nil otherwise.
func (e *WorkflowAlreadyStartedError) RunID() *string { return e.runID }

// GenericError is produced when decoding a wire failure whose failure
// info case is unknown to this client version. It carries only the
// message and the raw payload, so re-encoding it loses nothing.
type GenericError struct {
	failureError
}

// GenericErrorOptions are the optional fields of a GenericError.
type GenericErrorOptions struct {
	Cause error

	// Failure is set by the wire mapper only.
	Failure *failurev1.Failure
}

// NewGenericError returns a failure of no particular kind.
func NewGenericError(message string, opts GenericErrorOptions) *GenericError {
	return &GenericError{
		failureError: failureError{message: message, failure: opts.Failure, cause: opts.Cause},
	}
}
