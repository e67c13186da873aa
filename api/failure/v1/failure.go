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

// Package failurev1 is a hand-maintained, field-level mirror of the
// orchestration protocol's failure schema. The schema and its binary
// encoding are owned by the protocol; this package only describes the
// fields the client reads and writes. Enum codes are pinned to the
// protocol values and must never be renumbered.
package failurev1

import "time"

// Failure is the wire representation of a single failure. Message and
// StackTrace apply to every failure kind; exactly one of the *FailureInfo
// pointers is set and discriminates the kind. Cause carries the failure
// that triggered this one, forming a singly linked chain.
type Failure struct {
	Message    string
	StackTrace string
	Cause      *Failure

	ApplicationFailureInfo                     *ApplicationFailureInfo
	CancelledFailureInfo                       *CancelledFailureInfo
	TerminatedFailureInfo                      *TerminatedFailureInfo
	TimeoutFailureInfo                         *TimeoutFailureInfo
	ServerFailureInfo                          *ServerFailureInfo
	ActivityFailureInfo                        *ActivityFailureInfo
	ChildWorkflowExecutionFailureInfo          *ChildWorkflowExecutionFailureInfo
	WorkflowExecutionAlreadyStartedFailureInfo *WorkflowExecutionAlreadyStartedFailureInfo
}

// Payload is a single opaque encoded value. The client neither interprets
// nor validates payload contents; Metadata describes the encoding to
// whichever layer does.
type Payload struct {
	Metadata map[string][]byte
	Data     []byte
}

type ApplicationFailureInfo struct {
	Type           string
	NonRetryable   bool
	Details        []*Payload
	NextRetryDelay *time.Duration
}

type CancelledFailureInfo struct {
	Details []*Payload
}

type TerminatedFailureInfo struct {
	Details []*Payload
}

type TimeoutFailureInfo struct {
	TimeoutType          TimeoutType
	LastHeartbeatDetails []*Payload
}

type ServerFailureInfo struct {
	NonRetryable bool
}

type ActivityFailureInfo struct {
	ScheduledEventID int64
	StartedEventID   int64
	Identity         string
	ActivityType     string
	ActivityID       string
	RetryState       RetryState
}

type ChildWorkflowExecutionFailureInfo struct {
	Namespace        string
	WorkflowID       string
	RunID            string
	WorkflowType     string
	InitiatedEventID int64
	StartedEventID   int64
	RetryState       RetryState
}

type WorkflowExecutionAlreadyStartedFailureInfo struct {
	WorkflowID   string
	WorkflowType string
	RunID        *string
}

// TimeoutType is the protocol's timeout classification. Zero is the
// protocol's "unspecified" value, used when no timeout type applies or the
// sender did not set one.
type TimeoutType int32

const (
	TimeoutTypeUnspecified     TimeoutType = 0
	TimeoutTypeStartToClose    TimeoutType = 1
	TimeoutTypeScheduleToStart TimeoutType = 2
	TimeoutTypeScheduleToClose TimeoutType = 3
	TimeoutTypeHeartbeat       TimeoutType = 4
)

// RetryState is the protocol's classification of why a retryable operation
// stopped retrying.
type RetryState int32

const (
	RetryStateUnspecified            RetryState = 0
	RetryStateInProgress             RetryState = 1
	RetryStateNonRetryableFailure    RetryState = 2
	RetryStateTimeout                RetryState = 3
	RetryStateMaximumAttemptsReached RetryState = 4
	RetryStateRetryPolicyNotSet      RetryState = 5
	RetryStateInternalServerError    RetryState = 6
	RetryStateCancelRequested        RetryState = 7
)
