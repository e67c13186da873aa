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

package testdata

import (
	"time"

	failurev1 "github.com/chronoflow/chronoflow-go/api/failure/v1"
	"github.com/chronoflow/chronoflow-go/common"
	"github.com/chronoflow/chronoflow-go/common/types"
)

const (
	ErrorMessage = "ErrorMessage"
	ErrorType    = "ErrorType"
	Namespace    = "Namespace"
	WorkflowID   = "WorkflowID"
	RunID        = "RunID"
	WorkflowType = "WorkflowType"
	ActivityID   = "ActivityID"
	ActivityType = "ActivityType"
	Identity     = "Identity"
	StackTrace   = "StackTrace"

	ScheduledEventID = int64(11)
	StartedEventID   = int64(12)
	InitiatedEventID = int64(13)

	NextRetryDelay = 5 * time.Second
)

var Details = []*failurev1.Payload{
	{
		Metadata: map[string][]byte{"encoding": []byte("json/plain")},
		Data:     []byte(`"detail-1"`),
	},
	{
		Metadata: map[string][]byte{"encoding": []byte("json/plain")},
		Data:     []byte(`2`),
	},
}

// Canonical errors, constructed directly (no wire payload attached).
var (
	ApplicationError = types.NewApplicationError(ErrorMessage, types.ApplicationErrorOptions{
		Type:           ErrorType,
		NonRetryable:   true,
		NextRetryDelay: common.DurationPtr(NextRetryDelay),
		Details:        Details,
	})
	CancelledError = types.NewCancelledError(ErrorMessage, types.CancelledErrorOptions{
		Details: Details,
	})
	TerminatedError = types.NewTerminatedError(ErrorMessage, types.TerminatedErrorOptions{
		Details: Details,
	})
	TimeoutError = types.NewTimeoutError(ErrorMessage, types.TimeoutErrorOptions{
		TimeoutType:          types.TimeoutTypeHeartbeat.Ptr(),
		LastHeartbeatDetails: Details,
	})
	ServerError = types.NewServerError(ErrorMessage, types.ServerErrorOptions{
		NonRetryable: true,
	})
	ActivityError = types.NewActivityError(ErrorMessage, types.ActivityErrorOptions{
		ScheduledEventID: ScheduledEventID,
		StartedEventID:   StartedEventID,
		Identity:         Identity,
		ActivityType:     ActivityType,
		ActivityID:       ActivityID,
		RetryState:       types.RetryStateNonRetryableFailure.Ptr(),
		Cause:            ApplicationError,
	})
	ChildWorkflowError = types.NewChildWorkflowError(ErrorMessage, types.ChildWorkflowErrorOptions{
		Namespace:        Namespace,
		WorkflowID:       WorkflowID,
		RunID:            RunID,
		WorkflowType:     WorkflowType,
		InitiatedEventID: InitiatedEventID,
		StartedEventID:   StartedEventID,
		RetryState:       types.RetryStateCancelRequested.Ptr(),
		Cause:            CancelledError,
	})
	WorkflowAlreadyStartedError = types.NewWorkflowAlreadyStartedError(WorkflowID, WorkflowType, types.WorkflowAlreadyStartedErrorOptions{
		RunID: common.StringPtr(RunID),
	})

	Errors = []error{
		ApplicationError,
		CancelledError,
		TerminatedError,
		TimeoutError,
		ServerError,
		ActivityError,
		ChildWorkflowError,
		WorkflowAlreadyStartedError,
	}
)

// Canonical wire failures, one per discriminated case.
var (
	ApplicationFailure = &failurev1.Failure{
		Message:    ErrorMessage,
		StackTrace: StackTrace,
		ApplicationFailureInfo: &failurev1.ApplicationFailureInfo{
			Type:           ErrorType,
			NonRetryable:   true,
			Details:        Details,
			NextRetryDelay: common.DurationPtr(NextRetryDelay),
		},
	}
	CancelledFailure = &failurev1.Failure{
		Message:    ErrorMessage,
		StackTrace: StackTrace,
		CancelledFailureInfo: &failurev1.CancelledFailureInfo{
			Details: Details,
		},
	}
	TerminatedFailure = &failurev1.Failure{
		Message:    ErrorMessage,
		StackTrace: StackTrace,
		TerminatedFailureInfo: &failurev1.TerminatedFailureInfo{
			Details: Details,
		},
	}
	TimeoutFailure = &failurev1.Failure{
		Message:    ErrorMessage,
		StackTrace: StackTrace,
		TimeoutFailureInfo: &failurev1.TimeoutFailureInfo{
			TimeoutType:          failurev1.TimeoutTypeHeartbeat,
			LastHeartbeatDetails: Details,
		},
	}
	ServerFailure = &failurev1.Failure{
		Message:    ErrorMessage,
		StackTrace: StackTrace,
		ServerFailureInfo: &failurev1.ServerFailureInfo{
			NonRetryable: true,
		},
	}
	ActivityFailure = &failurev1.Failure{
		Message:    ErrorMessage,
		StackTrace: StackTrace,
		ActivityFailureInfo: &failurev1.ActivityFailureInfo{
			ScheduledEventID: ScheduledEventID,
			StartedEventID:   StartedEventID,
			Identity:         Identity,
			ActivityType:     ActivityType,
			ActivityID:       ActivityID,
			RetryState:       failurev1.RetryStateNonRetryableFailure,
		},
		Cause: ApplicationFailure,
	}
	ChildWorkflowFailure = &failurev1.Failure{
		Message:    ErrorMessage,
		StackTrace: StackTrace,
		ChildWorkflowExecutionFailureInfo: &failurev1.ChildWorkflowExecutionFailureInfo{
			Namespace:        Namespace,
			WorkflowID:       WorkflowID,
			RunID:            RunID,
			WorkflowType:     WorkflowType,
			InitiatedEventID: InitiatedEventID,
			StartedEventID:   StartedEventID,
			RetryState:       failurev1.RetryStateCancelRequested,
		},
		Cause: CancelledFailure,
	}
	WorkflowAlreadyStartedFailure = &failurev1.Failure{
		Message:    ErrorMessage,
		StackTrace: StackTrace,
		WorkflowExecutionAlreadyStartedFailureInfo: &failurev1.WorkflowExecutionAlreadyStartedFailureInfo{
			WorkflowID:   WorkflowID,
			WorkflowType: WorkflowType,
			RunID:        common.StringPtr(RunID),
		},
	}

	// UnknownFailure has no failure info case set, standing in for a case
	// introduced by a newer protocol version.
	UnknownFailure = &failurev1.Failure{
		Message:    ErrorMessage,
		StackTrace: StackTrace,
	}

	Failures = []*failurev1.Failure{
		ApplicationFailure,
		CancelledFailure,
		TerminatedFailure,
		TimeoutFailure,
		ServerFailure,
		ActivityFailure,
		ChildWorkflowFailure,
		WorkflowAlreadyStartedFailure,
		UnknownFailure,
	}
)
