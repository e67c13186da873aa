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

// Package proto maps between the failure error types and the wire
// failure schema in both directions, recursing over cause chains.
package proto

import (
	failurev1 "github.com/chronoflow/chronoflow-go/api/failure/v1"
	"github.com/chronoflow/chronoflow-go/common/types"
)

// FromError converts an error to its wire failure representation. A nil
// error maps to nil.
//
// An error decoded by ToError carries its original wire payload, and
// FromError re-emits that payload verbatim. Errors are immutable after
// construction, so the stored payload cannot diverge from the live
// fields, and replaying it preserves fields this client does not
// interpret (stack trace, failure info cases from newer protocol
// versions) across a decode/re-raise/encode cycle.
//
// An error outside the failure taxonomy maps to a bare failure carrying
// only its Error() string, so any Go error can cross the wire.
func FromError(err error) *failurev1.Failure {
	if err == nil {
		return nil
	}
	if fe, ok := err.(types.FailureError); ok && fe.Failure() != nil {
		return fe.Failure()
	}

	failure := &failurev1.Failure{Message: err.Error()}
	switch e := err.(type) {
	case *types.ApplicationError:
		failure.Message = e.Message()
		failure.ApplicationFailureInfo = &failurev1.ApplicationFailureInfo{
			Type:           e.Type(),
			NonRetryable:   e.NonRetryable(),
			Details:        e.Details(),
			NextRetryDelay: e.NextRetryDelay(),
		}
	case *types.CancelledError:
		failure.Message = e.Message()
		failure.CancelledFailureInfo = &failurev1.CancelledFailureInfo{
			Details: e.Details(),
		}
	case *types.TerminatedError:
		failure.Message = e.Message()
		failure.TerminatedFailureInfo = &failurev1.TerminatedFailureInfo{
			Details: e.Details(),
		}
	case *types.TimeoutError:
		failure.Message = e.Message()
		failure.TimeoutFailureInfo = &failurev1.TimeoutFailureInfo{
			TimeoutType:          FromTimeoutType(e.TimeoutType()),
			LastHeartbeatDetails: e.LastHeartbeatDetails(),
		}
	case *types.ServerError:
		failure.Message = e.Message()
		failure.ServerFailureInfo = &failurev1.ServerFailureInfo{
			NonRetryable: e.NonRetryable(),
		}
	case *types.ActivityError:
		failure.Message = e.Message()
		failure.ActivityFailureInfo = &failurev1.ActivityFailureInfo{
			ScheduledEventID: e.ScheduledEventID(),
			StartedEventID:   e.StartedEventID(),
			Identity:         e.Identity(),
			ActivityType:     e.ActivityType(),
			ActivityID:       e.ActivityID(),
			RetryState:       FromRetryState(e.RetryState()),
		}
	case *types.ChildWorkflowError:
		failure.Message = e.Message()
		failure.ChildWorkflowExecutionFailureInfo = &failurev1.ChildWorkflowExecutionFailureInfo{
			Namespace:        e.Namespace(),
			WorkflowID:       e.WorkflowID(),
			RunID:            e.RunID(),
			WorkflowType:     e.WorkflowType(),
			InitiatedEventID: e.InitiatedEventID(),
			StartedEventID:   e.StartedEventID(),
			RetryState:       FromRetryState(e.RetryState()),
		}
	case *types.WorkflowAlreadyStartedError:
		failure.Message = e.Message()
		failure.WorkflowExecutionAlreadyStartedFailureInfo = &failurev1.WorkflowExecutionAlreadyStartedFailureInfo{
			WorkflowID:   e.WorkflowID(),
			WorkflowType: e.WorkflowType(),
			RunID:        e.RunID(),
		}
	case *types.GenericError:
		failure.Message = e.Message()
	}

	if fe, ok := err.(types.FailureError); ok {
		failure.Cause = FromError(fe.Unwrap())
	}
	return failure
}

// ToError converts a wire failure to the matching error type, decoding
// the cause chain first. A nil failure maps to nil.
//
// ToError never fails: a failure whose info case is unknown to this
// client version becomes a GenericError carrying only the message and
// the raw payload. Every produced error stores the original payload so
// FromError can replay it.
func ToError(f *failurev1.Failure) error {
	if f == nil {
		return nil
	}
	cause := ToError(f.Cause)

	switch {
	case f.ApplicationFailureInfo != nil:
		info := f.ApplicationFailureInfo
		return types.NewApplicationError(f.Message, types.ApplicationErrorOptions{
			Type:           info.Type,
			NonRetryable:   info.NonRetryable,
			NextRetryDelay: info.NextRetryDelay,
			Details:        info.Details,
			Cause:          cause,
			Failure:        f,
		})
	case f.CancelledFailureInfo != nil:
		return types.NewCancelledError(f.Message, types.CancelledErrorOptions{
			Details: f.CancelledFailureInfo.Details,
			Cause:   cause,
			Failure: f,
		})
	case f.TerminatedFailureInfo != nil:
		return types.NewTerminatedError(f.Message, types.TerminatedErrorOptions{
			Details: f.TerminatedFailureInfo.Details,
			Cause:   cause,
			Failure: f,
		})
	case f.TimeoutFailureInfo != nil:
		info := f.TimeoutFailureInfo
		return types.NewTimeoutError(f.Message, types.TimeoutErrorOptions{
			TimeoutType:          ToTimeoutType(info.TimeoutType),
			LastHeartbeatDetails: info.LastHeartbeatDetails,
			Cause:                cause,
			Failure:              f,
		})
	case f.ServerFailureInfo != nil:
		return types.NewServerError(f.Message, types.ServerErrorOptions{
			NonRetryable: f.ServerFailureInfo.NonRetryable,
			Cause:        cause,
			Failure:      f,
		})
	case f.ActivityFailureInfo != nil:
		info := f.ActivityFailureInfo
		return types.NewActivityError(f.Message, types.ActivityErrorOptions{
			ScheduledEventID: info.ScheduledEventID,
			StartedEventID:   info.StartedEventID,
			Identity:         info.Identity,
			ActivityType:     info.ActivityType,
			ActivityID:       info.ActivityID,
			RetryState:       ToRetryState(info.RetryState),
			Cause:            cause,
			Failure:          f,
		})
	case f.ChildWorkflowExecutionFailureInfo != nil:
		info := f.ChildWorkflowExecutionFailureInfo
		return types.NewChildWorkflowError(f.Message, types.ChildWorkflowErrorOptions{
			Namespace:        info.Namespace,
			WorkflowID:       info.WorkflowID,
			RunID:            info.RunID,
			WorkflowType:     info.WorkflowType,
			InitiatedEventID: info.InitiatedEventID,
			StartedEventID:   info.StartedEventID,
			RetryState:       ToRetryState(info.RetryState),
			Cause:            cause,
			Failure:          f,
		})
	case f.WorkflowExecutionAlreadyStartedFailureInfo != nil:
		info := f.WorkflowExecutionAlreadyStartedFailureInfo
		return types.NewWorkflowAlreadyStartedError(info.WorkflowID, info.WorkflowType, types.WorkflowAlreadyStartedErrorOptions{
			RunID:   info.RunID,
			Cause:   cause,
			Failure: f,
		})
	}

	return types.NewGenericError(f.Message, types.GenericErrorOptions{
		Cause:   cause,
		Failure: f,
	})
}
