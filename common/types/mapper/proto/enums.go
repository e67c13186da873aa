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

package proto

import (
	failurev1 "github.com/chronoflow/chronoflow-go/api/failure/v1"
	"github.com/chronoflow/chronoflow-go/common/types"
)

// FromTimeoutType converts a timeout type to its wire code. nil maps to
// the protocol's unspecified value.
func FromTimeoutType(t *types.TimeoutType) failurev1.TimeoutType {
	if t == nil {
		return failurev1.TimeoutTypeUnspecified
	}
	switch *t {
	case types.TimeoutTypeStartToClose:
		return failurev1.TimeoutTypeStartToClose
	case types.TimeoutTypeScheduleToStart:
		return failurev1.TimeoutTypeScheduleToStart
	case types.TimeoutTypeScheduleToClose:
		return failurev1.TimeoutTypeScheduleToClose
	case types.TimeoutTypeHeartbeat:
		return failurev1.TimeoutTypeHeartbeat
	}
	return failurev1.TimeoutTypeUnspecified
}

// ToTimeoutType converts a wire timeout type code. Unspecified values and
// values introduced by newer protocol versions map to nil rather than
// failing, so older clients keep decoding newer failures.
func ToTimeoutType(t failurev1.TimeoutType) *types.TimeoutType {
	switch t {
	case failurev1.TimeoutTypeStartToClose:
		return types.TimeoutTypeStartToClose.Ptr()
	case failurev1.TimeoutTypeScheduleToStart:
		return types.TimeoutTypeScheduleToStart.Ptr()
	case failurev1.TimeoutTypeScheduleToClose:
		return types.TimeoutTypeScheduleToClose.Ptr()
	case failurev1.TimeoutTypeHeartbeat:
		return types.TimeoutTypeHeartbeat.Ptr()
	}
	return nil
}

// FromRetryState converts a retry state to its wire code. nil maps to the
// protocol's unspecified value.
func FromRetryState(s *types.RetryState) failurev1.RetryState {
	if s == nil {
		return failurev1.RetryStateUnspecified
	}
	switch *s {
	case types.RetryStateInProgress:
		return failurev1.RetryStateInProgress
	case types.RetryStateNonRetryableFailure:
		return failurev1.RetryStateNonRetryableFailure
	case types.RetryStateTimeout:
		return failurev1.RetryStateTimeout
	case types.RetryStateMaximumAttemptsReached:
		return failurev1.RetryStateMaximumAttemptsReached
	case types.RetryStateRetryPolicyNotSet:
		return failurev1.RetryStateRetryPolicyNotSet
	case types.RetryStateInternalServerError:
		return failurev1.RetryStateInternalServerError
	case types.RetryStateCancelRequested:
		return failurev1.RetryStateCancelRequested
	}
	return failurev1.RetryStateUnspecified
}

// ToRetryState converts a wire retry state code. Unspecified values and
// values introduced by newer protocol versions map to nil rather than
// failing.
func ToRetryState(s failurev1.RetryState) *types.RetryState {
	switch s {
	case failurev1.RetryStateInProgress:
		return types.RetryStateInProgress.Ptr()
	case failurev1.RetryStateNonRetryableFailure:
		return types.RetryStateNonRetryableFailure.Ptr()
	case failurev1.RetryStateTimeout:
		return types.RetryStateTimeout.Ptr()
	case failurev1.RetryStateMaximumAttemptsReached:
		return types.RetryStateMaximumAttemptsReached.Ptr()
	case failurev1.RetryStateRetryPolicyNotSet:
		return types.RetryStateRetryPolicyNotSet.Ptr()
	case failurev1.RetryStateInternalServerError:
		return types.RetryStateInternalServerError.Ptr()
	case failurev1.RetryStateCancelRequested:
		return types.RetryStateCancelRequested.Ptr()
	}
	return nil
}
