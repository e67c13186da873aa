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

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeoutType is the kind of timeout a TimeoutError represents.
//
// The numeric values are serialized on the wire and pinned to the
// protocol's enum codes; they must never be renumbered or derived from
// declaration order.
type TimeoutType int32

const (
	TimeoutTypeStartToClose    TimeoutType = 1
	TimeoutTypeScheduleToStart TimeoutType = 2
	TimeoutTypeScheduleToClose TimeoutType = 3
	TimeoutTypeHeartbeat       TimeoutType = 4
)

// Ptr is a helper function for getting pointer value
func (e TimeoutType) Ptr() *TimeoutType {
	return &e
}

// String returns a readable string representation of TimeoutType.
func (e TimeoutType) String() string {
	w := int32(e)
	switch w {
	case 1:
		return "START_TO_CLOSE"
	case 2:
		return "SCHEDULE_TO_START"
	case 3:
		return "SCHEDULE_TO_CLOSE"
	case 4:
		return "HEARTBEAT"
	}
	return fmt.Sprintf("TimeoutType(%d)", w)
}

// UnmarshalText parses enum value from string representation
func (e *TimeoutType) UnmarshalText(value []byte) error {
	switch s := strings.ToUpper(string(value)); s {
	case "START_TO_CLOSE":
		*e = TimeoutTypeStartToClose
		return nil
	case "SCHEDULE_TO_START":
		*e = TimeoutTypeScheduleToStart
		return nil
	case "SCHEDULE_TO_CLOSE":
		*e = TimeoutTypeScheduleToClose
		return nil
	case "HEARTBEAT":
		*e = TimeoutTypeHeartbeat
		return nil
	default:
		val, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return fmt.Errorf("unknown enum value %q for %q: %v", s, "TimeoutType", err)
		}
		*e = TimeoutType(val)
		return nil
	}
}

// MarshalText encodes TimeoutType to text.
func (e TimeoutType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// RetryState is the backend-reported classification of why a retryable
// workflow or activity stopped retrying.
//
// The numeric values are serialized on the wire and pinned to the
// protocol's enum codes; they must never be renumbered or derived from
// declaration order.
type RetryState int32

const (
	RetryStateInProgress             RetryState = 1
	RetryStateNonRetryableFailure    RetryState = 2
	RetryStateTimeout                RetryState = 3
	RetryStateMaximumAttemptsReached RetryState = 4
	RetryStateRetryPolicyNotSet      RetryState = 5
	RetryStateInternalServerError    RetryState = 6
	RetryStateCancelRequested        RetryState = 7
)

// Ptr is a helper function for getting pointer value
func (e RetryState) Ptr() *RetryState {
	return &e
}

// String returns a readable string representation of RetryState.
func (e RetryState) String() string {
	w := int32(e)
	switch w {
	case 1:
		return "IN_PROGRESS"
	case 2:
		return "NON_RETRYABLE_FAILURE"
	case 3:
		return "TIMEOUT"
	case 4:
		return "MAXIMUM_ATTEMPTS_REACHED"
	case 5:
		return "RETRY_POLICY_NOT_SET"
	case 6:
		return "INTERNAL_SERVER_ERROR"
	case 7:
		return "CANCEL_REQUESTED"
	}
	return fmt.Sprintf("RetryState(%d)", w)
}

// UnmarshalText parses enum value from string representation
func (e *RetryState) UnmarshalText(value []byte) error {
	switch s := strings.ToUpper(string(value)); s {
	case "IN_PROGRESS":
		*e = RetryStateInProgress
		return nil
	case "NON_RETRYABLE_FAILURE":
		*e = RetryStateNonRetryableFailure
		return nil
	case "TIMEOUT":
		*e = RetryStateTimeout
		return nil
	case "MAXIMUM_ATTEMPTS_REACHED":
		*e = RetryStateMaximumAttemptsReached
		return nil
	case "RETRY_POLICY_NOT_SET":
		*e = RetryStateRetryPolicyNotSet
		return nil
	case "INTERNAL_SERVER_ERROR":
		*e = RetryStateInternalServerError
		return nil
	case "CANCEL_REQUESTED":
		*e = RetryStateCancelRequested
		return nil
	default:
		val, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return fmt.Errorf("unknown enum value %q for %q: %v", s, "RetryState", err)
		}
		*e = RetryState(val)
		return nil
	}
}

// MarshalText encodes RetryState to text.
func (e RetryState) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
