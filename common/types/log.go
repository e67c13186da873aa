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

import "go.uber.org/zap/zapcore"

// The failure kinds implement zapcore.ObjectMarshaler so a logged error
// carries its classification as structured fields, not just the message.

func (e *ApplicationError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.message)
	if e.errType != "" {
		enc.AddString("type", e.errType)
	}
	enc.AddBool("nonRetryable", e.nonRetryable)
	if e.nextRetryDelay != nil {
		enc.AddDuration("nextRetryDelay", *e.nextRetryDelay)
	}
	return nil
}

func (e *CancelledError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.message)
	return nil
}

func (e *TerminatedError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.message)
	return nil
}

func (e *TimeoutError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.message)
	if e.timeoutType != nil {
		enc.AddString("timeoutType", e.timeoutType.String())
	}
	return nil
}

func (e *ServerError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.message)
	enc.AddBool("nonRetryable", e.nonRetryable)
	return nil
}

func (e *ActivityError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.message)
	enc.AddInt64("scheduledEventID", e.scheduledEventID)
	enc.AddInt64("startedEventID", e.startedEventID)
	enc.AddString("identity", e.identity)
	enc.AddString("activityType", e.activityType)
	enc.AddString("activityID", e.activityID)
	if e.retryState != nil {
		enc.AddString("retryState", e.retryState.String())
	}
	return nil
}

func (e *ChildWorkflowError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.message)
	enc.AddString("namespace", e.namespace)
	enc.AddString("workflowID", e.workflowID)
	enc.AddString("runID", e.runID)
	enc.AddString("workflowType", e.workflowType)
	enc.AddInt64("initiatedEventID", e.initiatedEventID)
	enc.AddInt64("startedEventID", e.startedEventID)
	if e.retryState != nil {
		enc.AddString("retryState", e.retryState.String())
	}
	return nil
}

func (e *WorkflowAlreadyStartedError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.message)
	enc.AddString("workflowID", e.workflowID)
	enc.AddString("workflowType", e.workflowType)
	if e.runID != nil {
		enc.AddString("runID", *e.runID)
	}
	return nil
}

func (e *GenericError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.message)
	return nil
}
