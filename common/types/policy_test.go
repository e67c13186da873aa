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
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TerminalFailurePolicy_Default(t *testing.T) {
	policy := NewTerminalFailurePolicy()

	assert.True(t, policy.Terminal(NewApplicationError("boom", ApplicationErrorOptions{})))
	assert.True(t, policy.Terminal(NewCancelledError("", CancelledErrorOptions{})))
	assert.True(t, policy.Terminal(NewActivityError("activity task failed", ActivityErrorOptions{})))

	// Anything outside the taxonomy is presumed recoverable by retry.
	assert.False(t, policy.Terminal(errors.New("transient fault")))
	assert.False(t, policy.Terminal(os.ErrDeadlineExceeded))
	assert.False(t, policy.Terminal(nil))
}

func Test_TerminalFailurePolicy_InjectedPredicates(t *testing.T) {
	sentinel := errors.New("business rule violated")
	policy := NewTerminalFailurePolicy(
		func(err error) bool { return errors.Is(err, sentinel) },
		nil, // ignored
	)

	require.True(t, policy.Terminal(sentinel))
	require.True(t, policy.Terminal(NewServerError("server", ServerErrorOptions{})))
	require.False(t, policy.Terminal(errors.New("transient fault")))
}

func Test_TerminalFailurePolicy_ZeroValue(t *testing.T) {
	var policy TerminalFailurePolicy
	require.True(t, policy.Terminal(NewTerminatedError("terminated", TerminatedErrorOptions{})))
	require.False(t, policy.Terminal(errors.New("boom")))
}
