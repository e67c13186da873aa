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

// FailurePredicate reports whether an error should permanently fail a
// workflow execution even though it is not a FailureError.
type FailurePredicate func(error) bool

// TerminalFailurePolicy decides which errors raised inside workflow or
// activity code permanently fail the execution. By default only
// FailureError kinds do; everything else is presumed recoverable and the
// task attempt is retried. Workers extend the default with injected
// predicates rather than by modifying the taxonomy.
//
// The zero value is the default policy.
type TerminalFailurePolicy struct {
	extra []FailurePredicate
}

// NewTerminalFailurePolicy returns a policy that treats FailureError
// kinds, plus any error matched by one of the given predicates, as
// terminal.
func NewTerminalFailurePolicy(extra ...FailurePredicate) *TerminalFailurePolicy {
	return &TerminalFailurePolicy{extra: extra}
}

// Terminal reports whether err permanently fails the workflow execution.
func (p *TerminalFailurePolicy) Terminal(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := err.(FailureError); ok {
		return true
	}
	if p == nil {
		return false
	}
	for _, match := range p.extra {
		if match != nil && match(err) {
			return true
		}
	}
	return false
}
