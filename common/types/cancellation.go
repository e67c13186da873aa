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

import "context"

// IsCancellation reports whether err represents a workflow or activity
// cancellation. It is true for the runtime's cooperative-cancel signal
// (context.Canceled), for a CancelledError, and for an ActivityError or
// ChildWorkflowError whose direct cause is a CancelledError.
//
// The cause check is exactly one level deep: an ActivityError whose cause
// is another ActivityError wrapping a CancelledError is not a
// cancellation. Callers use this to handle cancellation only at the
// immediate activity or child-workflow boundary, so the depth must not be
// generalized into a chain walk.
func IsCancellation(err error) bool {
	if err == context.Canceled {
		return true
	}
	switch e := err.(type) {
	case *CancelledError:
		return true
	case *ActivityError:
		_, ok := e.Unwrap().(*CancelledError)
		return ok
	case *ChildWorkflowError:
		_, ok := e.Unwrap().(*CancelledError)
		return ok
	}
	return false
}
