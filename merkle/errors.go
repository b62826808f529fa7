// Copyright 2016 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merkle

import (
	"errors"
	"fmt"
)

// Kind identifies the class of error a Tree operation failed with.
type Kind int

const (
	// KindDataNotFound means a non-null digest was not present in the
	// store or the writer's overlay.
	KindDataNotFound Kind = iota + 1
	// KindIndexOutOfBounds means a key's length did not equal the tree depth.
	KindIndexOutOfBounds
	// KindUnexpectedNodeType means a Value node was found where an Inner
	// node was required, or vice versa, during traversal.
	KindUnexpectedNodeType
	// KindMalformedNode means decoding a node's wire encoding failed.
	KindMalformedNode
	// KindInvalidKey means a key byte was outside {0,1}.
	KindInvalidKey
)

func (k Kind) String() string {
	switch k {
	case KindDataNotFound:
		return "DataNotFound"
	case KindIndexOutOfBounds:
		return "IndexOutOfBounds"
	case KindUnexpectedNodeType:
		return "UnexpectedNodeType"
	case KindMalformedNode:
		return "MalformedNode"
	case KindInvalidKey:
		return "InvalidKey"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every fallible operation
// in this package. Callers that need to branch on failure class should
// use errors.As and inspect Kind, rather than string-matching Error().
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func newError(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, msg: fmt.Sprintf(format, args...)}
}

// ErrKind reports the Kind of err if it (or something it wraps) is an
// *Error, and false otherwise.
func ErrKind(err error) (Kind, bool) {
	if err == nil {
		return 0, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
