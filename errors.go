// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
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

package hindley

import (
	"errors"

	"github.com/wdamron/hindley/types"
)

// Inference failures. Errors returned by inference wrap one of these kinds and may be
// matched with errors.Is.
var (
	// A variable refers to a name which is not bound in the type-environment.
	ErrUnboundIdentifier = errors.New("Unbound identifier")
	// A let-binding rebinds a name which is already bound in the type-environment.
	ErrDuplicateBinding = errors.New("Duplicate binding")
	// The expression (or one of its sub-expressions) is nil.
	ErrEmptyExpression = errors.New("Empty expression")

	// A type-variable was unified with itself.
	ErrSelfUnification = types.ErrSelfUnification
	// Binding a type-variable would produce a type which contains itself.
	ErrOccursCheck = types.ErrOccursCheck
	// Two constructor applications differ in name, arity, or presence of a result.
	ErrTypeMismatch = types.ErrTypeMismatch
)
