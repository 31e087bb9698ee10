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

// hindley provides Hindley-Milner type inference with let-polymorphism for a small
// expression language of literals, variables, let-bindings, functions, and application.
//
// Types are terms within a types.Arena. Unification binds type-variables in place, so every
// holder of a type-variable observes its binding. Let-bound values are generalized
// implicitly: type-variables which are not fixed by an enclosing function parameter (the
// non-generic set) are replaced by fresh type-variables at each use of the binding.
//
//
// Supported Features:
//
//   * Integer (and other base-type) literals
//   * Let-polymorphism without explicit generalization
//   * Multi-parameter functions and application
//   * Occurs-checked unification (recursive types are rejected)
//   * Type-annotation of expression trees
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Basic Polymorphic Typechecking (Cardelli, 1987): http://lucacardelli.name/Papers/BasicTypechecking.pdf
package hindley
