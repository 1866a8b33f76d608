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

package hm

import (
	"log/slog"

	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/internal/typeutil"
	"github.com/wdamron/hm/types"
)

// InferenceContext is a reusable context for type inference. It owns the counter which issues
// fresh type-variables.
//
// An inference context cannot be used concurrently; create one context per goroutine (or per call).
type InferenceContext struct {
	varTracker typeutil.VarTracker
	logger     *slog.Logger
	needsReset bool

	err     error
	invalid ast.Expr
}

// Option configures an InferenceContext.
type Option func(*InferenceContext)

// WithLogger enables debug tracing of unification, generalization and instantiation.
func WithLogger(logger *slog.Logger) Option {
	return func(ti *InferenceContext) { ti.logger = logger }
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext(opts ...Option) *InferenceContext {
	ti := &InferenceContext{}
	for _, opt := range opts {
		opt(ti)
	}
	return ti
}

func (ti *InferenceContext) reset(floor int) {
	ti.varTracker.Reset(floor)
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset(0)
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// FreshVar returns a type-variable which is unique within the current inference run.
func (ti *InferenceContext) FreshVar() *types.Var { return ti.varTracker.New() }

func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	if ti.invalid == nil {
		ti.invalid, ti.err = e, err
	}
	return err
}

func (ti *InferenceContext) debug(msg string, args ...any) {
	if ti.logger == nil {
		return
	}
	ti.logger.Debug(msg, args...)
}
