package heading

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dop251/goja"
)

// DefaultScript is a slow clockwise sweep with some wobble.
const DefaultScript = "t * 24 + 20 * Math.sin(t / 2)"

// ScriptFunc is a compiled heading expression of t, the number of
// seconds since the source started.
type ScriptFunc struct {
	expr    string
	runtime *goja.Runtime
	fn      goja.Callable
}

// CompileScript compiles a JavaScript expression such as
// "t * 30 % 360" into a ScriptFunc.
func CompileScript(expr string) (*ScriptFunc, error) {
	vm := goja.New()
	v, err := vm.RunString("(function (t) { return (" + expr + "); })")
	if err != nil {
		return nil, fmt.Errorf("compile heading script %q: %w", expr, err)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("compile heading script %q: not a function", expr)
	}
	return &ScriptFunc{expr: expr, runtime: vm, fn: fn}, nil
}

// At evaluates the expression at t seconds. The result is not
// normalized.
func (f *ScriptFunc) At(t float64) (float64, error) {
	res, err := f.fn(goja.Undefined(), f.runtime.ToValue(t))
	if err != nil {
		return 0, fmt.Errorf("heading script %q at t=%.3f: %w", f.expr, t, err)
	}
	deg := res.ToFloat()
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0, fmt.Errorf("heading script %q at t=%.3f: result %v is not a finite number", f.expr, t, res)
	}
	return deg, nil
}

// Script simulates a sensor by evaluating a JavaScript expression at a
// fixed rate.
type Script struct {
	Expr     string
	Interval time.Duration
}

// Name implements Named.
func (s *Script) Name() string { return "script" }

// Run implements Source. A compile or evaluation error stops the
// source.
func (s *Script) Run(ctx context.Context, emit func(Reading)) error {
	expr := s.Expr
	if expr == "" {
		expr = DefaultScript
	}
	f, err := CompileScript(expr)
	if err != nil {
		return err
	}
	interval := s.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	start := time.Now()
	tick := time.NewTicker(interval)
	defer tick.Stop()

	now := start
	for {
		deg, err := f.At(now.Sub(start).Seconds())
		if err != nil {
			return err
		}
		emit(NewReading(deg, now))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case now = <-tick.C:
		}
	}
}
