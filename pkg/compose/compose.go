// Package compose threads a value through a sequence of unary functions.
//
// Widgets are assembled by piping a component through enhancers:
//
//	build := compose.Pipe(
//	    core.WithEvents(),
//	    core.WithElement(opts),
//	    core.WithVariant(cfg.Variant),
//	    core.WithLifecycle(),
//	)
//	c := build(core.NewBase(base))
//
// The functions hold no state of their own. A panicking stage aborts the
// whole pipeline and the panic reaches the caller.
package compose

// Pipe returns a function applying fns left to right:
// Pipe(f, g, h)(x) == h(g(f(x))). With no functions it returns identity.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for _, fn := range fns {
			x = fn(x)
		}
		return x
	}
}

// Compose returns a function applying fns right to left:
// Compose(f, g, h)(x) == f(g(h(x))).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			x = fns[i](x)
		}
		return x
	}
}

// Then chains two functions whose types differ, so a pipeline can move to a
// richer aggregate type: Then(f, g)(x) == g(f(x)).
func Then[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(x A) C {
		return g(f(x))
	}
}

// Identity returns its argument.
func Identity[T any](x T) T { return x }

// When returns fn when cond is true and Identity otherwise. It keeps
// conditional stages inline in a Pipe call.
func When[T any](cond bool, fn func(T) T) func(T) T {
	if cond {
		return fn
	}
	return Identity[T]
}
