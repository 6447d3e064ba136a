// Package result provides a tagged success/failure value returned by the
// validation and computation entry points instead of a bare (value, error) pair.
package result

// Result holds either a value or an error, never both.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail builds a failed Result. A nil err is not a failure; callers always
// pass the concrete cause.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

// Value returns the success value, or the zero value of T on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure cause, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap converts the Result back into Go's conventional pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Match calls exactly one of the two branches.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}
