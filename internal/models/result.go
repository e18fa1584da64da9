package models

// Result carries either a value or the reason it could not be produced.
// Components use it internally and collapse it to a default at their boundary.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) Value() (T, error) {
	return r.value, r.err
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Failed() bool {
	return r.err != nil
}

// OrElse returns the value, or def when the result is a failure.
func (r Result[T]) OrElse(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}
