// Package invoke defines the continuation used by the builders in this
// module. A builder is handed an Invoker when it is created and calls it
// exactly once with the value it builds; whatever the Invoker returns becomes
// the result of the builder's final method.
package invoke

// Invoker receives a finished T and produces an R.
type Invoker[T, R any] interface {
	Invoke(T) R
}

// Func adapts an ordinary function to an Invoker.
type Func[T, R any] func(T) R

func (f Func[T, R]) Invoke(v T) R {
	return f(v)
}

// Identity returns the value it is given.
type Identity[T any] struct{}

func (Identity[T]) Invoke(v T) T {
	return v
}
