package grid

// Allocator supplies backing storage for owned grids. It must return
// a slice of length n. The default allocator is plain make; callers
// with pooling or arena strategies plug in their own.
type Allocator[T any] func(n int) []T

// MakeAllocator returns the default make-backed allocator.
func MakeAllocator[T any]() Allocator[T] {
	return func(n int) []T { return make([]T, n) }
}
