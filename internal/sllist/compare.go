package sllist

import "golang.org/x/exp/constraints"

// Equal списки равны если у них одинаковая длина и попарно равные элементы.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc то же что и Equal с заданным сравнением элементов.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.Size() != b.Size() {
		return false
	}

	for x, y := a.head.next, b.head.next; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}

	return true
}

// NotEqual отрицание Equal.
func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// Less лексикографическое сравнение списков.
func Less[T constraints.Ordered](a, b *List[T]) bool {
	return LessFunc(a, b, func(x, y T) bool {
		return x < y
	})
}

// LessFunc лексикографическое сравнение с заданным порядком элементов.
// Список являющийся собственным префиксом другого меньше его.
func LessFunc[T any](a, b *List[T], less func(x, y T) bool) bool {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if less(x.value, y.value) {
			return true
		}
		if less(y.value, x.value) {
			return false
		}
	}

	return x == nil && y != nil
}

func LessOrEqual[T constraints.Ordered](a, b *List[T]) bool {
	return !Less(b, a)
}

func Greater[T constraints.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T constraints.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}
