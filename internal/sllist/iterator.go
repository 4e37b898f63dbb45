package sllist

// Position позиция в списке: Iterator либо ConstIterator.
type Position[T any] interface {
	position() *node[T]
}

// Iterator позиция в списке с доступом к значению на запись.
// Нулевое значение равно End().
type Iterator[T any] struct {
	n *node[T]
}

// Next позиция следующего элемента. Для End() возвращается End().
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		return it
	}

	return Iterator[T]{n: it.n.next}
}

// Value значение в данной позиции.
func (it Iterator[T]) Value() (T, error) {
	if err := checkDeref(it.n); err != nil {
		var zero T
		return zero, err
	}

	return it.n.value, nil
}

// Ptr указатель на значение в данной позиции для изменения на месте.
func (it Iterator[T]) Ptr() (*T, error) {
	if err := checkDeref(it.n); err != nil {
		return nil, err
	}

	return &it.n.value, nil
}

// Set замена значения в данной позиции.
func (it Iterator[T]) Set(v T) error {
	if err := checkDeref(it.n); err != nil {
		return err
	}

	it.n.value = v
	return nil
}

// IsEnd проверка на позицию за последним элементом.
func (it Iterator[T]) IsEnd() bool {
	return it.n == nil
}

// Equal позиции равны если указывают на один и тот же узел.
func (it Iterator[T]) Equal(p Position[T]) bool {
	return it.n == nodeOf(p)
}

// Const позиция только для чтения. Обратного преобразования нет.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

func (it Iterator[T]) position() *node[T] {
	return it.n
}

// ConstIterator позиция в списке с доступом к значению только на чтение.
type ConstIterator[T any] struct {
	n *node[T]
}

// Next позиция следующего элемента. Для CEnd() возвращается CEnd().
func (it ConstIterator[T]) Next() ConstIterator[T] {
	if it.n == nil {
		return it
	}

	return ConstIterator[T]{n: it.n.next}
}

// Value значение в данной позиции.
func (it ConstIterator[T]) Value() (T, error) {
	if err := checkDeref(it.n); err != nil {
		var zero T
		return zero, err
	}

	return it.n.value, nil
}

// IsEnd проверка на позицию за последним элементом.
func (it ConstIterator[T]) IsEnd() bool {
	return it.n == nil
}

// Equal позиции равны если указывают на один и тот же узел.
func (it ConstIterator[T]) Equal(p Position[T]) bool {
	return it.n == nodeOf(p)
}

func (it ConstIterator[T]) position() *node[T] {
	return it.n
}

func nodeOf[T any](p Position[T]) *node[T] {
	if p == nil {
		return nil
	}

	return p.position()
}

var (
	_ Position[int] = Iterator[int]{}
	_ Position[int] = ConstIterator[int]{}
)
