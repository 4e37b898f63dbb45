package sllist

import (
	"github.com/sirkon/errors"

	"github.com/nxlak/single-linked-list/internal/contract"
)

// PushFront вставка значения в начало списка.
// Узел привязывается к списку только после успешного копирования значения.
func (l *List[T]) PushFront(v T) error {
	l.lazyInit()

	c, err := l.cloneValue(opPushFront, v)
	if err != nil {
		return errors.Wrap(err, opPushFront)
	}

	l.head.next = &node[T]{
		next:  l.head.next,
		owner: l.id,
		value: c,
	}
	l.size++

	return nil
}

// PopFront удаление первого элемента списка.
// Для пустого списка возвращается ошибка с кодом contract.CodeEmptyList.
func (l *List[T]) PopFront() error {
	l.lazyInit()

	f := l.head.next
	if f == nil {
		return l.violation(opPopFront, contract.NewEmptyList())
	}

	l.head.next = f.next
	f.cleanup()
	l.size--

	return nil
}

// InsertAfter вставка значения после данной позиции с возвратом итератора на
// вставленный элемент. Позиция BeforeBegin даёт вставку в начало списка.
// При ошибке список остаётся в прежнем состоянии.
func (l *List[T]) InsertAfter(pos Position[T], v T) (Iterator[T], error) {
	n, err := l.anchor(opInsertAfter, pos)
	if err != nil {
		return Iterator[T]{}, err
	}

	c, err := l.cloneValue(opInsertAfter, v)
	if err != nil {
		return Iterator[T]{}, errors.Wrap(err, opInsertAfter)
	}

	added := &node[T]{
		next:  n.next,
		owner: l.id,
		value: c,
	}
	n.next = added
	l.size++

	return Iterator[T]{n: added}, nil
}

// EraseAfter удаление элемента следующего за данной позицией.
// Возвращает итератор на элемент, ставший следующим за позицией.
// Если за позицией ничего нет, то список не меняется, возвращается End() и
// ошибка с кодом contract.CodeNoSuccessor.
func (l *List[T]) EraseAfter(pos Position[T]) (Iterator[T], error) {
	n, err := l.anchor(opEraseAfter, pos)
	if err != nil {
		return Iterator[T]{}, err
	}

	victim := n.next
	if victim == nil {
		return Iterator[T]{}, l.violation(opEraseAfter, contract.NewNoSuccessor())
	}

	n.next = victim.next
	victim.cleanup()
	l.size--

	return Iterator[T]{n: n.next}, nil
}

// BeforeBegin итератор на позицию перед первым элементом.
// Разыменовывать его нельзя, он служит только аргументом InsertAfter и EraseAfter.
func (l *List[T]) BeforeBegin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: &l.head}
}

// CBeforeBegin то же что и BeforeBegin, но только для чтения.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

// Begin итератор на первый элемент. Для пустого списка равен End().
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

// End итератор на позицию за последним элементом. Одинаков для всех списков.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// CBegin итератор для чтения на первый элемент.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head.next}
}

// CEnd итератор для чтения на позицию за последним элементом.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// anchor проверка того, что pos указывает на узел этого списка.
func (l *List[T]) anchor(op string, pos Position[T]) (*node[T], error) {
	l.lazyInit()

	n := nodeOf(pos)
	if n == nil {
		return nil, l.violation(op, contract.NewEndPosition())
	}

	if n.owner != l.id {
		return nil, l.violation(op, contract.NewForeignPosition())
	}

	return n, nil
}
