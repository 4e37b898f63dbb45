package sllist

import (
	"github.com/google/uuid"
	"github.com/sirkon/errors"

	"github.com/nxlak/single-linked-list/internal/contract"
)

// node узел односвязного списка. Фиктивный головной узел списка имеет тот же тип
// с выставленным флагом head и никогда не хранит пользовательского значения.
type node[T any] struct {
	next  *node[T]
	owner uuid.UUID
	head  bool

	value T
}

// cleanup отвязывает удалённый узел от списка.
func (n *node[T]) cleanup() {
	var zero T
	n.next = nil
	n.owner = uuid.Nil
	n.value = zero
}

// checkDeref проверка возможности разыменовать позицию указывающую на данный узел.
func checkDeref[T any](n *node[T]) error {
	switch {
	case n == nil:
		return errors.Wrap(contract.NewEndPosition(), "dereference")
	case n.head:
		return errors.Wrap(contract.NewSentinelPosition(), "dereference")
	case n.owner == uuid.Nil:
		return errors.Wrap(contract.NewForeignPosition("removed node"), "dereference")
	}

	return nil
}
