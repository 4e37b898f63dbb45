package sllist

import (
	"github.com/google/uuid"
	"github.com/sirkon/errors"

	"github.com/nxlak/single-linked-list/internal/contract"
	"github.com/nxlak/single-linked-list/internal/logging"
)

const (
	opFrom        = "build from values"
	opCopy        = "copy"
	opAssign      = "assign"
	opPushFront   = "push front"
	opPopFront    = "pop front"
	opInsertAfter = "insert after"
	opEraseAfter  = "erase after"
)

// New конструктор пустого односвязного списка.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}
	l.lazyInit()

	return l
}

// From создание списка из данных значений с сохранением их порядка.
// При ошибке копирования значения никаких частично собранных узлов не остаётся.
func From[T any](values []T, opts ...Option[T]) (*List[T], error) {
	l := New(opts...)
	if err := l.fill(opFrom, eachOf(values)); err != nil {
		return nil, err
	}

	return l, nil
}

// Of создание списка из значений без копировщика.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	// Без копировщика заполнение не завершается ошибкой.
	_ = l.fill(opFrom, eachOf(values))

	return l
}

// List односвязный список с фиктивным головным узлом.
// Нулевое значение является пустым списком готовым к использованию.
// Список нельзя копировать по значению, для копирования есть Copy и Assign.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	head node[T]
	size int
	id   uuid.UUID

	clone Cloner[T]
	log   logging.Logger
}

// Size количество элементов списка.
func (l *List[T]) Size() int {
	return l.size
}

// IsEmpty проверка списка на пустоту.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Copy создание независимой копии списка с теми же настройками.
// При ошибке копирования какого-либо элемента исходный список не меняется.
func (l *List[T]) Copy() (*List[T], error) {
	res := l.derive()
	if err := res.fill(opCopy, l.Each); err != nil {
		return nil, err
	}

	return res, nil
}

// Assign замена содержимого списка копией src. Настройки списка сохраняются.
// При ошибке копирования список остаётся в прежнем состоянии.
func (l *List[T]) Assign(src *List[T]) error {
	if l == src {
		return nil
	}

	tmp := l.derive()
	if err := tmp.fill(opAssign, src.Each); err != nil {
		return err
	}
	l.Swap(tmp)
	tmp.Clear()

	return nil
}

// Swap обмен содержимым с другим списком за O(1).
// Позиции остаются привязанными к своим узлам.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}

	l.lazyInit()
	other.lazyInit()

	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
	l.id, other.id = other.id, l.id
	l.head.owner = l.id
	other.head.owner = other.id
}

// Clear удаление всех элементов списка за O(n).
func (l *List[T]) Clear() {
	for l.head.next != nil {
		n := l.head.next
		l.head.next = n.next
		n.cleanup()
	}
	l.size = 0
}

// Each обход значений списка от начала к концу пока fn возвращает true.
func (l *List[T]) Each(fn func(v T) bool) {
	for n := l.head.next; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// Values значения списка в порядке следования.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		res = append(res, n.value)
	}

	return res
}

// Swap обмен содержимым двух списков.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

func (l *List[T]) lazyInit() {
	if l.id != uuid.Nil {
		return
	}

	l.id = uuid.New()
	l.head.owner = l.id
	l.head.head = true
}

// derive пустой список с теми же настройками.
func (l *List[T]) derive() *List[T] {
	res := &List[T]{
		clone: l.clone,
		log:   l.log,
	}
	res.lazyInit()

	return res
}

// fill дописывание копий значений в пустой список l.
// При ошибке все добавленные узлы удаляются.
func (l *List[T]) fill(op string, each func(fn func(v T) bool)) error {
	l.lazyInit()

	var err error
	tail := &l.head
	each(func(v T) bool {
		var c T
		c, err = l.cloneValue(op, v)
		if err != nil {
			return false
		}

		n := &node[T]{
			owner: l.id,
			value: c,
		}
		tail.next = n
		tail = n
		l.size++

		return true
	})

	if err != nil {
		pos := l.size
		l.Clear()
		return errors.Wrap(err, op).Int("position", pos)
	}

	return nil
}

func (l *List[T]) cloneValue(op string, v T) (T, error) {
	if l.clone == nil {
		return v, nil
	}

	c, err := l.clone(v)
	if err != nil {
		l.logger().ListCloneFailed(op, err)
		return c, errors.Wrap(err, "clone value").Stg("list-id", l.id)
	}

	return c, nil
}

// violation оформление нарушения контракта операции op.
func (l *List[T]) violation(op string, err contract.Error) error {
	l.logger().ListContractViolation(op, err)
	return errors.Wrap(err, op).Stg("list-id", l.id).Int("size", l.size)
}

func (l *List[T]) logger() logging.Logger {
	if l.log == nil {
		return logging.Nop()
	}

	return l.log
}

func eachOf[T any](values []T) func(fn func(v T) bool) {
	return func(fn func(v T) bool) {
		for _, v := range values {
			if !fn(v) {
				return
			}
		}
	}
}
