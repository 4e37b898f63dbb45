package contract

import "strings"

// Error нарушение контракта операции над списком: попытка выполнить
// операцию с недопустимыми для неё аргументами или в недопустимом состоянии.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e Error) Error() string {
	if e.Msg != "" {
		var b strings.Builder
		b.WriteString(e.Code.String())
		b.WriteByte('[')
		b.WriteString(e.Msg)
		b.WriteByte(']')
		return b.String()
	}

	return e.Code.String()
}

// Is ошибки контракта считаются одинаковыми при совпадении кодов.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

func newCodedError(code ErrorCode, msg ...string) Error {
	e := Error{
		Code: code,
	}
	switch len(msg) {
	case 0:
	case 1:
		e.Msg = msg[0]
	default:
		e.Msg = strings.Join(msg, ": ")
	}

	return e
}

// NewEmptyList операция требует непустого списка.
func NewEmptyList(msg ...string) Error {
	return newCodedError(CodeEmptyList, msg...)
}

// NewEndPosition позиция указывает за последний элемент.
func NewEndPosition(msg ...string) Error {
	return newCodedError(CodeEndPosition, msg...)
}

// NewSentinelPosition позиция указывает на фиктивный узел перед первым элементом.
func NewSentinelPosition(msg ...string) Error {
	return newCodedError(CodeSentinelPosition, msg...)
}

// NewForeignPosition позиция относится к другому списку или к уже удалённому узлу.
func NewForeignPosition(msg ...string) Error {
	return newCodedError(CodeForeignPosition, msg...)
}

// NewNoSuccessor у позиции нет следующего элемента.
func NewNoSuccessor(msg ...string) Error {
	return newCodedError(CodeNoSuccessor, msg...)
}
