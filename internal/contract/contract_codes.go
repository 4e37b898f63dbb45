package contract

import "errors"

// AsCode получить код соответствующий ошибке.
// Для ошибок не являющихся нарушением контракта возвращается CodeInternal.
func AsCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}

	var target Error
	if !errors.As(err, &target) {
		return CodeInternal
	}

	return target.Code
}

// ErrorCode коды нарушений контракта.
type ErrorCode int32

const (
	// CodeUnknown неиспользуемый код ошибки.
	CodeUnknown ErrorCode = 0

	// CodeOK ошибки нет.
	CodeOK ErrorCode = 200

	// CodeInternal ошибка не связанная с контрактом, например отказ копирования значения.
	CodeInternal ErrorCode = 1000

	// CodeEmptyList операция над пустым списком.
	CodeEmptyList ErrorCode = 4000

	// CodeEndPosition использование позиции end там, где нужен узел.
	CodeEndPosition ErrorCode = 4001

	// CodeSentinelPosition разыменование позиции before-begin.
	CodeSentinelPosition ErrorCode = 4002

	// CodeForeignPosition позиция из другого списка или удалённого узла.
	CodeForeignPosition ErrorCode = 4003

	// CodeNoSuccessor удаление после последнего элемента
	CodeNoSuccessor ErrorCode = 4004
)

func (c ErrorCode) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeInternal:
		return "INTERNAL_ERROR"
	case CodeEmptyList:
		return "EMPTY_LIST"
	case CodeEndPosition:
		return "END_POSITION"
	case CodeSentinelPosition:
		return "SENTINEL_POSITION"
	case CodeForeignPosition:
		return "FOREIGN_POSITION"
	case CodeNoSuccessor:
		return "NO_SUCCESSOR"
	default:
		return "UNKNOWN_ERROR"
	}
}
