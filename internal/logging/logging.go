package logging

//go:generate mockgen -source=logging.go -destination=../extmocks/logger_mock.go -package=extmocks -mock_names Logger=LoggerMock

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// ListContractViolation операция op была вызвана с нарушением её предусловий.
	ListContractViolation(op string, err error)
	// ListCloneFailed не удалось скопировать значение в ходе операции op.
	ListCloneFailed(op string, err error)
}

// Nop логгер ничего не делающий.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) ListContractViolation(string, error) {}

func (nopLogger) ListCloneFailed(string, error) {}
