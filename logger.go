package dllist

// Logger абстракция для логирования событий, которые список обрабатывает
// молча, не возвращая ошибку. Реализация логирования делается пользователями.
type Logger interface {
	// SelfInsertIgnored вставка узла относительно самого себя проигнорирована.
	// Сюда же относится вставка единственного узла списка в голову или хвост.
	SelfInsertIgnored()

	// PositionDegradedToTail вставка на позицию position за пределами списка
	// превратилась в добавление в конец, узел оказался на позиции tailPosition.
	PositionDegradedToTail(position, tailPosition int)

	// PositionRejected вставка на некорректную позицию отвергнута.
	PositionRejected(position int)
}

type nopLogger struct{}

func (nopLogger) SelfInsertIgnored()              {}
func (nopLogger) PositionDegradedToTail(int, int) {}
func (nopLogger) PositionRejected(int)            {}

var _ Logger = nopLogger{}
