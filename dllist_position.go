package dllist

import (
	"github.com/sirkon/errors"
)

const (
	// ErrorInvalidPosition ошибка отдаваемая при попытке вставки на позицию меньше 1.
	ErrorInvalidPosition errors.Const = "position must be greater than zero"
)

// InsertAtPosition вставка узла так, чтобы после вызова он занимал позицию
// position считая с головы списка, начиная с 1.
// Позиция за пределами длины списка + 1 молча превращается в добавление в конец.
// Позиция меньше 1 отвергается, список при этом не меняется.
func (l *List[T]) InsertAtPosition(position int, nodeToInsert *Node[T]) error {
	if position < 1 {
		l.log.PositionRejected(position)
		return errors.Wrap(ErrorInvalidPosition, "insert at position").Int("position", position)
	}

	// Узел уже состоящий в списке сдвинул бы позиции после себя при вставке,
	// поэтому отвязываем его заранее. Для непривязанного узла это ничего не делает.
	l.Remove(nodeToInsert)

	if position == 1 {
		l.SetHead(nodeToInsert)
		return nil
	}

	node := l.head
	current := 1
	for node != nil && current != position {
		node = node.next
		current++
	}

	if node != nil {
		l.InsertBefore(node, nodeToInsert)
		return nil
	}

	if position > current {
		l.log.PositionDegradedToTail(position, current)
	}
	l.SetTail(nodeToInsert)
	return nil
}
