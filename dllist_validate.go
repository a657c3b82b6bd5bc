package dllist

import (
	"github.com/sirkon/errors"
)

const (
	// ErrorBrokenBoundaries ровно одна из ссылок на голову и хвост пуста.
	ErrorBrokenBoundaries errors.Const = "head and tail must be either both set or both empty"

	// ErrorBrokenLinks обратная связь узла не совпадает с прямой.
	ErrorBrokenLinks errors.Const = "back link does not mirror forward link"

	// ErrorCycle узел встречается при проходе от головы повторно.
	ErrorCycle errors.Const = "node is reachable from head more than once"

	// ErrorTailNotReached проход от головы не заканчивается на хвосте.
	ErrorTailNotReached errors.Const = "walk from head does not end at tail"
)

// Validate проверяет инварианты списка и возвращает ошибку для первого
// нарушенного из них. Список не меняется.
func (l *List[T]) Validate() error {
	if (l.head == nil) != (l.tail == nil) {
		return errors.Wrap(ErrorBrokenBoundaries, "check boundaries").
			Bool("head-empty", l.head == nil).
			Bool("tail-empty", l.tail == nil)
	}

	if l.head == nil {
		return nil
	}

	visited := map[*Node[T]]struct{}{}
	var index int
	var last *Node[T]
	for n := l.head; n != nil; n = n.next {
		if _, ok := visited[n]; ok {
			return errors.Wrap(ErrorCycle, "walk from head").Int("index", index)
		}
		visited[n] = struct{}{}

		if n.next != nil && n.next.prev != n {
			return errors.Wrap(ErrorBrokenLinks, "check successor").Int("index", index)
		}

		last = n
		index++
	}

	if last != l.tail {
		return errors.Wrap(ErrorTailNotReached, "check tail").Int("length", index)
	}

	if l.head.prev != nil {
		return errors.Wrap(ErrorBrokenLinks, "head has a predecessor")
	}

	return nil
}
