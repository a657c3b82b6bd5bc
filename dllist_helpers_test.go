package dllist

import (
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/dllist/internal/tlog"
)

// build заполняет список узлами с данными значениями и возвращает эти узлы.
func build[T comparable](l *List[T], values ...T) []*Node[T] {
	nodes := make([]*Node[T], len(values))
	for i, v := range values {
		nodes[i] = NewNode(v)
		l.SetTail(nodes[i])
	}

	return nodes
}

// checkList проверяет инварианты списка и совпадение значений с ожидаемыми.
func checkList[T comparable](t *testing.T, l *List[T], expected ...T) bool {
	t.Helper()

	if err := l.Validate(); err != nil {
		tlog.Error(t, err)
		return false
	}

	if len(expected) == 0 {
		if l.Head() != nil || l.Tail() != nil {
			t.Errorf("list must be empty, got %d nodes", l.Len())
			return false
		}
		return true
	}

	actual := l.Values()
	if !deepequal.Equal(expected, actual) {
		t.Error("list values mismatch")
		deepequal.SideBySide(t, "values", expected, actual)
		return false
	}

	return true
}

// checkDetached проверяет, что у узлов сброшены обе связи.
func checkDetached[T comparable](t *testing.T, nodes ...*Node[T]) {
	t.Helper()

	for i, n := range nodes {
		if n.Prev() != nil || n.Next() != nil {
			t.Errorf("node %d (value %v) must have no links", i, n.Value())
		}
	}
}
