package dllist

// NewNode создаёт отвязанный узел с данным значением.
func NewNode[T comparable](v T) *Node[T] {
	return &Node[T]{
		value: v,
	}
}

// Node узел содержащий данное значение в связанном списке.
// Узлы создаются пользователем, список только связывает их между собой.
type Node[T comparable] struct {
	prev *Node[T]
	next *Node[T]

	value T
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue замена значения лежащего в узле.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Prev предыдущий узел или nil.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Next следующий узел или nil.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
