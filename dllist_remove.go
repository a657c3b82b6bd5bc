package dllist

// Remove удаление данного узла из списка.
// Узел обязан состоять в списке, это не проверяется. После удаления обе связи
// узла сброшены и его можно снова вставить в этот или другой список.
func (l *List[T]) Remove(node *Node[T]) {
	if node == l.head {
		l.head = l.head.next
	}

	if node == l.tail {
		l.tail = l.tail.prev
	}

	l.removeNodeBindings(node)
}

// RemoveNodesWithValue удаление всех узлов со значением равным данному.
func (l *List[T]) RemoveNodesWithValue(value T) {
	node := l.head
	for node != nil {
		// следующий узел берётся до удаления, т.к. удаление сбрасывает связи
		nodeToRemove := node
		node = node.next
		if nodeToRemove.value == value {
			l.Remove(nodeToRemove)
		}
	}
}

// removeNodeBindings перенаправляет соседей мимо данного узла и сбрасывает его связи.
// Сброс делается последним.
func (l *List[T]) removeNodeBindings(node *Node[T]) {
	if node.prev != nil {
		node.prev.next = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	}

	node.cleanup()
}
