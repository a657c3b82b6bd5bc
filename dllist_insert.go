package dllist

// InsertBefore вставка узла nodeToInsert непосредственно перед node.
// node обязан состоять в списке. nodeToInsert может как состоять в списке,
// так и нет: перед вставкой он всегда отвязывается от текущего места.
func (l *List[T]) InsertBefore(node, nodeToInsert *Node[T]) {
	if l.isSelfInsert(node, nodeToInsert) {
		l.log.SelfInsertIgnored()
		return
	}

	l.Remove(nodeToInsert)
	nodeToInsert.prev = node.prev
	nodeToInsert.next = node
	if node.prev == nil {
		l.head = nodeToInsert
	} else {
		node.prev.next = nodeToInsert
	}

	node.prev = nodeToInsert
}

// InsertAfter вставка узла nodeToInsert непосредственно после node.
// Требования такие же как и у InsertBefore.
func (l *List[T]) InsertAfter(node, nodeToInsert *Node[T]) {
	if l.isSelfInsert(node, nodeToInsert) {
		l.log.SelfInsertIgnored()
		return
	}

	l.Remove(nodeToInsert)
	nodeToInsert.prev = node
	nodeToInsert.next = node.next
	if node.next == nil {
		l.tail = nodeToInsert
	} else {
		node.next.prev = nodeToInsert
	}

	node.next = nodeToInsert
}

// isSelfInsert проверка, что вставка не имеет смысла: узел вставляется
// относительно самого себя либо является единственным элементом списка.
func (l *List[T]) isSelfInsert(node, nodeToInsert *Node[T]) bool {
	if node == nodeToInsert {
		return true
	}

	return nodeToInsert == l.head && nodeToInsert == l.tail
}
