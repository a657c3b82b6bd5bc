package dllist

// ContainsNodeWithValue проверка наличия в списке узла с данным значением.
func (l *List[T]) ContainsNodeWithValue(value T) bool {
	node := l.head
	for node != nil && node.value != value {
		node = node.next
	}

	return node != nil
}

// IsMember проверка, что узел достижим от головы списка.
func (l *List[T]) IsMember(node *Node[T]) bool {
	for n := l.head; n != nil; n = n.next {
		if n == node {
			return true
		}
	}

	return false
}

// Len количество узлов в списке. Считается проходом по списку.
func (l *List[T]) Len() int {
	var res int
	for n := l.head; n != nil; n = n.next {
		res++
	}

	return res
}

// Values значения узлов списка от головы к хвосту.
func (l *List[T]) Values() []T {
	var res []T
	for n := l.head; n != nil; n = n.next {
		res = append(res, n.value)
	}

	return res
}
