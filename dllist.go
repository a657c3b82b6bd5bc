package dllist

// New конструктор пустого двусвязного списка.
func New[T comparable](opts ...Option) *List[T] {
	o := options{
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &List[T]{
		log: o.logger,
	}
}

// List двусвязный список из узлов, которыми владеет пользователь.
// Узел может состоять не более чем в одном списке одновременно.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T comparable] struct {
	head *Node[T]
	tail *Node[T]

	log Logger
}

// Head первый узел списка, nil для пустого списка.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail последний узел списка, nil для пустого списка.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// SetHead делает данный узел первым в списке.
func (l *List[T]) SetHead(node *Node[T]) {
	if l.head == nil {
		l.head = node
		l.tail = node
		return
	}

	l.InsertBefore(l.head, node)
}

// SetTail делает данный узел последним в списке.
func (l *List[T]) SetTail(node *Node[T]) {
	if l.tail == nil {
		l.SetHead(node)
		return
	}

	l.InsertAfter(l.tail, node)
}
