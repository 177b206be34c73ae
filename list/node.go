package list

// node 单链表的节点，只持有指向后继的链接
// 节点从不暴露到包外，因此每个节点只会被其前驱（或List的head）持有
type node[T any] struct {
	value T
	next  *node[T]
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

// detach 断开节点与后继的链接，返回原来的后继
func (n *node[T]) detach() *node[T] {
	next := n.next
	n.next = nil
	return next
}
