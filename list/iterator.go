package list

// Iterator 单链表的正向迭代器
// 每个实例只能遍历一次，需要重新遍历时通过 List.Iterator 获取新的实例
// 迭代器不会修改链表；创建之后链表一旦被结构性修改，迭代器立即失效
type Iterator[T any] struct {
	list    *List[T]
	current *node[T]
	version uint64
}

// HasNext 是否还有下一个元素，迭代器失效时返回 false
func (it *Iterator[T]) HasNext() bool {
	return it.current != nil && !it.modified()
}

// Next 返回当前元素并前进到后继节点
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.modified() {
		return zero, ConcurrentModificationErr
	}
	if it.current == nil {
		return zero, NoSuchElementErr
	}
	value := it.current.value
	it.current = it.current.next
	return value, nil
}

func (it *Iterator[T]) modified() bool {
	return it.version != it.list.version
}
