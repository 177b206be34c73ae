package list

import (
	"fmt"
	"iter"

	"github.com/zyedidia/generic"
)

// List 泛型单链表
// head 持有第一个节点，tail 只是对最后一个节点的引用，用于 O(1) 的尾部追加
// 注意：List 不是并发安全的，使用方需要自己保证互斥
type List[T any] struct {
	head    *node[T]
	tail    *node[T]
	length  int
	version uint64 // 每次结构性修改（增删节点）都会递增，迭代器用它检测遍历期间的修改
}

// New 创建一个空链表
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of 创建只包含一个元素的链表
func Of[T any](value T) *List[T] {
	l := New[T]()
	l.Push(value)
	return l
}

// FromSlice 按顺序把 values 依次 Push 进一个新链表
func FromSlice[T any](values []T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// Push 在尾部追加一个元素
func (l *List[T]) Push(value T) {
	n := newNode(value)
	if l.length == 0 {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.length++
	l.version++
}

// Unshift 在头部插入一个元素
func (l *List[T]) Unshift(value T) {
	n := newNode(value)
	if l.length == 0 {
		l.tail = n
	} else {
		n.next = l.head
	}
	l.head = n
	l.length++
	l.version++
}

// Pop 移除并返回尾部元素
// 单链表没有指向前驱的指针，所以需要从头遍历到倒数第二个节点，复杂度 O(n)
func (l *List[T]) Pop() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, EmptyCollectionErr
	}

	value := l.tail.value
	if l.length == 1 {
		l.head = nil
		l.tail = nil
	} else {
		prev, err := l.locate(l.length - 2)
		if err != nil {
			return zero, err
		}
		prev.next = nil
		l.tail = prev
	}
	l.length--
	l.version++
	return value, nil
}

// Shift 移除并返回头部元素
func (l *List[T]) Shift() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, EmptyCollectionErr
	}
	return l.shiftNode().value, nil
}

// shiftNode 摘下头节点并返回，调用方需要保证链表非空
func (l *List[T]) shiftNode() *node[T] {
	removed := l.head
	l.head = removed.detach() // 先断开旧头节点的链接，再丢弃
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	l.version++
	return removed
}

// Get 返回下标 index 处的元素
func (l *List[T]) Get(index int) (T, error) {
	n, err := l.locate(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// Insert 插入元素，使其在调用结束后位于下标 index 处
// index 的合法范围是 [0, Len()]，index == Len() 等价于 Push
func (l *List[T]) Insert(index int, value T) error {
	switch {
	case index < 0 || index > l.length:
		return outOfRange(index, l.length)
	case index == 0:
		l.Unshift(value)
		return nil
	case index == l.length:
		l.Push(value)
		return nil
	}

	// 先找到前驱，找到之后才进行拼接，所以失败时链表不会被修改
	prev, err := l.locate(index - 1)
	if err != nil {
		return err
	}
	n := newNode(value)
	n.next = prev.next
	prev.next = n
	l.length++
	l.version++
	return nil
}

// Remove 移除并返回下标 index 处的元素
func (l *List[T]) Remove(index int) (T, error) {
	var zero T
	if l.length == 0 {
		return zero, EmptyCollectionErr
	}
	if index < 0 || index >= l.length {
		return zero, outOfRange(index, l.length)
	}

	switch index {
	case l.length - 1:
		return l.Pop()
	case 0:
		return l.shiftNode().value, nil
	}

	prev, err := l.locate(index - 1)
	if err != nil {
		return zero, err
	}
	removed := prev.next
	prev.next = removed.detach()
	l.length--
	l.version++
	return removed.value, nil
}

// Peek 返回头部元素但不移除，等价于 Head
func (l *List[T]) Peek() (T, error) {
	return l.Head()
}

// Head 返回头部元素
func (l *List[T]) Head() (T, error) {
	if l.head == nil {
		var zero T
		return zero, EmptyCollectionErr
	}
	return l.head.value, nil
}

// Tail 返回尾部元素
func (l *List[T]) Tail() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, EmptyCollectionErr
	}
	return l.tail.value, nil
}

// Clear 释放整条链
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		n = n.detach()
	}
	l.head = nil
	l.tail = nil
	l.length = 0
	l.version++
}

// Len 返回链表的长度
func (l *List[T]) Len() int {
	return l.length
}

// Empty 判断链表是否为空
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Values 按顺序返回所有元素的一个快照
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// IndexFunc 返回第一个与 value 相等（由 eq 判定）的元素下标，不存在时返回 -1
func (l *List[T]) IndexFunc(value T, eq generic.EqualsFn[T]) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if eq(n.value, value) {
			return i
		}
		i++
	}
	return -1
}

// Index 是 IndexFunc 针对可比较类型的便捷版本
func Index[T comparable](l *List[T], value T) int {
	return l.IndexFunc(value, generic.Equals[T])
}

// Contains 判断链表中是否存在 value
func Contains[T comparable](l *List[T], value T) bool {
	return Index(l, value) >= 0
}

// Iterator 返回一个从当前头节点开始的新迭代器
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l, current: l.head, version: l.version}
}

// All 返回可用于 range 的正向序列
// 遍历过程中如果链表被结构性修改，会以 ConcurrentModificationErr panic
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iterator()
		for it.HasNext() {
			v, _ := it.Next()
			if !yield(v) {
				return
			}
		}
		if it.modified() {
			panic(ConcurrentModificationErr)
		}
	}
}

// locate 从头遍历到下标 index 处的节点，所有按位置的操作都通过它来定位
func (l *List[T]) locate(index int) (*node[T], error) {
	if index < 0 || index >= l.length {
		return nil, outOfRange(index, l.length)
	}
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n, nil
}

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", IndexOutOfRangeErr, index, length)
}
