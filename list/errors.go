package list

import "errors"

var (
	EmptyCollectionErr        = errors.New("list is empty")
	IndexOutOfRangeErr        = errors.New("index out of range")
	NoSuchElementErr          = errors.New("no such element")
	ConcurrentModificationErr = errors.New("list modified during iteration")
)
