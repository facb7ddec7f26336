package mines

/*
celltodo is a FIFO of flat cell indices threaded through a single
slice: next[i] is the index queued after i, or -1. A cell may only be
queued once, which the flood fill guarantees by marking cells as seen
before adding them.
*/
type celltodo struct {
	next       []int
	head, tail int
}

func newCellTodo(size int) *celltodo {
	return &celltodo{
		next: make([]int, size),
		head: -1, tail: -1,
	}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) pop() (int, bool) {
	if std.head < 0 {
		return -1, false
	}
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i, true
}

func (std *celltodo) empty() bool {
	return std.head < 0
}
