package chunk

// List is the doubly-linked token list. The surrounding driver owns it;
// the cleanup pass walks it head to tail and inserts synthesized chunks.
type List struct {
	head, tail *Chunk
	size       int
}

// Head returns the first chunk, or Null when the list is empty.
func (l *List) Head() *Chunk {
	if l.head == nil {
		return Null
	}
	return l.head
}

// Tail returns the last chunk, or Null when the list is empty.
func (l *List) Tail() *Chunk {
	if l.tail == nil {
		return Null
	}
	return l.tail
}

// Len returns the number of chunks in the list.
func (l *List) Len() int {
	return l.size
}

// Append links nc at the end of the list and returns it.
func (l *List) Append(nc *Chunk) *Chunk {
	if nc.IsNull() {
		return Null
	}
	nc.prev = l.tail
	nc.next = nil

	if l.tail == nil {
		l.head = nc
	} else {
		l.tail.next = nc
	}
	l.tail = nc
	l.size++

	return nc
}

// AddAfter links nc immediately after ref and returns nc. Inserting
// relative to the null chunk is a no-op that reports null.
func (l *List) AddAfter(nc, ref *Chunk) *Chunk {
	if nc.IsNull() || ref.IsNull() {
		return Null
	}
	nc.prev = ref
	nc.next = ref.next

	if ref.next == nil {
		l.tail = nc
	} else {
		ref.next.prev = nc
	}
	ref.next = nc
	l.size++

	return nc
}

// AddBefore links nc immediately before ref and returns nc.
func (l *List) AddBefore(nc, ref *Chunk) *Chunk {
	if nc.IsNull() || ref.IsNull() {
		return Null
	}
	nc.next = ref
	nc.prev = ref.prev

	if ref.prev == nil {
		l.head = nc
	} else {
		ref.prev.next = nc
	}
	ref.prev = nc
	l.size++

	return nc
}
