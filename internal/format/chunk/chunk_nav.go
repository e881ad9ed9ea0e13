package chunk

// ----------------
// Chunk navigation
// ----------------

// Next returns the following chunk, or Null when exhausted.
func (c *Chunk) Next() *Chunk {
	if c.IsNull() || c.next == nil {
		return Null
	}
	return c.next
}

// Prev returns the preceding chunk, or Null when exhausted.
func (c *Chunk) Prev() *Chunk {
	if c.IsNull() || c.prev == nil {
		return Null
	}
	return c.prev
}

// NextNc returns the next non-comment chunk.
func (c *Chunk) NextNc() *Chunk {
	t := c.Next()
	for t.IsComment() {
		t = t.Next()
	}
	return t
}

// PrevNc returns the previous non-comment chunk.
func (c *Chunk) PrevNc() *Chunk {
	t := c.Prev()
	for t.IsComment() {
		t = t.Prev()
	}
	return t
}

// NextNcNnl returns the next chunk that is neither a comment nor a newline.
func (c *Chunk) NextNcNnl() *Chunk {
	t := c.Next()
	for t.IsCommentOrNewline() {
		t = t.Next()
	}
	return t
}

// PrevNcNnl returns the previous chunk that is neither a comment nor a
// newline.
func (c *Chunk) PrevNcNnl() *Chunk {
	t := c.Prev()
	for t.IsCommentOrNewline() {
		t = t.Prev()
	}
	return t
}

// ClosingMatch scans forward for the closer paired with the opener c,
// counting nested pairs of the same kind. Returns Null when c is not an
// opener or the closer is missing.
func (c *Chunk) ClosingMatch() *Chunk {
	if c.IsNull() {
		return Null
	}
	want := CloserOf(c.Kind)

	if want == None {
		return Null
	}
	depth := 1

	for t := c.Next(); !t.IsNull(); t = t.Next() {
		switch t.Kind {
		case c.Kind:
			depth++
		case want:
			depth--

			if depth == 0 {
				return t
			}
		}
	}
	return Null
}
