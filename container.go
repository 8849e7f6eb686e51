package asn1kit

import "sync"

/*
container.go implements [Container], the owning, write-side
counterpart to [View]. A Container accumulates encoded TLV output into
a buffer it owns, reusing scratch memory from a package-level pool.
*/

/*
Container is an owning accumulator of BER-encoded output. Unlike
[View], a Container's backing buffer belongs to it; callers are free
to keep mutating a Container after handing copies of its bytes to
other code.
*/
type Container struct {
	data   []byte
	offset int
}

/*
NewContainer returns a [Container] pre-loaded with the given bytes, or
an empty, ready-to-append Container if called with no arguments.
*/
func NewContainer(data ...byte) *Container {
	c := containerPool.Get().(*Container)
	*c = Container{}
	if len(data) > 0 {
		c.data = append(c.data, data...)
	}
	return c
}

/*
Data returns the underlying byte slice accumulated so far.
*/
func (c *Container) Data() []byte { return c.data }

/*
Len returns the number of bytes accumulated so far.
*/
func (c *Container) Len() int { return len(c.data) }

/*
Offset returns the current cursor position, used when a Container is
also read back from (e.g. decoding into the same buffer it was built
in).
*/
func (c *Container) Offset() int { return c.offset }

/*
SetOffset repositions the read cursor. See [View.SetOffset] for the
variadic argument semantics.
*/
func (c *Container) SetOffset(offset ...int) {
	if len(offset) == 0 {
		c.offset = 0
		return
	}
	if offset[0] == -1 && c.Len() > 1 {
		c.offset = c.Len() - 1
	} else if offset[0] >= 0 {
		c.offset = offset[0]
	}
}

/*
HasMoreData reports whether unread bytes remain past the cursor.
*/
func (c *Container) HasMoreData() bool { return c.offset < len(c.data) }

/*
Append appends zero or more raw bytes to the Container's buffer,
growing the backing array from the shared pool when necessary.
*/
func (c *Container) Append(data ...byte) {
	if c == nil || len(data) == 0 {
		return
	}
	need := len(c.data) + len(data)

	if cap(c.data) < need {
		bufPtr := bufPool.Get().(*[]byte)
		if cap(*bufPtr) < need {
			*bufPtr = make([]byte, 0, need*2)
		}
		newBuf := append((*bufPtr)[:0], c.data...)

		if cap(c.data) != 0 {
			old := c.data[:0]
			bufPool.Put(&old)
		}
		c.data = newBuf
	}

	c.data = append(c.data, data...)
}

/*
WriteTLV encodes t and appends it to the Container, honoring any tag
overlay in opts. Only definite length is written: an indefinite-length
request (opts.Indefinite, or a negative t.Length) fails.
*/
func (c *Container) WriteTLV(t TLV, opts *Options) error {
	if (opts != nil && opts.Indefinite) || t.Length < 0 {
		return errorIndefiniteProhibited
	}

	encoded := encodeTLV(t, opts)
	c.Append(encoded...)
	c.SetOffset(c.Len())

	return nil
}

/*
View returns a read-only [View] over the bytes accumulated so far.
*/
func (c *Container) View() *View { return NewView(c.data) }

/*
Bytes returns a defensive copy of the accumulated buffer.
*/
func (c *Container) Bytes() []byte {
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

/*
Hex returns the hexadecimal rendering of the accumulated buffer.
*/
func (c *Container) Hex() string { return formatHex(c.data) }

/*
Free releases the receiver's buffer back to the shared pool and resets
the Container for reuse via [NewContainer].
*/
func (c *Container) Free() {
	if cap(c.data) != 0 {
		buf := c.data[:0]
		bufPool.Put(&buf)
	}
	*c = Container{}
	containerPool.Put(c)
}

var containerPool = sync.Pool{New: func() any { return &Container{} }}
