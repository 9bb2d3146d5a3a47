package memfill

// Scratch is a heap buffer whose capacity is chosen at run time.
type Scratch struct {
	buf   []byte
	n     int
	dirty bool // tail may hold stale or undetermined bytes
}

// NewScratch returns a zero-initialized Scratch of the given capacity.
// A negative capacity panics like make does.
func NewScratch(capacity int) *Scratch {
	return &Scratch{buf: make([]byte, capacity)}
}

// Cap returns the capacity of s.
func (s *Scratch) Cap() int { return len(s.buf) }

// Fill replaces the contents of s with lit. Bytes past len(lit) are zero
// after a successful Fill. On overflow s is left unchanged.
func (s *Scratch) Fill(lit []byte) (int, error) {
	if len(lit) > len(s.buf) {
		return Fill(s.buf, lit)
	}
	if s.dirty {
		clear(s.buf)
		s.dirty = false
	} else if s.n > len(lit) {
		clear(s.buf[len(lit):s.n])
	}
	n, err := Fill(s.buf, lit)
	s.n = n
	return n, err
}

// Bytes returns the filled prefix. It aliases the buffer until the next Fill
// or Release.
func (s *Scratch) Bytes() []byte { return s.buf[:s.n] }

// String returns the lossy decoding of the filled prefix.
func (s *Scratch) String() string { return Lossy(s.Bytes()) }

// Release hands the pages backing s back to the OS and empties s. It returns
// the number of bytes decommitted.
func (s *Scratch) Release() int {
	s.n = 0
	s.dirty = true
	return Release(s.buf)
}
