package memfill

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScratchFill(t *testing.T) {
	s := NewScratch(16)
	require.Equal(t, 16, s.Cap())

	n, err := s.Fill([]byte("Hello, world"))
	require.NoError(t, err)
	require.Equal(t, 12, n)

	n, err = s.Fill(Literal())
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "Hello", s.String())
	require.Equal(t, make([]byte, 11), s.buf[5:])
}

func TestScratchOverflow(t *testing.T) {
	s := NewScratch(4)
	_, err := s.Fill([]byte("ab"))
	require.NoError(t, err)

	_, err = s.Fill(Literal())
	require.ErrorIs(t, err, ErrBufferOverflow)
	require.Equal(t, []byte("ab"), s.Bytes())
}

func TestScratchRelease(t *testing.T) {
	setDecommitHook(t)
	ps := os.Getpagesize()
	s := NewScratch(4 * ps)
	_, err := s.Fill(Literal())
	require.NoError(t, err)

	s.Release()
	require.Empty(t, s.Bytes())

	_, err = s.Fill([]byte("Hi"))
	require.NoError(t, err)
	require.Equal(t, "Hi", s.String())
	require.Equal(t, make([]byte, 4*ps-2), s.buf[2:])
}
