//go:build (darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris) && gc && !ppc64le && !ppc64

package memfill

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func osDecommit(astart uintptr, alength int) int {
	mem := unsafe.Slice((*byte)(unsafe.Pointer(astart)), alength)
	if unix.Madvise(mem, unix.MADV_DONTNEED) != nil {
		return 0
	}
	return alength
}
