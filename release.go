package memfill

import (
	"os"
	"runtime"
	"unsafe"
)

var (
	ps  = uintptr(os.Getpagesize())
	psm uintptr
)

func init() {
	if ps&(ps-1) == 0 {
		psm = ps - 1
	}
}

// Release attempts to decommit the whole pages that back buf.
// After the call the contents of buf are undetermined.
// It returns how many bytes were decommitted: this depends on how the OS
// exposes the functionality, and buffers smaller than a page never release
// anything.
func Release(buf []byte) int {
	buf = buf[:cap(buf)]
	if len(buf) < int(ps) {
		return 0
	}
	start := uintptr(unsafe.Pointer(&buf[0]))
	end := start + uintptr(len(buf))
	l := decommit(start, end)
	runtime.KeepAlive(buf)
	return l
}

var decommitHook func(start, end, astart, aend uintptr, alength int) (uintptr, int) // for testing

func decommit(start, end uintptr) int {
	var astart, aend uintptr
	if psm != 0 {
		astart = (start + psm) &^ psm
		aend = end &^ psm
	} else {
		astart = (start + ps - 1) / ps * ps
		aend = end / ps * ps
	}
	if aend <= astart {
		return 0
	}
	alength := int(aend - astart)
	if decommitHook != nil {
		astart, alength = decommitHook(start, end, astart, aend, alength)
	}
	if alength == 0 {
		return 0
	}
	return osDecommit(astart, alength)
}
