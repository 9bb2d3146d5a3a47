//go:build !windows && !((darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris) && gc && !ppc64le && !ppc64)

package memfill

func osDecommit(uintptr, int) int { return 0 }
