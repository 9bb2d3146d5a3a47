//go:build windows

package memfill

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32DLL              = windows.NewLazySystemDLL("kernel32.dll")
	procDiscardVirtualMemory = kernel32DLL.NewProc("DiscardVirtualMemory")
	discardOK                = procDiscardVirtualMemory.Find() == nil
)

func osDecommit(astart uintptr, alength int) int {
	if !discardOK {
		return 0
	}
	ret, _, _ := procDiscardVirtualMemory.Call(astart, uintptr(alength))
	if ret != 0 {
		return 0
	}
	return alength
}
