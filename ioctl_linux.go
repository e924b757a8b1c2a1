package i2cdev

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// i2c-dev ioctl requests and limits, from <linux/i2c-dev.h>. Not defined by
// golang.org/x/sys/unix.
const (
	i2cFuncs = 0x0705 // I2C_FUNCS: read the adapter functionality bitmask
	i2cRdwr  = 0x0707 // I2C_RDWR: execute one batched transaction

	// rdwrMaxMsgs is the kernel's cap on messages per I2C_RDWR request
	// (I2C_RDWR_IOCTL_MAX_MSGS).
	rdwrMaxMsgs = 42
)

// i2cMsg must match the kernel's struct i2c_msg layout: three 16-bit fields
// followed by a naturally aligned buffer pointer. The compiler inserts the
// same padding before buf as the C ABI does, on both 32- and 64-bit
// targets.
type i2cMsg struct {
	addr   uint16
	flags  uint16
	length uint16
	buf    unsafe.Pointer
}

// i2cRdwrData must match the kernel's struct i2c_rdwr_ioctl_data: a pointer
// to a contiguous array of i2cMsg records and their count.
type i2cRdwrData struct {
	msgs  unsafe.Pointer
	nmsgs uint32
}

// ioctlFunc is the seam between the engine and the kernel; tests substitute
// a fake that decodes the request instead of issuing a syscall.
type ioctlFunc func(fd int, req uint, arg unsafe.Pointer) error

func rawIoctl(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Syscall seams, overridden in tests to fake the kernel and to count
// descriptor acquisition and release.
var (
	sysOpen  = unix.Open
	sysClose = unix.Close
	sysIoctl = ioctlFunc(rawIoctl)
)
