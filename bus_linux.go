package i2cdev

import (
	"fmt"
	"unsafe"

	"github.com/edaniels/golog"
	"go.uber.org/multierr"
	"golang.org/x/sys/unix"
)

// A Bus is one open connection to an I2C adapter device node. It owns the
// underlying descriptor exclusively and must be closed when done; Close on
// every path, including the error paths inside Open, releases the
// descriptor exactly once.
type Bus struct {
	fd      int
	devpath string
	caps    Capability
	closed  bool
	logger  golog.Logger
	ioctl   ioctlFunc
}

// Open opens the I2C device node at devpath for read-write access and
// verifies that its driver supports batched read/write transactions. If the
// capability query fails or the required bit is missing, the descriptor is
// closed before the error is returned.
func Open(devpath string, logger golog.Logger) (*Bus, error) {
	if logger == nil {
		logger = golog.Global()
	}

	fd, err := sysOpen(devpath, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &OpenError{Path: devpath, Err: err}
	}

	bus := &Bus{
		fd:      fd,
		devpath: devpath,
		logger:  logger,
		ioctl:   sysIoctl,
	}

	var caps uintptr
	if err := bus.ioctl(fd, i2cFuncs, unsafe.Pointer(&caps)); err != nil {
		return nil, multierr.Combine(&CapabilityError{Err: err}, bus.Close())
	}
	bus.caps = Capability(caps)

	if !bus.caps.Supports(CapI2C) {
		return nil, multierr.Combine(&UnsupportedError{Path: devpath}, bus.Close())
	}

	logger.Debugw("opened I2C device",
		"path", devpath, "fd", fd, "capabilities", fmt.Sprintf("%#x", caps))
	return bus, nil
}

// Close releases the underlying descriptor. It is idempotent: calling it on
// an already-closed Bus is a no-op. If the release syscall fails, the Bus
// is still marked closed and a CloseError is returned; the descriptor is
// never closed twice.
func (b *Bus) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if err := sysClose(b.fd); err != nil {
		return &CloseError{Err: err}
	}
	return nil
}

// Capabilities returns the adapter functionality bitmask queried at Open.
func (b *Bus) Capabilities() Capability { return b.caps }

// Path returns the device node path this Bus was opened with.
func (b *Bus) Path() string { return b.devpath }

func (b *Bus) String() string {
	return fmt.Sprintf("I2C(device=%s, fd=%d)", b.devpath, b.fd)
}
