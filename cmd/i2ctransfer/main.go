//go:build linux

// Package main contains a command to inspect and exercise I2C devices on an
// i2c-dev adapter: scan for responding addresses, print adapter
// capabilities, and run register reads and writes.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/i2cdev"
)

var logger = golog.NewDevelopmentLogger("i2ctransfer")

func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

var app = &cli.App{
	Name:            "i2ctransfer",
	Usage:           "interact with devices on an I2C bus",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "device",
			Aliases: []string{"d"},
			Value:   "/dev/i2c-1",
			Usage:   "I2C adapter device node",
		},
	},
	Commands: []*cli.Command{
		{
			Name:   "detect",
			Usage:  "scan the bus for responding device addresses",
			Action: DetectAction,
		},
		{
			Name:   "funcs",
			Usage:  "print the adapter's capability bitmask",
			Action: FuncsAction,
		},
		{
			Name:  "read",
			Usage: "read bytes from a device, optionally from a register",
			Flags: []cli.Flag{
				addrFlag,
				&cli.StringFlag{Name: "register", Aliases: []string{"r"}, Usage: "register to read from"},
				&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 1, Usage: "number of bytes to read"},
			},
			Action: ReadAction,
		},
		{
			Name:      "write",
			Usage:     "write bytes to a device, optionally to a register",
			ArgsUsage: "BYTE [BYTE...]",
			Flags: []cli.Flag{
				addrFlag,
				&cli.StringFlag{Name: "register", Aliases: []string{"r"}, Usage: "register to write to"},
			},
			Action: WriteAction,
		},
	},
}

var addrFlag = &cli.StringFlag{
	Name:     "addr",
	Aliases:  []string{"a"},
	Usage:    "device address, e.g. 0x50",
	Required: true,
}

// DetectAction probes every valid 7-bit address with a zero-length write
// and prints the ones that ACK, in the style of i2cdetect.
func DetectAction(c *cli.Context) error {
	bus, err := i2cdev.Open(c.String("device"), logger)
	if err != nil {
		return err
	}
	defer goutils.UncheckedErrorFunc(bus.Close)

	ctx := context.Background()
	var found []uint16
	for addr := uint16(0x08); addr <= 0x77; addr++ {
		probe := []*i2cdev.Message{i2cdev.NewWrite(nil)}
		if err := bus.Transfer(ctx, addr, probe); err == nil {
			found = append(found, addr)
		}
	}

	if len(found) == 0 {
		fmt.Fprintf(c.App.Writer, "no devices found on %s\n", bus.Path())
		return nil
	}
	for _, addr := range found {
		fmt.Fprintf(c.App.Writer, "0x%02x\n", addr)
	}
	return nil
}

// FuncsAction prints the adapter's capability bitmask and the named bits
// this tool knows about.
func FuncsAction(c *cli.Context) error {
	bus, err := i2cdev.Open(c.String("device"), logger)
	if err != nil {
		return err
	}
	defer goutils.UncheckedErrorFunc(bus.Close)

	caps := bus.Capabilities()
	fmt.Fprintf(c.App.Writer, "%s capabilities: %#x\n", bus.Path(), uintptr(caps))
	for _, known := range []struct {
		name string
		mask i2cdev.Capability
	}{
		{"i2c", i2cdev.CapI2C},
		{"ten-bit-addr", i2cdev.CapTenBitAddr},
		{"protocol-mangling", i2cdev.CapProtocolMangling},
		{"smbus-quick", i2cdev.CapSMBusQuick},
	} {
		fmt.Fprintf(c.App.Writer, "  %-18s %v\n", known.name, caps.Supports(known.mask))
	}
	return nil
}

// ReadAction reads bytes from the device, as a plain read or a
// register-pointer write followed by a read in one transaction.
func ReadAction(c *cli.Context) (err error) {
	addr, err := parseByteArg(c.String("addr"), 16)
	if err != nil {
		return errors.Wrap(err, "parsing addr")
	}

	bus, err := i2cdev.Open(c.String("device"), logger)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, bus.Close())
	}()

	dev := &i2cdev.Dev{Bus: bus, Addr: addr}
	var data []byte
	if regStr := c.String("register"); regStr != "" {
		reg, regErr := parseByteArg(regStr, 8)
		if regErr != nil {
			return errors.Wrap(regErr, "parsing register")
		}
		data, err = dev.ReadRegister(c.Context, byte(reg), c.Int("count"))
	} else {
		data, err = dev.Read(c.Context, c.Int("count"))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, formatBytes(data))
	return nil
}

// WriteAction writes its byte arguments to the device.
func WriteAction(c *cli.Context) (err error) {
	addr, err := parseByteArg(c.String("addr"), 16)
	if err != nil {
		return errors.Wrap(err, "parsing addr")
	}
	if c.NArg() == 0 {
		return errors.New("need at least one byte to write")
	}
	data := make([]byte, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		b, argErr := parseByteArg(arg, 8)
		if argErr != nil {
			return errors.Wrapf(argErr, "parsing byte %q", arg)
		}
		data = append(data, byte(b))
	}

	bus, err := i2cdev.Open(c.String("device"), logger)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, bus.Close())
	}()

	dev := &i2cdev.Dev{Bus: bus, Addr: addr}
	if regStr := c.String("register"); regStr != "" {
		reg, regErr := parseByteArg(regStr, 8)
		if regErr != nil {
			return errors.Wrap(regErr, "parsing register")
		}
		return dev.WriteRegister(c.Context, byte(reg), data)
	}
	return dev.Write(c.Context, data)
}

func parseByteArg(s string, bits int) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func formatBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	return strings.Join(parts, " ")
}
