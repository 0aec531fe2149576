package heading

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"time"

	i2c "github.com/aliher1911/go-i2c"
	i2clog "github.com/d2r2/go-logger"
)

// TLV493DAddr is the default I2C address of the Infineon TLV493D 3D
// magnetic sensor.
const TLV493DAddr = 0x5e

// maxReadFailures is how many consecutive failed reads stop the source.
const maxReadFailures = 5

// bus is the part of *i2c.I2C the sensor needs.
type bus interface {
	ReadBytes(buf []byte) (int, error)
	WriteBytes(buf []byte) (int, error)
	Close() error
}

// TLV493D reads a TLV493D magnetometer lying flat and turns the X/Y
// field into a heading. Offset is subtracted to account for how the
// sensor is mounted relative to the display's "up".
type TLV493D struct {
	Bus      int
	Addr     uint8
	Offset   float64
	Interval time.Duration

	open func() (bus, error)
}

// Name implements Named.
func (t *TLV493D) Name() string { return fmt.Sprintf("tlv493d@%d:%#x", t.Bus, t.addr()) }

func (t *TLV493D) addr() uint8 {
	if t.Addr == 0 {
		return TLV493DAddr
	}
	return t.Addr
}

func (t *TLV493D) openBus() (bus, error) {
	if t.open != nil {
		return t.open()
	}
	// go-i2c logs every transfer at debug level to stdout.
	i2clog.ChangePackageLogLevel("i2c", i2clog.ErrorLevel)
	return i2c.NewI2C(t.addr(), t.Bus)
}

// Run implements Source.
func (t *TLV493D) Run(ctx context.Context, emit func(Reading)) error {
	b, err := t.openBus()
	if err != nil {
		return fmt.Errorf("open i2c bus %d addr %#x: %w", t.Bus, t.addr(), err)
	}
	defer b.Close()

	dev := &tlvDevice{bus: b}
	if err := dev.configure(); err != nil {
		return fmt.Errorf("configure tlv493d: %w", err)
	}

	interval := t.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	tick := time.NewTicker(interval)
	defer tick.Stop()

	l := logger()
	failures := 0
	for {
		x, y, _, err := dev.read()
		if err != nil {
			failures++
			l.Warn().Err(err).Int("failures", failures).Msg("tlv493d read failed")
			if failures >= maxReadFailures {
				return fmt.Errorf("tlv493d: %d consecutive read failures: %w", failures, err)
			}
		} else {
			failures = 0
			emit(NewReading(fieldHeading(x, y)-t.Offset, time.Now()))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}
}

// fieldHeading converts the horizontal field components to degrees.
func fieldHeading(x, y float64) float64 {
	return math.Atan2(y, x) * 180 / math.Pi
}

// Register layout of the read block (10 bytes) and write block (4 bytes).
const (
	tlvReadLen  = 10
	tlvWriteLen = 4

	// write byte 1
	wParity  = 0x80
	wFast    = 0x02
	wLowPow  = 0x01
	wRez1    = 0x18
	wIICAddr = 0x60
)

// tlvDevice holds the raw register buffers. The reserved bits read from
// the sensor at startup must be written back unchanged.
type tlvDevice struct {
	bus  bus
	rbuf [tlvReadLen]byte
	wbuf [tlvWriteLen]byte
}

// fieldScale converts raw 12-bit counts to microtesla (98 µT/LSB).
const fieldScale = 98

func (d *tlvDevice) readBus() error {
	n, err := d.bus.ReadBytes(d.rbuf[:])
	if err != nil {
		return err
	}
	if n != tlvReadLen {
		return fmt.Errorf("expected to read %d bytes, read %d", tlvReadLen, n)
	}
	return nil
}

func (d *tlvDevice) configure() error {
	if err := d.readBus(); err != nil {
		return err
	}
	// Copy reserved bits: read 7[4:3] → write 1[4:3], read 8 → write 2,
	// read 9[4:0] → write 3[4:0].
	d.wbuf[1] = d.rbuf[7] & wRez1
	d.wbuf[2] = d.rbuf[8]
	d.wbuf[3] = d.rbuf[9] & 0x1f

	// Master controlled (fast + low power) mode, address bits 0.
	d.wbuf[1] &^= wIICAddr
	d.wbuf[1] |= wFast | wLowPow

	// The parity bit makes the sum of all written bits odd.
	d.wbuf[1] &^= wParity
	if bitCount(d.wbuf[:])%2 == 0 {
		d.wbuf[1] |= wParity
	}

	n, err := d.bus.WriteBytes(d.wbuf[:])
	if err != nil {
		return err
	}
	if n != tlvWriteLen {
		return fmt.Errorf("expected to write %d bytes, wrote %d", tlvWriteLen, n)
	}
	return nil
}

// read returns the field in microtesla.
func (d *tlvDevice) read() (x, y, z float64, err error) {
	if err := d.readBus(); err != nil {
		return 0, 0, 0, err
	}
	r := d.rbuf
	x = fieldScale * float64(raw12(r[0], r[4]>>4))
	y = fieldScale * float64(raw12(r[1], r[4]&0x0f))
	z = fieldScale * float64(raw12(r[2], r[5]&0x0f))
	return x, y, z, nil
}

// raw12 assembles a signed 12-bit value from its high byte and low nibble.
func raw12(hi, lo byte) int16 {
	return (int16(hi)<<8 | int16(lo&0x0f)<<4) >> 4
}

func bitCount(buf []byte) int {
	n := 0
	for _, b := range buf {
		n += bits.OnesCount8(b)
	}
	return n
}
