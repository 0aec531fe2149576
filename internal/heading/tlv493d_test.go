package heading

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

// fakeBus replays read frames and records writes.
type fakeBus struct {
	frames  [][]byte
	readErr error // returned for every read after the first
	reads   int
	writes  [][]byte
	closed  bool
}

func (b *fakeBus) ReadBytes(buf []byte) (int, error) {
	b.reads++
	if b.readErr != nil && b.reads > 1 {
		return 0, b.readErr
	}
	i := b.reads - 1
	if i >= len(b.frames) {
		i = len(b.frames) - 1
	}
	return copy(buf, b.frames[i]), nil
}

func (b *fakeBus) WriteBytes(buf []byte) (int, error) {
	b.writes = append(b.writes, append([]byte(nil), buf...))
	return len(buf), nil
}

func (b *fakeBus) Close() error {
	b.closed = true
	return nil
}

// frame packs 12-bit field counts the way the sensor reports them.
func frame(x, y, z int16) []byte {
	f := make([]byte, tlvReadLen)
	ux, uy, uz := uint16(x)&0xfff, uint16(y)&0xfff, uint16(z)&0xfff
	f[0] = byte(ux >> 4)
	f[1] = byte(uy >> 4)
	f[2] = byte(uz >> 4)
	f[4] = byte(ux&0xf)<<4 | byte(uy&0xf)
	f[5] = byte(uz & 0xf)
	// reserved bits the driver must echo back
	f[7] = 0x18
	f[8] = 0xa5
	f[9] = 0x13
	return f
}

func TestRaw12(t *testing.T) {
	tests := []struct {
		hi, lo byte
		want   int16
	}{
		{0x06, 0x4, 100},
		{0xf9, 0xc, -100},
		{0x7f, 0xf, 2047},
		{0x80, 0x0, -2048},
		{0x00, 0x0, 0},
	}
	for _, tc := range tests {
		if got := raw12(tc.hi, tc.lo); got != tc.want {
			t.Errorf("raw12(%#x,%#x) = %d, want %d", tc.hi, tc.lo, got, tc.want)
		}
	}
}

func TestFieldHeading(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{1, 0, 0},
		{1, 1, 45},
		{0, 1, 90},
		{-1, 0, 180},
	}
	for _, tc := range tests {
		if got := fieldHeading(tc.x, tc.y); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("fieldHeading(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestTLV493DConfigure(t *testing.T) {
	b := &fakeBus{frames: [][]byte{frame(0, 0, 0)}}
	d := &tlvDevice{bus: b}
	if err := d.configure(); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if len(b.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(b.writes))
	}
	w := b.writes[0]
	if w[1]&wRez1 != 0x18 {
		t.Errorf("reserved bits of byte 1 not copied: %#x", w[1])
	}
	if w[2] != 0xa5 || w[3]&0x1f != 0x13 {
		t.Errorf("reserved bytes not copied: %#x %#x", w[2], w[3])
	}
	if w[1]&(wFast|wLowPow) != wFast|wLowPow {
		t.Errorf("mode bits not set: %#x", w[1])
	}
	if bitCount(w)%2 != 1 {
		t.Errorf("write block parity is even: % x", w)
	}
}

func TestTLV493DRun(t *testing.T) {
	b := &fakeBus{frames: [][]byte{
		frame(0, 0, 0),      // startup read
		frame(100, 100, 10), // 45°
	}}
	src := &TLV493D{Offset: 15, Interval: time.Millisecond, open: func() (bus, error) { return b, nil }}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan Reading, 1)
	errC := make(chan error, 1)
	go func() {
		errC <- src.Run(ctx, func(r Reading) {
			select {
			case got <- r:
			default:
			}
		})
	}()

	select {
	case r := <-got:
		if math.Abs(r.Degrees-30) > 1e-9 {
			t.Errorf("expected 45-15=30, got %v", r.Degrees)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no reading")
	}
	cancel()
	if err := <-errC; !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
	if !b.closed {
		t.Error("bus not closed")
	}
}

func TestTLV493DOpenFailure(t *testing.T) {
	boom := errors.New("no such device")
	src := &TLV493D{Bus: 7, open: func() (bus, error) { return nil, boom }}
	err := src.Run(context.Background(), func(Reading) {})
	if !errors.Is(err, boom) {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestTLV493DReadFailures(t *testing.T) {
	b := &fakeBus{frames: [][]byte{frame(0, 0, 0)}, readErr: errors.New("nack")}
	src := &TLV493D{Interval: time.Millisecond, open: func() (bus, error) { return b, nil }}

	err := src.Run(testCtx(t), func(Reading) { t.Error("unexpected reading") })
	if err == nil {
		t.Fatal("expected error after repeated read failures")
	}
	if b.reads != 1+maxReadFailures {
		t.Errorf("expected %d reads, got %d", 1+maxReadFailures, b.reads)
	}
}

func TestTLV493DName(t *testing.T) {
	src := &TLV493D{Bus: 1}
	if got := src.Name(); got != "tlv493d@1:0x5e" {
		t.Errorf("Name = %q", got)
	}
}
