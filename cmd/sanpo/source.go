package main

import (
	"fmt"

	"github.com/wesen/sanpo/internal/config"
	"github.com/wesen/sanpo/internal/heading"
)

// newSource builds the configured heading source. The manual source is
// also returned on its own so the UI can nudge it.
func newSource(cfg config.Config) (heading.Source, *heading.Manual, error) {
	s := cfg.Source
	switch s.Type {
	case config.SourceScript:
		return &heading.Script{Expr: s.Script, Interval: s.Interval()}, nil, nil
	case config.SourceManual:
		m := heading.NewManual(s.Heading)
		return m, m, nil
	case config.SourceStatic:
		return heading.Static{Degrees: s.Heading}, nil, nil
	case config.SourceTLV493D:
		return &heading.TLV493D{
			Bus:      cfg.I2C.Bus,
			Addr:     uint8(cfg.I2C.Addr),
			Offset:   s.Offset,
			Interval: s.Interval(),
		}, nil, nil
	case config.SourceNone:
		return heading.None{}, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown heading source %q", s.Type)
}
