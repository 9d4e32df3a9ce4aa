// Package simulator connects the beam engine to a host user interface.
//
// The host forwards user actions (parameter selection, keypad presses, load
// drags, material swaps, resets) and receives display updates through a
// Renderer. A Simulator is owned by a single goroutine.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/keypad"
	"github.com/alexiusacademia/gobeam/internal/logging"
)

// ErrNoSession is returned for keypad events sent before a parameter is selected
var ErrNoSession = errors.New("no parameter selected for editing")

// Renderer receives the simulator's output
type Renderer interface {
	// DisplayParameter shows a committed value, e.g. ("Load", "1500", "N")
	DisplayParameter(name, value, unit string)

	// DisplayKeypad shows the keypad buffer with its unit while editing
	DisplayKeypad(text string)

	// RenderProfile draws the magnified deflections and places the load at loadSampleIndex
	RenderProfile(deflections []float64, loadSampleIndex int)

	// ReportVerdict shows the outcome of the stress check
	ReportVerdict(v beam.Verdict)
}

type nopRenderer struct{}

func (nopRenderer) DisplayParameter(name, value, unit string)                {}
func (nopRenderer) DisplayKeypad(text string)                                {}
func (nopRenderer) RenderProfile(deflections []float64, loadSampleIndex int) {}
func (nopRenderer) ReportVerdict(v beam.Verdict)                             {}

// Simulator owns the beam parameters, the open keypad session and the latest profile
type Simulator struct {
	params        *beam.Parameters
	initial       *beam.Parameters
	session       *keypad.Session
	profile       *beam.Profile
	verdict       beam.Verdict
	magnification float64

	renderer Renderer
	logger   *slog.Logger
}

// New builds a simulator for the configured initial beam
func New(cfg *config.Config, r Renderer, logger *slog.Logger) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	p, err := cfg.NewBeam()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if r == nil {
		r = nopRenderer{}
	}
	return &Simulator{
		params:        p,
		initial:       p.Clone(),
		magnification: cfg.Display.Magnification,
		renderer:      r,
		logger:        logger,
	}, nil
}

// Params returns the live beam parameters
func (s *Simulator) Params() *beam.Parameters { return s.params }

// Profile returns the most recent profile, or nil before the first solve or after a reset
func (s *Simulator) Profile() *beam.Profile { return s.profile }

// Verdict returns the verdict of the most recent solve
func (s *Simulator) Verdict() beam.Verdict { return s.verdict }

// Session returns the open keypad session, or nil
func (s *Simulator) Session() *keypad.Session { return s.session }

// Magnification returns the display scale applied to rendered deflections
func (s *Simulator) Magnification() float64 { return s.magnification }

// SelectParameter opens a keypad session for the named parameter seeded with its current value
func (s *Simulator) SelectParameter(name string) error {
	target, err := keypad.ParseTarget(name)
	if err != nil {
		return err
	}
	s.session = keypad.OpenValue(target, s.value(target))
	s.logger.Debug("parameter selected", "target", target, "seed", s.session.Buffer())
	s.renderer.DisplayKeypad(s.session.Display())
	return nil
}

// KeypadEvent applies one keypad token to the open session.
// A successful Confirm commits the value, closes the session and solves.
func (s *Simulator) KeypadEvent(token string) error {
	if s.session == nil || !s.session.IsOpen() {
		return ErrNoSession
	}
	s.logger.Log(context.Background(), logging.LevelTrace, "keypad", "key", token, "buffer", s.session.Buffer())

	if err := s.session.Press(token, keypad.CommitFunc(s.commit)); err != nil {
		s.logger.Info("keypad input rejected", "target", s.session.Target(), "buffer", s.session.Buffer(), "error", err)
		return err
	}

	if s.session.IsOpen() {
		s.renderer.DisplayKeypad(s.session.Display())
		return nil
	}

	target := s.session.Target()
	s.renderer.DisplayParameter(target.String(), s.session.Buffer(), target.Unit())
	s.session = nil
	_, err := s.Solve()
	return err
}

// commit writes a confirmed keypad value into the beam
func (s *Simulator) commit(target keypad.Target, v float64) error {
	var err error
	switch target {
	case keypad.Load:
		err = s.params.SetLoad(v)
	case keypad.Height:
		err = s.params.SetHeight(v)
	case keypad.Length:
		err = s.params.SetLength(v)
	case keypad.Base:
		err = s.params.SetBase(v)
	default:
		err = fmt.Errorf("unknown target %v", target)
	}
	if err == nil {
		s.logger.Debug("parameter committed", "target", target, "value", v)
	}
	return err
}

func (s *Simulator) value(target keypad.Target) float64 {
	switch target {
	case keypad.Load:
		return s.params.Load()
	case keypad.Height:
		return s.params.Height()
	case keypad.Length:
		return s.params.Length()
	case keypad.Base:
		return s.params.Base()
	}
	return 0
}

// DragLoad moves the load to ratio·L, clamping the ratio to [0, 1], and solves
func (s *Simulator) DragLoad(ratio float64) error {
	clamped, err := s.params.SetLoadRatio(ratio)
	if err != nil {
		return err
	}
	if clamped {
		s.logger.Debug("load position clamped", "ratio", ratio, "px", s.params.LoadPosition())
	}
	_, err = s.Solve()
	return err
}

// SelectMaterial swaps the beam material and solves. The beam is unchanged on error.
func (s *Simulator) SelectMaterial(name string) error {
	if err := s.params.SetMaterial(name); err != nil {
		s.logger.Info("material rejected", "name", name, "error", err)
		return err
	}
	s.logger.Debug("material selected", "name", name)
	_, err := s.Solve()
	return err
}

// Solve recomputes the profile and verdict and sends them to the renderer
func (s *Simulator) Solve() (*beam.Profile, error) {
	prof, err := beam.Solve(s.params)
	if err != nil {
		return nil, err
	}
	s.profile = prof
	s.verdict = beam.Evaluate(prof.PeakStressPa, s.params.Material())

	s.logger.Debug("solved",
		"length", s.params.Length(),
		"load", s.params.Load(),
		"px", s.params.LoadPosition(),
		"material", s.params.Material().Name,
		"sigma_max", prof.PeakStressPa,
		"verdict", s.verdict)

	s.renderer.RenderProfile(prof.Scaled(s.magnification), prof.LoadSampleIndex)
	s.renderer.ReportVerdict(s.verdict)
	return prof, nil
}

// Reset restores the initial beam, discards any open session and draws the
// undeflected beam. Calling it repeatedly leaves the same state.
func (s *Simulator) Reset() {
	s.params = s.initial.Clone()
	s.session = nil
	s.profile = nil
	s.verdict = beam.Safe

	n := s.params.Samples()
	idx := beam.LoadSampleIndex(s.params.Length(), s.params.LoadPosition(), n)
	s.logger.Debug("reset")
	s.renderer.RenderProfile(make([]float64, n), idx)
}
