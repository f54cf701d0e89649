// Package ai holds the pluggable movement strategies for enemies.
package ai

import (
	"fmt"
	"strings"
)

// Context is what a strategy sees each tick.
type Context struct {
	X, Y             float64 // enemy position
	PlayerX, PlayerY float64
	HasPlayer        bool
	Tick             int
}

// Velocity is the strategy's requested movement. X replaces the horizontal
// speed each tick; a non-zero Y replaces the vertical speed.
type Velocity struct {
	X, Y float64
}

// Strategy decides how an enemy moves.
type Strategy interface {
	Step(ctx Context) Velocity
}

const (
	KindNone   = "none"
	KindPatrol = "patrol"
	KindScript = "script"
)

// Spec describes the strategy for one enemy spawn.
type Spec struct {
	Kind           string
	OriginX        float64
	PatrolDistance float64
	Speed          float64
	Script         string // asset path, used by KindScript
}

// New builds the strategy described by spec. Scripts may be nil when no
// script strategies are used.
func New(spec Spec, scripts *Scripts) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(spec.Kind)) {
	case "", KindNone:
		return None{}, nil
	case KindPatrol:
		return NewPatrol(spec.OriginX-spec.PatrolDistance, spec.OriginX+spec.PatrolDistance, spec.Speed), nil
	case KindScript:
		if scripts == nil {
			return nil, fmt.Errorf("ai: script strategy %q without a script loader", spec.Script)
		}
		s, err := scripts.Load(spec.Script)
		if err != nil {
			return nil, err
		}
		s.Speed = spec.Speed
		return s, nil
	}
	return nil, fmt.Errorf("ai: unknown strategy %q", spec.Kind)
}

// None keeps the enemy still.
type None struct{}

func (None) Step(Context) Velocity { return Velocity{} }

// Patrol walks between Left and Right, turning around at each bound.
type Patrol struct {
	Left, Right float64
	Speed       float64
	dir         float64
}

func NewPatrol(left, right, speed float64) *Patrol {
	if right < left {
		left, right = right, left
	}
	return &Patrol{Left: left, Right: right, Speed: speed, dir: 1}
}

func (p *Patrol) Step(ctx Context) Velocity {
	if ctx.X >= p.Right {
		p.dir = -1
	} else if ctx.X <= p.Left {
		p.dir = 1
	}
	return Velocity{X: p.dir * p.Speed}
}

// Direction is -1 while walking left and 1 while walking right.
func (p *Patrol) Direction() float64 {
	return p.dir
}
