package ai

import (
	"fmt"
	"io/fs"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script runs a tengo program every tick. The program reads x, y, player_x,
// player_y, has_player, tick and speed, and writes vx and vy.
type Script struct {
	Path  string
	Speed float64

	compiled *tengo.Compiled
	failed   bool
}

// Step runs the script. A script that fails at runtime is logged once and
// stands still from then on.
func (s *Script) Step(ctx Context) Velocity {
	if s.failed {
		return Velocity{}
	}
	if err := s.run(ctx); err != nil {
		log.Printf("[ai] script %s: %v", s.Path, err)
		s.failed = true
		return Velocity{}
	}
	return Velocity{
		X: s.compiled.Get("vx").Float(),
		Y: s.compiled.Get("vy").Float(),
	}
}

func (s *Script) run(ctx Context) error {
	vars := []struct {
		name  string
		value interface{}
	}{
		{"x", ctx.X},
		{"y", ctx.Y},
		{"player_x", ctx.PlayerX},
		{"player_y", ctx.PlayerY},
		{"has_player", ctx.HasPlayer},
		{"tick", ctx.Tick},
		{"speed", s.Speed},
		{"vx", 0.0},
		{"vy", 0.0},
	}
	for _, v := range vars {
		if err := s.compiled.Set(v.name, v.value); err != nil {
			return err
		}
	}
	return s.compiled.Run()
}

// Scripts compiles each script once and hands out independent copies.
type Scripts struct {
	fsys fs.FS

	mu       sync.Mutex
	compiled map[string]*tengo.Compiled
}

func NewScripts(fsys fs.FS) *Scripts {
	return &Scripts{
		fsys:     fsys,
		compiled: make(map[string]*tengo.Compiled),
	}
}

// Load returns a fresh Script for path.
func (l *Scripts) Load(path string) (*Script, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	base, ok := l.compiled[path]
	if !ok {
		src, err := fs.ReadFile(l.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("ai: read script %s: %w", path, err)
		}
		base, err = Compile(src)
		if err != nil {
			return nil, fmt.Errorf("ai: compile script %s: %w", path, err)
		}
		l.compiled[path] = base
	}
	return &Script{Path: path, compiled: base.Clone()}, nil
}

// Invalidate drops a cached script so the next Load recompiles it.
func (l *Scripts) Invalidate(path string) {
	l.mu.Lock()
	delete(l.compiled, path)
	l.mu.Unlock()
}

// Compile declares the script inputs and outputs and compiles src.
func Compile(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	for _, name := range []string{"x", "y", "player_x", "player_y", "speed", "vx", "vy"} {
		if err := script.Add(name, 0.0); err != nil {
			return nil, err
		}
	}
	if err := script.Add("tick", 0); err != nil {
		return nil, err
	}
	if err := script.Add("has_player", false); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap("math"))
	return script.Compile()
}
