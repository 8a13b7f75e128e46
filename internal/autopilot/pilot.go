// Package autopilot plays breakout from a Lua script. A script defines a
// global function intent(s) that receives the scene as a table and returns
// a table with optional boolean fields left, right and start.
package autopilot

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed scripts/track.lua
var defaultScript string

// EntryPoint is the global function every script must define.
const EntryPoint = "intent"

// ErrNoEntryPoint is returned when a script does not define EntryPoint.
var ErrNoEntryPoint = errors.New("autopilot: script does not define intent(s)")

// Pilot wraps one Lua VM. It is not safe for concurrent use; the tick
// driver calls Intent from a single goroutine.
type Pilot struct {
	vm     *lua.LState
	name   string
	logger *log.Logger
}

// New compiles source and checks that it defines the entry point.
func New(name, source string, logger *log.Logger) (*Pilot, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	if err := vm.DoString(source); err != nil {
		vm.Close()
		return nil, fmt.Errorf("autopilot: load %s: %w", name, err)
	}
	if _, ok := vm.GetGlobal(EntryPoint).(*lua.LFunction); !ok {
		vm.Close()
		return nil, fmt.Errorf("%w (%s)", ErrNoEntryPoint, name)
	}

	logger.Debug("loaded autopilot script", "script", name)
	return &Pilot{vm: vm, name: name, logger: logger}, nil
}

// Default returns a pilot running the built-in ball-tracking script.
func Default(logger *log.Logger) (*Pilot, error) {
	return New("track.lua", defaultScript, logger)
}

// Load reads a script from disk. An empty path selects the default script.
func Load(path string, logger *log.Logger) (*Pilot, error) {
	if path == "" {
		return Default(logger)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("autopilot: read script: %w", err)
	}
	return New(path, string(data), logger)
}

// DefaultScript returns the source of the built-in script.
func DefaultScript() string {
	return defaultScript
}

// Name returns the script name used in logs.
func (p *Pilot) Name() string {
	return p.name
}

// Intent calls the script for the next tick. Script errors are logged and
// produce an empty intent so a broken script can never stop the game.
func (p *Pilot) Intent(snap breakout.Snapshot) core.Intent {
	fn := p.vm.GetGlobal(EntryPoint)

	if err := p.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, p.sceneTable(snap)); err != nil {
		p.logger.Error("autopilot script error", "script", p.name, "tick", snap.Tick, "error", err)
		return core.Intent{}
	}

	ret := p.vm.Get(-1)
	p.vm.Pop(1)

	rt, ok := ret.(*lua.LTable)
	if !ok {
		if ret != lua.LNil {
			p.logger.Error("autopilot script returned non-table", "script", p.name, "type", ret.Type().String())
		}
		return core.Intent{}
	}

	return core.Intent{
		Left:  lua.LVAsBool(rt.RawGetString("left")),
		Right: lua.LVAsBool(rt.RawGetString("right")),
		Start: lua.LVAsBool(rt.RawGetString("start")),
	}
}

func (p *Pilot) sceneTable(snap breakout.Snapshot) *lua.LTable {
	t := p.vm.NewTable()
	t.RawSetString("ball_x", lua.LNumber(snap.Ball.X))
	t.RawSetString("ball_y", lua.LNumber(snap.Ball.Y))
	t.RawSetString("ball_dx", lua.LNumber(snap.Ball.DX))
	t.RawSetString("ball_dy", lua.LNumber(snap.Ball.DY))
	t.RawSetString("ball_r", lua.LNumber(snap.Ball.Radius))
	t.RawSetString("paddle_x", lua.LNumber(snap.Paddle.X))
	t.RawSetString("paddle_w", lua.LNumber(snap.Paddle.W))
	t.RawSetString("arena_w", lua.LNumber(snap.ArenaW))
	t.RawSetString("arena_h", lua.LNumber(snap.ArenaH))
	t.RawSetString("phase", lua.LString(snap.Phase.String()))
	t.RawSetString("score", lua.LNumber(snap.Score))
	t.RawSetString("total", lua.LNumber(snap.Total))
	t.RawSetString("tick", lua.LNumber(snap.Tick))
	return t
}

// Close shuts down the Lua VM.
func (p *Pilot) Close() {
	p.vm.Close()
}
