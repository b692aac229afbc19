package main

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/host"
	"github.com/q3ui/uibridge/hostfuncs"
	"github.com/q3ui/uibridge/wireformat"
)

// errQuit ends the session.
var errQuit = stdErrors.New("quit")

const help = `commands:
  init [ingame]          UI_INIT
  shutdown               UI_SHUTDOWN
  key <num> [up]         UI_KEY_EVENT
  mouse <dx> <dy>        UI_MOUSE_EVENT
  refresh [time]         UI_REFRESH, then list the draws
  fullscreen             UI_IS_FULLSCREEN
  menu <name>            UI_SET_ACTIVE_MENU
  cmd <text>             UI_CONSOLE_COMMAND with <text> as the command line
  connect [overlay]      UI_DRAW_CONNECT_SCREEN
  cdkey                  UI_HASUNIQUECDKEY
  version                UI_GETAPIVERSION
  raw <opcode> [args]    vmMain with unchecked arguments
  cvar <name> [value]    show or set an engine cvar
  condump                print the console scrollback
  quit
`

// console plays the engine's role from the keyboard: each line becomes one
// vmMain call on mod.
type console struct {
	mod    host.Module
	engine *hostfuncs.Engine
	scroll *hostfuncs.Scrollback
	out    io.Writer
}

func (c *console) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit":
		return errQuit
	case "help", "?":
		_, err := io.WriteString(c.out, help)
		return err
	case "cvar":
		return c.cvar(args)
	case "condump":
		return c.condump()
	case "raw":
		return c.raw(ctx, args)
	}

	cmd, err := c.command(name, args)
	if err != nil {
		return err
	}
	result, err := c.mod.VMMain(ctx, cmd)
	if err != nil {
		return err
	}
	return c.report(cmd, result)
}

// command turns one console line into a typed command, updating the engine
// state the command depends on.
func (c *console) command(name string, args []string) (entities.Command, error) {
	switch name {
	case "init":
		return entities.Init{InGameLoad: flagged(args, "ingame")}, nil
	case "shutdown":
		return entities.Shutdown{}, nil
	case "key":
		if len(args) < 1 {
			return nil, fmt.Errorf("usage: key <num> [up]")
		}
		key, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		down := !flagged(args[1:], "up")
		c.engine.SetKey(key, down)
		return entities.KeyEvent{Key: key, Down: down}, nil
	case "mouse":
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: mouse <dx> <dy>")
		}
		dx, err := parseInt(args[0])
		if err != nil {
			return nil, err
		}
		dy, err := parseInt(args[1])
		if err != nil {
			return nil, err
		}
		return entities.MouseEvent{DX: dx, DY: dy}, nil
	case "refresh":
		t := int32(0)
		if len(args) > 0 {
			v, err := parseInt(args[0])
			if err != nil {
				return nil, err
			}
			t = v
		}
		c.engine.ResetDraws()
		return entities.Refresh{RealTime: t}, nil
	case "fullscreen":
		return entities.IsFullscreen{}, nil
	case "menu":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: menu <name>")
		}
		m, ok := entities.MenuByName(args[0])
		if !ok {
			return nil, fmt.Errorf("unknown menu %q", args[0])
		}
		return entities.SetActiveMenu{Menu: m}, nil
	case "cmd":
		c.engine.SetArgs(strings.Join(args, " "))
		return entities.ConsoleCommand{}, nil
	case "connect":
		return entities.DrawConnectScreen{Overlay: flagged(args, "overlay")}, nil
	case "cdkey":
		return entities.HasUniqueCDKey{}, nil
	case "version":
		return entities.GetAPIVersion{}, nil
	default:
		return nil, fmt.Errorf("unknown command %q, try help", name)
	}
}

func (c *console) report(cmd entities.Command, result int32) error {
	var err error
	switch cmd.(type) {
	case entities.GetAPIVersion:
		_, err = fmt.Fprintf(c.out, "api version %d\n", result)
	case entities.IsFullscreen, entities.HasUniqueCDKey:
		_, err = fmt.Fprintf(c.out, "%s = %t\n", cmd.Opcode(), result != 0)
	case entities.ConsoleCommand:
		if result == 0 {
			_, err = fmt.Fprintln(c.out, "not a ui command")
		}
	case entities.Refresh:
		draws := c.engine.Draws()
		_, err = fmt.Fprintf(c.out, "%d draws\n", len(draws))
		for _, d := range draws {
			if err != nil {
				break
			}
			_, err = fmt.Fprintf(c.out, "  shader %d at %g,%g size %gx%g\n", d.Shader, d.X, d.Y, d.W, d.H)
		}
	}
	return err
}

func (c *console) raw(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 1+wireformat.ArgCount {
		return fmt.Errorf("usage: raw <opcode> [up to %d args]", wireformat.ArgCount)
	}
	vals := make([]int32, len(args))
	for i, a := range args {
		v, err := parseInt(a)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	result, err := c.mod.Call(ctx, vals[0], wireformat.MakeArgs(vals[1:]...))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.out, "= %d\n", result)
	return err
}

func (c *console) cvar(args []string) error {
	switch len(args) {
	case 1:
		cv, ok := c.engine.Cvar(args[0])
		if !ok {
			return fmt.Errorf("no cvar %q", args[0])
		}
		_, err := fmt.Fprintf(c.out, "%s = %q\n", cv.Name, cv.Value)
		return err
	case 2:
		c.engine.SetCvar(args[0], args[1])
		return nil
	default:
		return fmt.Errorf("usage: cvar <name> [value]")
	}
}

func (c *console) condump() error {
	if c.scroll == nil {
		return fmt.Errorf("no scrollback")
	}
	if n := c.scroll.Dropped(); n > 0 {
		if _, err := fmt.Fprintf(c.out, "(%d earlier lines dropped)\n", n); err != nil {
			return err
		}
	}
	for _, line := range c.scroll.Lines() {
		if _, err := fmt.Fprintln(c.out, line); err != nil {
			return err
		}
	}
	return nil
}

func flagged(args []string, word string) bool {
	for _, a := range args {
		if strings.EqualFold(a, word) {
			return true
		}
	}
	return false
}

func parseInt(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return int32(v), nil
}
