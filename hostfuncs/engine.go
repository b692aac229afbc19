package hostfuncs

import (
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/q3ui/uibridge/domain/entities"
)

// Cvar is one console variable.
type Cvar struct {
	Name         string
	Value        string
	DefaultValue string
	Flags        int32
}

// Draw is one recorded stretch-pic call.
type Draw struct {
	X, Y, W, H     float32
	S1, T1, S2, T2 float32
	Shader         entities.Handle
	Color          [4]float32
}

// Executed is one CMD_EXECUTETEXT call.
type Executed struct {
	When entities.ExecWhen
	Text string
}

var white = [4]float32{1, 1, 1, 1}

// Engine is the state behind the reference syscall table: console, clock,
// cvars, command line, keys, renderer and sound. It is safe for concurrent
// use.
type Engine struct {
	mu sync.Mutex

	console io.Writer
	clock   func() int32

	cvars    map[string]*Cvar
	args     []string
	executed []Executed

	keys    map[int32]bool
	catcher int32

	shaders map[string]entities.Handle
	sounds  map[string]entities.Handle
	color   [4]float32
	draws   []Draw
	updates int
	played  []entities.Handle

	memoryRemaining int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithConsole sets where UI_PRINT and UI_ERROR text goes.
func WithConsole(w io.Writer) EngineOption {
	return func(e *Engine) {
		e.console = w
	}
}

// WithClock replaces the millisecond clock.
func WithClock(clock func() int32) EngineOption {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithMemoryRemaining sets the value reported by UI_MEMORY_REMAINING.
func WithMemoryRemaining(n int) EngineOption {
	return func(e *Engine) {
		e.memoryRemaining = n
	}
}

// NewEngine creates an engine with an empty state. The default clock counts
// milliseconds since creation.
func NewEngine(opts ...EngineOption) *Engine {
	start := time.Now()
	e := &Engine{
		console:         io.Discard,
		clock:           func() int32 { return int32(time.Since(start).Milliseconds()) },
		cvars:           make(map[string]*Cvar),
		keys:            make(map[int32]bool),
		shaders:         make(map[string]entities.Handle),
		sounds:          make(map[string]entities.Handle),
		color:           white,
		memoryRemaining: 16 << 20,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) print(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, _ = io.WriteString(e.console, text)
}

// Cvar returns a copy of the named cvar.
func (e *Engine) Cvar(name string) (Cvar, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cv, ok := e.cvars[strings.ToLower(name)]
	if !ok {
		return Cvar{}, false
	}
	return *cv, true
}

// CvarString returns a cvar's value, or "" when it does not exist.
func (e *Engine) CvarString(name string) string {
	cv, _ := e.Cvar(name)
	return cv.Value
}

// SetCvar sets a cvar, creating it if needed.
func (e *Engine) SetCvar(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setCvar(name, value)
}

func (e *Engine) setCvar(name, value string) {
	key := strings.ToLower(name)
	if cv, ok := e.cvars[key]; ok {
		cv.Value = value
		return
	}
	e.cvars[key] = &Cvar{Name: name, Value: value}
}

func (e *Engine) createCvar(name, value string, flags int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := strings.ToLower(name)
	if cv, ok := e.cvars[key]; ok {
		cv.DefaultValue = value
		cv.Flags |= flags
		return
	}
	e.cvars[key] = &Cvar{Name: name, Value: value, DefaultValue: value, Flags: flags}
}

func (e *Engine) resetCvar(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if cv, ok := e.cvars[strings.ToLower(name)]; ok {
		cv.Value = cv.DefaultValue
	}
}

func (e *Engine) cvarFloat(name string) float32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(e.CvarString(name)), 32)
	if err != nil {
		return 0
	}
	return float32(f)
}

// SetArgs tokenizes line as the current console command.
func (e *Engine) SetArgs(line string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.args = strings.Fields(line)
}

func (e *Engine) arg(n int32) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n < 0 || int(n) >= len(e.args) {
		return ""
	}
	return e.args[n]
}

func (e *Engine) argc() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.args)
}

// Executed returns the console text queued by the module.
func (e *Engine) Executed() []Executed {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Executed, len(e.executed))
	copy(out, e.executed)
	return out
}

// execute records text and applies "set"-style lines of the form
// "<cvar> <value>" to known cvars.
func (e *Engine) execute(when entities.ExecWhen, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.executed = append(e.executed, Executed{When: when, Text: text})
	for _, line := range strings.Split(text, "\n") {
		f := strings.Fields(line)
		if len(f) == 2 {
			if _, ok := e.cvars[strings.ToLower(f[0])]; ok {
				e.setCvar(f[0], f[1])
			}
		}
	}
}

// SetKey records a key transition, as the engine does before forwarding it.
func (e *Engine) SetKey(key int32, down bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keys[key] = down
}

func (e *Engine) keyDown(key int32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.keys[key]
}

func (e *Engine) clearKeys() {
	e.mu.Lock()
	defer e.mu.Unlock()
	clear(e.keys)
}

// Catcher returns the key catcher bits.
func (e *Engine) Catcher() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catcher
}

func (e *Engine) setCatcher(c int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.catcher = c
}

func register(table map[string]entities.Handle, name string) entities.Handle {
	key := strings.ToLower(name)
	if h, ok := table[key]; ok {
		return h
	}
	h := entities.Handle(len(table) + 1)
	table[key] = h
	return h
}

func (e *Engine) registerShader(name string) entities.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return register(e.shaders, name)
}

func (e *Engine) registerSound(name string) entities.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return register(e.sounds, name)
}

// Shader returns the handle registered for name, or 0.
func (e *Engine) Shader(name string) entities.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shaders[strings.ToLower(name)]
}

func (e *Engine) setColor(c [4]float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.color = c
}

func (e *Engine) draw(d Draw) {
	e.mu.Lock()
	defer e.mu.Unlock()
	d.Color = e.color
	e.draws = append(e.draws, d)
}

// Draws returns every recorded draw call.
func (e *Engine) Draws() []Draw {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Draw, len(e.draws))
	copy(out, e.draws)
	return out
}

// ResetDraws forgets recorded draws, as at the start of a frame.
func (e *Engine) ResetDraws() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draws = nil
}

func (e *Engine) updateScreen() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updates++
}

func (e *Engine) startSound(sfx entities.Handle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.played = append(e.played, sfx)
}

// Played returns the sounds started so far.
func (e *Engine) Played() []entities.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]entities.Handle, len(e.played))
	copy(out, e.played)
	return out
}

func (e *Engine) now() int32 {
	return e.clock()
}

// Updates returns how many times the module forced a screen update.
func (e *Engine) Updates() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.updates
}
