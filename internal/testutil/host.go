package testutil

import (
	"sync"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/internal/abi"
)

// maxText bounds reads of C strings handed to the recorder.
const maxText = 4096

// stringArgs lists, per opcode, the argument slots holding a C string.
var stringArgs = map[entities.Import][]int{
	entities.ImportError:                    {0},
	entities.ImportPrint:                    {0},
	entities.ImportCvarSet:                  {0, 1},
	entities.ImportCvarVariableValue:        {0},
	entities.ImportCvarVariableStringBuffer: {0},
	entities.ImportCvarSetValue:             {0},
	entities.ImportCvarReset:                {0},
	entities.ImportCvarCreate:               {0, 1},
	entities.ImportCmdExecuteText:           {1},
	entities.ImportRRegisterShaderNoMip:     {0},
	entities.ImportSRegisterSound:           {0},
}

// bufferArgs lists out-buffer and vector slots whose addresses vary from run
// to run and are therefore not recorded.
var bufferArgs = map[entities.Import][]int{
	entities.ImportCvarVariableStringBuffer: {1},
	entities.ImportArgv:                     {1},
	entities.ImportRSetColor:                {0},
}

// Call is one recorded syscall. Args holds the raw arguments with string and
// buffer slots zeroed, so two identical dispatches record equal calls.
type Call struct {
	Op     entities.Import
	Args   []int64
	Text   []string
	Floats []float32
}

// RecordingHost is a ports.Syscaller that stands in for the engine in tests.
// It records every call, reads string arguments while they are pinned, and
// answers with scripted results or custom handlers.
type RecordingHost struct {
	mu       sync.Mutex
	calls    []Call
	results  map[entities.Import][]uintptr
	handlers map[entities.Import]func(args []uintptr) uintptr
}

// NewRecordingHost returns a host that answers 0 to everything.
func NewRecordingHost() *RecordingHost {
	return &RecordingHost{
		results:  make(map[entities.Import][]uintptr),
		handlers: make(map[entities.Import]func(args []uintptr) uintptr),
	}
}

// Script queues results for op. They are consumed in order; the last one
// keeps being returned once the queue is drained.
func (h *RecordingHost) Script(op entities.Import, results ...uintptr) *RecordingHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.results[op] = append(h.results[op], results...)
	return h
}

// Handle installs fn as the implementation of op. Handlers run while the
// caller's buffers are pinned and may write into them.
func (h *RecordingHost) Handle(op entities.Import, fn func(args []uintptr) uintptr) *RecordingHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[op] = fn
	return h
}

// Cvars answers UI_CVAR_VARIABLESTRINGBUFFER from values. Unknown names
// read as "".
func (h *RecordingHost) Cvars(values map[string]string) *RecordingHost {
	return h.Handle(entities.ImportCvarVariableStringBuffer, func(args []uintptr) uintptr {
		abi.WriteCString(args[1], int(args[2]), values[abi.ReadCString(args[0], maxText)])
		return 0
	})
}

// Syscall implements ports.Syscaller.
func (h *RecordingHost) Syscall(op entities.Import, args ...uintptr) uintptr {
	call := Call{Op: op, Args: make([]int64, len(args))}
	for i, a := range args {
		call.Args[i] = int64(int(a))
	}
	for _, i := range stringArgs[op] {
		if i < len(args) {
			call.Text = append(call.Text, abi.ReadCString(args[i], maxText))
			call.Args[i] = 0
		}
	}
	for _, i := range bufferArgs[op] {
		if i < len(args) {
			call.Args[i] = 0
		}
	}
	if op == entities.ImportRSetColor && len(args) > 0 && args[0] != 0 {
		call.Floats = append(call.Floats, abi.Floats(args[0], 4)...)
	}

	h.mu.Lock()
	h.calls = append(h.calls, call)
	fn := h.handlers[op]
	var result uintptr
	if queue := h.results[op]; len(queue) > 0 {
		result = queue[0]
		if len(queue) > 1 {
			h.results[op] = queue[1:]
		}
	}
	h.mu.Unlock()

	if fn != nil {
		return fn(args)
	}
	return result
}

// Calls returns a copy of the recorded calls.
func (h *RecordingHost) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Call, len(h.calls))
	copy(out, h.calls)
	return out
}

// Ops returns the recorded opcodes in call order.
func (h *RecordingHost) Ops() []entities.Import {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]entities.Import, len(h.calls))
	for i, c := range h.calls {
		out[i] = c.Op
	}
	return out
}

// Printed returns the text of every UI_PRINT call.
func (h *RecordingHost) Printed() []string {
	return h.textOf(entities.ImportPrint)
}

// Errors returns the text of every UI_ERROR call.
func (h *RecordingHost) Errors() []string {
	return h.textOf(entities.ImportError)
}

func (h *RecordingHost) textOf(op entities.Import) []string {
	var out []string
	for _, c := range h.Calls() {
		if c.Op == op && len(c.Text) > 0 {
			out = append(out, c.Text[0])
		}
	}
	return out
}

// Reset forgets recorded calls but keeps scripts and handlers.
func (h *RecordingHost) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
}
