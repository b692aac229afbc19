package testutil

// Offsets of the strings preloaded into EchoModule's memory.
const (
	EchoHello   = 16 // "hi\n"
	EchoCvar    = 32 // "ui_version"
	EchoScratch = 64 // free space for out-buffers
)

// EchoModule returns a minimal wasm UI module. It imports env.syscall and
// exports memory, dllEntry and vmMain:
//
//   - vmMain(0, ...) returns 6, the API version
//   - vmMain(cmd, op, a0..a10) returns syscall(op, a0..a10, 0) for any other cmd
//
// It lets host tests drive every import through a real guest without a
// compiled UI.
func EchoModule() []byte {
	const (
		i32     = 0x7f
		funcTyp = 0x60
	)

	syscallType := []byte{funcTyp}
	syscallType = append(syscallType, vec(repeat(13, i32))...)
	syscallType = append(syscallType, vec([]byte{i32})...)
	entryType := []byte{funcTyp}
	entryType = append(entryType, vec([]byte{i32})...)
	entryType = append(entryType, vec(nil)...)

	types := vecOf(syscallType, entryType)

	imports := vecOf(cat(name("env"), name("syscall"), []byte{0x00, 0x00}))

	functions := vecOf([]byte{1}, []byte{0}) // dllEntry, vmMain

	memories := vecOf([]byte{0x00, 0x01}) // min 1 page

	exports := vecOf(
		cat(name("memory"), []byte{0x02, 0x00}),
		cat(name("dllEntry"), []byte{0x00, 0x01}),
		cat(name("vmMain"), []byte{0x00, 0x02}),
	)

	dllEntry := []byte{0x00, 0x0b}

	vmMain := []byte{
		0x00,       // no locals
		0x20, 0x00, // local.get cmd
		0x45,       // i32.eqz
		0x04, 0x40, // if
		0x41, 0x06, // i32.const 6
		0x0f,       // return
		0x0b,       // end
	}
	for i := byte(1); i <= 12; i++ {
		vmMain = append(vmMain, 0x20, i) // local.get
	}
	vmMain = append(vmMain,
		0x41, 0x00, // i32.const 0
		0x10, 0x00, // call syscall
		0x0b,       // end
	)

	code := vecOf(vec(dllEntry), vec(vmMain))

	data := vecOf(
		segment(EchoHello, "hi\n\x00"),
		segment(EchoCvar, "ui_version\x00"),
	)

	module := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	module = append(module, section(1, types)...)
	module = append(module, section(2, imports)...)
	module = append(module, section(3, functions)...)
	module = append(module, section(5, memories)...)
	module = append(module, section(7, exports)...)
	module = append(module, section(10, code)...)
	module = append(module, section(11, data)...)
	return module
}

func segment(offset uint32, text string) []byte {
	out := []byte{0x00, 0x41}
	out = append(out, sleb(int32(offset))...) //nolint:gosec // G115: small constants
	out = append(out, 0x0b)
	return append(out, vec([]byte(text))...)
}

func section(id byte, payload []byte) []byte {
	return append([]byte{id}, vec(payload)...)
}

// vec prefixes raw bytes with their length.
func vec(b []byte) []byte {
	return append(uleb(uint32(len(b))), b...) //nolint:gosec // G115: test sized
}

// vecOf encodes a vector of already encoded items.
func vecOf(items ...[]byte) []byte {
	return append(uleb(uint32(len(items))), cat(items...)...) //nolint:gosec // G115: test sized
}

func name(s string) []byte {
	return vec([]byte(s))
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func repeat(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func uleb(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}

func sleb(v int32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}
