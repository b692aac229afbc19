// Package wazero serves a hostfuncs registry to a UI module running under
// the wazero runtime.
//
// The module imports a single function, env.syscall, taking the opcode and
// twelve i32 arguments and returning an i32. Pointer arguments are offsets
// into the module's linear memory, which handlers reach through Memory.
//
// # Basic Usage
//
//	engine := hostfuncs.NewEngine(hostfuncs.WithConsole(os.Stdout))
//	registry, err := hostfuncs.NewRegistry(
//	    hostfuncs.WithBundle(hostfuncs.AllBundles(engine)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	runtime := wazero.NewRuntime(ctx)
//	err = uiwazero.RegisterWithRuntime(ctx, runtime, registry)
package wazero
