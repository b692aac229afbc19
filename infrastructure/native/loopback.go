//go:build cgo && !wasip1

package native

/*
#include <stdarg.h>
#include <stdint.h>

// uibridge_loopback reads op variadic arguments and returns their weighted
// sum, 1*a0 + 2*a1 + ...
static intptr_t uibridge_loopback(intptr_t op, ...) {
	va_list ap;
	intptr_t sum = 0;
	va_start(ap, op);
	for (intptr_t i = 0; i < op && i < 12; i++) {
		sum += (i + 1) * va_arg(ap, intptr_t);
	}
	va_end(ap);
	return sum;
}

static uintptr_t uibridge_loopback_addr(void) {
	return (uintptr_t)&uibridge_loopback;
}
*/
import "C"

// Loopback returns the address of a C syscall implementation that treats the
// opcode as its argument count and answers the weighted sum of the
// arguments. It checks that the trampoline forwards every slot in order.
func Loopback() uintptr {
	return uintptr(C.uibridge_loopback_addr())
}
