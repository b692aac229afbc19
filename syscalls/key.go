package syscalls

import (
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/internal/abi"
)

// KeyIsDown reports whether the key is held.
func (b *Bridge) KeyIsDown(key int32) bool {
	return abi.Result(b.call(entities.ImportKeyIsDown, abi.Int(key))) != 0
}

// KeyGetCatcher returns the key catcher bits.
func (b *Bridge) KeyGetCatcher() int32 {
	return abi.Result(b.call(entities.ImportKeyGetCatcher))
}

// KeySetCatcher replaces the key catcher bits.
func (b *Bridge) KeySetCatcher(catcher int32) {
	b.call(entities.ImportKeySetCatcher, abi.Int(catcher))
}

// KeyClearStates releases every held key.
func (b *Bridge) KeyClearStates() {
	b.call(entities.ImportKeyClearStates)
}
