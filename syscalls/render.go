package syscalls

import (
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/internal/abi"
)

// RegisterShaderNoMip loads a 2D shader; zero means it was not found.
func (b *Bridge) RegisterShaderNoMip(name string) entities.Handle {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	return entities.Handle(abi.Result(sys.Syscall(entities.ImportRRegisterShaderNoMip, cstring(&f, name))))
}

// SetColor sets the draw colour. A nil colour resets it to white.
func (b *Bridge) SetColor(rgba *[4]float32) {
	sys := b.Reference()
	if rgba == nil {
		sys.Syscall(entities.ImportRSetColor, 0)
		return
	}

	var f abi.Frame
	defer f.Release()
	sys.Syscall(entities.ImportRSetColor, f.PinFloats(rgba[:]))
}

// DrawStretchPic draws a shader into a screen rectangle.
func (b *Bridge) DrawStretchPic(x, y, w, h, s1, t1, s2, t2 float32, shader entities.Handle) {
	b.call(entities.ImportRDrawStretchPic,
		abi.Float(x), abi.Float(y), abi.Float(w), abi.Float(h),
		abi.Float(s1), abi.Float(t1), abi.Float(s2), abi.Float(t2),
		abi.Int(int32(shader)))
}

// UpdateScreen forces a frame to be drawn, used while loading.
func (b *Bridge) UpdateScreen() {
	b.call(entities.ImportUpdateScreen)
}

// RegisterSound loads a sound effect.
func (b *Bridge) RegisterSound(name string, compressed bool) entities.Handle {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	return entities.Handle(abi.Result(sys.Syscall(entities.ImportSRegisterSound, cstring(&f, name), abi.Bool(compressed))))
}

// StartLocalSound plays a sound that is not spatialised.
func (b *Bridge) StartLocalSound(sfx entities.Handle, channel int32) {
	b.call(entities.ImportSStartLocalSound, abi.Int(int32(sfx)), abi.Int(channel))
}
