// Package chipview turns an emulator's monochrome framebuffer into a
// GPU-resident RGBA texture once per frame and tracks the presentation state
// a GUI layer needs to draw it: the texture handle, the display scale, and
// the tint color.
//
// The pipeline is deliberately small. A PixelSource (usually a
// screen.Screen) is converted into a Frame, the CPU-side RGBA buffer. The
// Frame's bytes are uploaded to a texture owned by a gpu.Backend through a
// transient staging buffer. The View ties those steps together and hands the
// GUI layer a DrawCommand describing what to draw.
//
//	backend := gpu.New()
//	if err := backend.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer backend.Close()
//
//	scr := screen.New()
//	view, err := chipview.NewView(backend, scr)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer view.Close()
//
//	// Per emulator frame:
//	if err := view.Update(scr); err != nil {
//		log.Fatal(err)
//	}
//	cmd := view.Draw() // hand to the GUI layer
//
// chipview produces no log output by default. Call SetLogger to enable it.
package chipview
