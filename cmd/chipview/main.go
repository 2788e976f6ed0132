// Command chipview runs a test pattern through the full display pipeline:
// screen, frame conversion, GPU texture upload, and optional image capture.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"chipview"
	"chipview/capture"
	"chipview/gpu"
	"chipview/screen"
)

func main() {
	var (
		frames  = flag.Int("frames", 60, "number of frames to run")
		scale   = flag.Int("scale", 9, "display and capture magnification")
		output  = flag.String("output", "", "write final frame to this file (.png or .webp)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		chipview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*frames, *scale, *output); err != nil {
		fmt.Fprintln(os.Stderr, "chipview:", err)
		os.Exit(1)
	}
}

func run(frames, scale int, output string) error {
	backend := gpu.New()
	if err := backend.Init(); err != nil {
		return err
	}
	defer backend.Close()

	scr := screen.New()
	drawTestPattern(scr)

	view, err := chipview.NewView(backend, scr, chipview.WithScale(float32(scale)))
	if err != nil {
		return err
	}
	defer view.Close()

	for i := 0; i < frames; i++ {
		if i > 0 {
			// A small ring sprite bouncing across the screen.
			scr.DrawSprite(i%screen.Width, (i*3)%screen.Height,
				[]byte{0x3C, 0x42, 0x42, 0x3C})
		}
		if err := view.Update(scr); err != nil {
			return err
		}
	}

	cmd := view.Draw()
	stats := backend.Textures().Stats()
	fmt.Printf("display %gx%g texture=%d adapter=%q textures=%d gpuBytes=%d\n",
		cmd.Width, cmd.Height, cmd.Texture, backend.AdapterName(),
		stats.Textures, stats.Bytes)

	if output != "" {
		if err := capture.Save(output, view.Frame(), scale); err != nil {
			return err
		}
		fmt.Println("saved", output)
	}
	return nil
}

// drawTestPattern puts a border and a center sprite on the screen.
func drawTestPattern(s *screen.Screen) {
	w, h := s.Size()
	for x := 0; x < w; x++ {
		s.Set(x, 0, true)
		s.Set(x, h-1, true)
	}
	for y := 0; y < h; y++ {
		s.Set(0, y, true)
		s.Set(w-1, y, true)
	}
	s.DrawSprite(w/2-4, h/2-4, []byte{0x18, 0x3C, 0x7E, 0xFF, 0xFF, 0x7E, 0x3C, 0x18})
}
