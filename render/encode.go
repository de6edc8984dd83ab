package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const defaultBackground = "#0a0a14"

// RenderSequence renders the full loop to a slice of RGBA frames. Each
// frame gets a fresh surface, so a failed frame never contaminates the
// sequence; the first error aborts.
func RenderSequence(p *Pipeline, width, height, totalFrames int, backgroundHex string, log *zap.Logger) ([]*image.RGBA, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if totalFrames < 1 {
		return nil, errors.Newf("total frames must be at least 1, got %d", totalFrames)
	}
	if backgroundHex == "" {
		backgroundHex = defaultBackground
	}

	start := time.Now()
	frames := make([]*image.RGBA, 0, totalFrames)
	for frame := 0; frame < totalFrames; frame++ {
		surface, err := NewRaster(width, height)
		if err != nil {
			return nil, err
		}
		if err := surface.Clear(backgroundHex); err != nil {
			return nil, err
		}
		if err := p.RenderFrame(surface, frame, totalFrames); err != nil {
			return nil, err
		}
		frames = append(frames, surface.Image())
	}
	log.Debug("rendered loop",
		zap.Int("frames", totalFrames),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Duration("elapsed", time.Since(start)))
	return frames, nil
}

// EncodeGIF writes the frames as an endlessly looping GIF. delay is in
// hundredths of a second per frame.
func EncodeGIF(w io.Writer, frames []*image.RGBA, delay int) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}
	if delay < 1 {
		delay = 4
	}
	out := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		pal := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, frame.Bounds(), frame, image.Point{})
		out.Image = append(out.Image, pal)
		out.Delay = append(out.Delay, delay)
	}
	return errors.Wrap(gif.EncodeAll(w, out), "encode gif")
}

// WritePNGFrames writes one numbered PNG per frame into dir.
func WritePNGFrames(dir string, frames []*image.RGBA) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create frame directory")
	}
	for i, frame := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "create %s", path)
		}
		if err := png.Encode(f, frame); err != nil {
			f.Close()
			return errors.Wrapf(err, "encode %s", path)
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "close %s", path)
		}
	}
	return nil
}
