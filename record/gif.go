// Package record captures turtle frames into an animated GIF.
//
// A Recorder is installed as the turtle's frame hook:
//
//	dc := gg.NewContext(400, 400)
//	rec := record.New(dc)
//	t := turtle.New(dc, turtle.WithFrameFunc(rec.Capture))
//	// ... drive t ...
//	rec.Save("walk.gif")
package record

import (
	"errors"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gogpu/turtle"
	xdraw "golang.org/x/image/draw"
)

// ErrNoFrames is returned when encoding a recording with no frames.
var ErrNoFrames = errors.New("record: no frames captured")

// Source is the canvas being recorded. *gg.Context implements it.
type Source interface {
	Image() image.Image
}

// Recorder accumulates paletted frames. Its methods are safe for
// concurrent use.
type Recorder struct {
	src Source

	scale     float64
	maxFrames int
	blink     bool
	delay     int // hundredths of a second

	mu      sync.Mutex
	frames  []*image.Paletted
	dropped int
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithScale scales every frame by f. Values <= 0 are ignored.
func WithScale(f float64) Option {
	return func(r *Recorder) {
		if f > 0 {
			r.scale = f
		}
	}
}

// WithMaxFrames caps the number of frames kept. Frames past the cap are
// dropped. 0 means no cap.
func WithMaxFrames(n int) Option {
	return func(r *Recorder) {
		if n >= 0 {
			r.maxFrames = n
		}
	}
}

// WithBlink keeps idle blink frames, which are skipped by default.
func WithBlink(keep bool) Option {
	return func(r *Recorder) {
		r.blink = keep
	}
}

// WithFrameDelay sets the display time of each frame. GIF delays have a
// resolution of 10ms; anything shorter shows for 10ms.
func WithFrameDelay(d time.Duration) Option {
	return func(r *Recorder) {
		r.delay = gifDelay(d)
	}
}

// New returns a recorder reading pixels from src.
func New(src Source, opts ...Option) *Recorder {
	r := &Recorder{
		src:   src,
		scale: 1,
		delay: gifDelay(turtle.DefaultFrameDelay),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func gifDelay(d time.Duration) int {
	return max(1, int((d+5*time.Millisecond)/(10*time.Millisecond)))
}

// Capture snapshots the source for frame f. It has the signature of a
// turtle.FrameFunc.
func (r *Recorder) Capture(f turtle.Frame) {
	if f.Source == turtle.FrameBlink && !r.blink {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.maxFrames > 0 && len(r.frames) >= r.maxFrames {
		r.dropped++
		return
	}
	r.frames = append(r.frames, r.paletted(r.src.Image()))
}

// paletted scales img and maps it onto the Plan 9 palette with
// Floyd-Steinberg dithering.
func (r *Recorder) paletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	if r.scale != 1 {
		w := max(1, int(float64(b.Dx())*r.scale+0.5))
		h := max(1, int(float64(b.Dy())*r.scale+0.5))
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)
		img, b = scaled, scaled.Bounds()
	}
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	xdraw.FloydSteinberg.Draw(dst, dst.Bounds(), img, b.Min)
	return dst
}

// Len returns the number of frames kept.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Dropped returns the number of frames discarded past the cap.
func (r *Recorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Encode writes the recording to w as a looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	r.mu.Lock()
	frames := append([]*image.Paletted(nil), r.frames...)
	r.mu.Unlock()

	if len(frames) == 0 {
		return ErrNoFrames
	}
	delays := make([]int, len(frames))
	for i := range delays {
		delays[i] = r.delay
	}
	turtle.Logger().Info("record: encoding gif", "frames", len(frames), "delay", r.delay)
	return gif.EncodeAll(w, &gif.GIF{Image: frames, Delay: delays})
}

// Save encodes the recording to the file at path.
func (r *Recorder) Save(path string) (err error) {
	if r.Len() == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return r.Encode(f)
}
