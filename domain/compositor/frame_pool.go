package compositor

import "sync"

// framePool recycles RGB backing slices between ticks. At 1080p each frame
// is ~6 MB, so reusing them keeps the heap flat during long recordings. A
// frame that is never released simply falls back to a fresh allocation.
type framePool struct {
	p sync.Pool // stores *[]byte
}

// acquire returns a frame sized w x h. Its previous contents are undefined.
func (fp *framePool) acquire(w, h int) Frame {
	needed := w * h * 3
	if needed <= 0 {
		return Frame{Width: w, Height: h}
	}
	var buf []byte
	if v := fp.p.Get(); v != nil {
		buf = *(v.(*[]byte))
	}
	if cap(buf) < needed {
		buf = make([]byte, needed)
	}
	return Frame{Pix: buf[:needed], Width: w, Height: h}
}

func (fp *framePool) recycle(f Frame) {
	if f.Pix == nil {
		return
	}
	buf := f.Pix[:0]
	fp.p.Put(&buf)
}
