package encoder

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/soocke/firescreen-go/domain/capture"
	"github.com/soocke/firescreen-go/domain/compositor"
)

// FFmpeg opens sinks backed by an ffmpeg child process reading raw rgb24
// frames on stdin.
type FFmpeg struct {
	binary string
	logger *slog.Logger
}

// NewFFmpeg returns an opener using binary ("ffmpeg" when empty).
func NewFFmpeg(binary string, logger *slog.Logger) *FFmpeg {
	if strings.TrimSpace(binary) == "" {
		binary = "ffmpeg"
	}
	return &FFmpeg{binary: binary, logger: logger}
}

// Available reports whether the ffmpeg binary can be found.
func (f *FFmpeg) Available() error {
	if _, err := exec.LookPath(f.binary); err != nil {
		return fmt.Errorf("ffmpeg not found: %w", err)
	}
	return nil
}

// Open validates the format, creates (or truncates) path and starts ffmpeg.
func (f *FFmpeg) Open(path string, frameRate int, dims capture.Dimensions) (Sink, error) {
	codec, err := Lookup(path)
	if err != nil {
		return nil, err
	}
	if frameRate <= 0 || !dims.Valid() {
		return nil, fmt.Errorf("%w: invalid stream %dx%d@%d", ErrSinkOpenFailed, dims.Width, dims.Height, frameRate)
	}
	// Surface bad paths and permission problems before a process is spawned.
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSinkOpenFailed, err)
	}
	_ = fh.Close()

	cmd := exec.Command(f.binary, ffmpegArgs(codec, frameRate, dims, path)...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%w: %w", ErrSinkOpenFailed, err)
	}
	stderr := &tailBuffer{limit: 4096}
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%w: start %s: %w", ErrSinkOpenFailed, f.binary, err)
	}
	if f.logger != nil {
		f.logger.Debug("ffmpeg started", "path", path, "encoder", codec.Encoder, "fps", frameRate, "width", dims.Width, "height", dims.Height)
	}
	return &ffmpegSink{
		cmd:       cmd,
		stdin:     stdin,
		stderr:    stderr,
		frameSize: dims.Width * dims.Height * 3,
		dims:      dims,
		path:      path,
		logger:    f.logger,
	}, nil
}

func ffmpegArgs(codec Codec, frameRate int, dims capture.Dimensions, path string) []string {
	args := []string{
		"-hide_banner", "-loglevel", "error", "-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-s", fmt.Sprintf("%dx%d", dims.Width, dims.Height),
		"-r", strconv.Itoa(frameRate),
		"-i", "-",
		"-an",
		// yuv420p needs even dimensions.
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		"-c:v", codec.Encoder,
	}
	if codec.ForceTag {
		args = append(args, "-vtag", codec.Tag)
	}
	return append(args, "-pix_fmt", "yuv420p", "-f", codec.Muxer, path)
}

type ffmpegSink struct {
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stderr    *tailBuffer
	frameSize int
	dims      capture.Dimensions
	path      string
	frames    int
	closed    bool
	logger    *slog.Logger
}

func (s *ffmpegSink) Write(frame compositor.Frame) error {
	if s.closed {
		return fmt.Errorf("%w: sink closed", ErrWriteFailed)
	}
	if frame.Width != s.dims.Width || frame.Height != s.dims.Height || len(frame.Pix) != s.frameSize {
		return fmt.Errorf("%w: frame %dx%d does not match stream %dx%d", ErrWriteFailed, frame.Width, frame.Height, s.dims.Width, s.dims.Height)
	}
	// A short write leaves a truncated packet that the rawvideo demuxer drops.
	if n, err := s.stdin.Write(frame.Pix); err != nil {
		return fmt.Errorf("%w: wrote %d of %d bytes: %w", ErrWriteFailed, n, s.frameSize, err)
	}
	s.frames++
	return nil
}

func (s *ffmpegSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var result *multierror.Error
	if err := s.stdin.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("close ffmpeg stdin: %w", err))
	}
	if err := s.cmd.Wait(); err != nil {
		msg := strings.TrimSpace(s.stderr.String())
		result = multierror.Append(result, fmt.Errorf("ffmpeg exited: %w: %s", err, msg))
	}
	if s.logger != nil {
		s.logger.Debug("ffmpeg finished", "path", s.path, "frames", s.frames)
	}
	return result.ErrorOrNil()
}

func (s *ffmpegSink) Frames() int { return s.frames }

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   []byte
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.limit; over > 0 {
		b.buf = append(b.buf[:0], b.buf[over:]...)
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}
