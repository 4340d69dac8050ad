package encoder

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Codec describes how one container extension is encoded.
type Codec struct {
	Container string // display name, e.g. "MP4"
	Tag       string // four-character codec tag
	Encoder   string // ffmpeg encoder name
	Muxer     string // ffmpeg output format
	ForceTag  bool   // write Tag into the container instead of the muxer default
}

// codecs maps a lower-case extension (without dot) to its codec. The table
// is fixed; unknown extensions are rejected.
var codecs = map[string]Codec{
	"mp4":  {Container: "MP4", Tag: "mp4v", Encoder: "mpeg4", Muxer: "mp4"},
	"avi":  {Container: "AVI", Tag: "XVID", Encoder: "mpeg4", Muxer: "avi", ForceTag: true},
	"mkv":  {Container: "MKV", Tag: "X264", Encoder: "libx264", Muxer: "matroska"},
	"mov":  {Container: "MOV", Tag: "avc1", Encoder: "libx264", Muxer: "mov"},
	"wmv":  {Container: "WMV", Tag: "WMV1", Encoder: "wmv1", Muxer: "asf"},
	"flv":  {Container: "FLV", Tag: "FLV1", Encoder: "flv", Muxer: "flv"},
	"webm": {Container: "WEBM", Tag: "vp80", Encoder: "libvpx", Muxer: "webm"},
}

// Lookup resolves the codec for path by its extension, case-insensitively.
func Lookup(path string) (Codec, error) {
	ext := filepath.Ext(path)
	c, ok := codecs[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		if ext == "" {
			ext = "<none>"
		}
		return Codec{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return c, nil
}

// Extensions returns the supported extensions, lower-case with a leading dot,
// in a stable order with mp4 first.
func Extensions() []string {
	out := make([]string, 0, len(codecs))
	for ext := range codecs {
		out = append(out, "."+ext)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i] == ".mp4" || out[j] == ".mp4" {
			return out[i] == ".mp4"
		}
		return out[i] < out[j]
	})
	return out
}

// ContainerName returns the display name for a dotted extension.
func ContainerName(ext string) string {
	if c, ok := codecs[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
		return c.Container
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}
