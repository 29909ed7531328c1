// Package encoder writes mono PCM blocks into audio containers.
package encoder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	Channels      = 1
	BitsPerSample = 16
	BlockSize     = 4096
)

// ErrUnknownFormat reports an output extension with no matching encoder.
var ErrUnknownFormat = errors.New("unknown recording format")

// Encoder consumes 16-bit PCM blocks and finalizes the container on
// Close.
type Encoder interface {
	EncodeBlock(block []int16) error
	Close() error
	TotalFrames() uint64
}

// ForFile picks an encoder from the file's extension.
func ForFile(f *os.File, sampleRate int) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(f.Name()))
	switch ext {
	case ".wav":
		return NewWAV(f, sampleRate), nil
	case ".flac":
		return NewFLAC(f, sampleRate)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}
