package encoder

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVEncoder streams PCM into a RIFF/WAVE container. The header is
// patched with the final length on Close, so the target must seek.
type WAVEncoder struct {
	enc         *wav.Encoder
	sampleRate  int
	totalFrames uint64
}

func NewWAV(ws io.WriteSeeker, sampleRate int) *WAVEncoder {
	return &WAVEncoder{
		enc:        wav.NewEncoder(ws, sampleRate, BitsPerSample, Channels, 1),
		sampleRate: sampleRate,
	}
}

func (e *WAVEncoder) EncodeBlock(block []int16) error {
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: Channels,
			SampleRate:  e.sampleRate,
		},
		Data:           make([]int, len(block)),
		SourceBitDepth: BitsPerSample,
	}
	for i, s := range block {
		buf.Data[i] = int(s)
	}

	if err := e.enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav block: %w", err)
	}
	e.totalFrames += uint64(len(block))
	return nil
}

func (e *WAVEncoder) Close() error {
	return e.enc.Close()
}

func (e *WAVEncoder) TotalFrames() uint64 {
	return e.totalFrames
}
