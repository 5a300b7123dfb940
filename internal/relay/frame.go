package relay

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxFrameSize bounds the payload of a single frame. Relayed argument
// lists are tiny; anything near this limit is a malformed or hostile peer.
const MaxFrameSize = 1 << 20

// ErrFrameTooLarge is returned when a length prefix exceeds MaxFrameSize.
var ErrFrameTooLarge = errors.New("relay: frame exceeds maximum size")

// WriteFrame writes one length-prefixed frame: a 4-byte big-endian payload
// length followed by the payload itself.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxFrameSize {
		return ErrFrameTooLarge
	}

	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("relay: write frame header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("relay: write frame payload: %w", err)
	}
	return nil
}

// ReadFrame reads one length-prefixed frame, accumulating reads until the
// full payload is available. A clean EOF before the first header byte is
// reported as io.EOF; a frame cut off mid-way decodes to an error.
func ReadFrame(r io.Reader) ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("relay: read frame header: %w", err)
	}

	length := binary.BigEndian.Uint32(header[:])
	if length > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("relay: read frame payload: %w", err)
	}
	return payload, nil
}
