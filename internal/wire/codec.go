// Package wire encodes blocks for the peer connection.
//
// Every message is one JSON object followed by a single newline. The newline
// is the frame boundary, so several messages may share one read and a message
// may span many reads, up to the reader's size limit.
package wire

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goodnatureofminers/powledger/internal/model"
)

// Delimiter terminates every frame.
const Delimiter = '\n'

// DefaultMaxMessageSize bounds a single frame on the reading side.
const DefaultMaxMessageSize = 1 << 20

var (
	// ErrMessageTooLarge is returned when a frame exceeds the reader's limit.
	ErrMessageTooLarge = errors.New("message too large")
	// ErrMalformedMessage is returned when a frame is not a valid block.
	ErrMalformedMessage = errors.New("malformed message")
)

// Encode returns the framed wire form of b.
func Encode(b model.Block) ([]byte, error) {
	data, err := json.Marshal(ToMessage(b))
	if err != nil {
		return nil, fmt.Errorf("marshal block %d: %w", b.Index, err)
	}
	return append(data, Delimiter), nil
}

// Decode parses one message. A trailing delimiter is optional.
func Decode(data []byte) (model.Block, error) {
	data = bytes.TrimSuffix(data, []byte{Delimiter})
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return model.Block{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return FromMessage(msg), nil
}

// Reader splits a byte stream into block messages.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader reads frames from r. Frames longer than maxSize bytes fail with
// ErrMessageTooLarge; maxSize <= 0 selects DefaultMaxMessageSize.
func NewReader(r io.Reader, maxSize int) *Reader {
	if maxSize <= 0 {
		maxSize = DefaultMaxMessageSize
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, min(4096, maxSize)), maxSize)
	s.Split(bufio.ScanLines)
	return &Reader{scanner: s}
}

// Next returns the next block. It returns io.EOF once the stream is closed
// cleanly. Blank lines are skipped.
func (r *Reader) Next() (model.Block, error) {
	for r.scanner.Scan() {
		line := bytes.TrimSpace(r.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		return Decode(line)
	}
	if err := r.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return model.Block{}, ErrMessageTooLarge
		}
		return model.Block{}, err
	}
	return model.Block{}, io.EOF
}
