package vocab

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"vocabsearch/internal/domain"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Payload is a vocabulary blob held both as text and as a gzip stream, so it
// can be served with content-encoding gzip without compressing per request.
type Payload struct {
	Text string
	Gzip []byte
}

// NewPayload compresses text into a Payload.
func NewPayload(text string) (*Payload, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip writer: %w", err)
	}
	if _, err := io.WriteString(zw, text); err != nil {
		return nil, fmt.Errorf("failed to compress vocabulary: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress vocabulary: %w", err)
	}
	return &Payload{Text: text, Gzip: buf.Bytes()}, nil
}

// ReadFile loads a vocabulary file, which may be plain text or gzip.
func ReadFile(path string) (*Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open vocab file %q: %w", path, err)
	}

	if !IsGzip(data) {
		return NewPayload(string(data))
	}

	text, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("vocab file %q: %w", path, err)
	}
	return &Payload{Text: text, Gzip: data}, nil
}

// IsGzip reports whether data starts with the gzip magic bytes.
func IsGzip(data []byte) bool {
	return bytes.HasPrefix(data, gzipMagic)
}

// Decode returns the text of data, decompressing it first when it is gzip.
func Decode(data []byte) (string, error) {
	if !IsGzip(data) {
		return string(data), nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer zr.Close()

	text, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("failed to decompress vocabulary: %w", err)
	}
	return string(text), nil
}

// Entries parses the payload text.
func (p *Payload) Entries() []domain.Entry {
	return Parse(p.Text)
}
