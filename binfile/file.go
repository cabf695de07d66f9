package binfile

import (
	"bytes"

	"fortio.org/safecast"
	"go.uber.org/zap"

	"github.com/wippyai/plbin/binfile/internal/cursor"
	"github.com/wippyai/plbin/errors"
)

// File pairs a string interner with a positioned payload buffer.
// A File serves one encode or decode pass and is not safe for concurrent use.
type File struct {
	interner *Interner
	payload  *cursor.Cursor
	magic    []byte
	log      *zap.Logger
}

type options struct {
	magic  []byte
	logger *zap.Logger
}

// Option configures a File.
type Option func(*options)

// WithMagic makes the envelope start with the given header bytes.
// Open rejects input that does not begin with them.
func WithMagic(magic [2]byte) Option {
	return func(o *options) {
		o.magic = magic[:]
	}
}

// WithLogger overrides the package logger for one File.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// NewFile returns an empty File for encoding.
func NewFile(opts ...Option) *File {
	o := buildOptions(opts)
	return &File{
		interner: NewInterner(),
		payload:  cursor.New(nil),
		magic:    o.magic,
		log:      o.logger,
	}
}

// Open parses an envelope: optional magic, u64 LE interner length,
// interner block, payload. The payload cursor starts at offset 0.
func Open(b []byte, opts ...Option) (*File, error) {
	o := buildOptions(opts)
	c := cursor.New(b)

	if len(o.magic) > 0 {
		got, err := c.ReadBytes(len(o.magic))
		if err != nil {
			return nil, errors.WithPath(err, "magic")
		}
		if !bytes.Equal(got, o.magic) {
			return nil, errors.WrongFileFormat(got, o.magic)
		}
	}

	n, err := c.ReadU64LE()
	if err != nil {
		return nil, errors.WithPath(err, "interner_len")
	}
	size, err := safecast.Conv[int](n)
	if err != nil {
		return nil, errors.Overflow(errors.PhaseDecode, []string{"interner_len"}, n, "int")
	}
	block, err := c.ReadBytes(size)
	if err != nil {
		return nil, errors.WithPath(err, "interner")
	}
	in := ParseInterner(block)

	payload := bytes.Clone(b[c.Position():])
	o.logger.Debug("opened file",
		zap.Int("interner_bytes", size),
		zap.Int("strings", in.Len()),
		zap.Int("payload_bytes", len(payload)))

	return &File{
		interner: in,
		payload:  cursor.New(payload),
		magic:    o.magic,
		log:      o.logger,
	}, nil
}

// Bytes serializes the envelope. The whole payload buffer is written
// regardless of the current position.
func (f *File) Bytes() []byte {
	block := f.interner.Bytes()
	payload := f.payload.Bytes()

	out := cursor.New(make([]byte, 0, len(f.magic)+8+len(block)+len(payload)))
	out.WriteBytes(f.magic)
	out.WriteU64LE(uint64(len(block)))
	out.WriteBytes(block)
	out.WriteBytes(payload)

	f.log.Debug("serialized file",
		zap.Int("strings", f.interner.Len()),
		zap.Int("interner_bytes", len(block)),
		zap.Int("payload_bytes", len(payload)))
	return out.Bytes()
}

// Interner returns the file's string table.
func (f *File) Interner() *Interner {
	return f.interner
}

// Position returns the payload cursor position.
func (f *File) Position() int {
	return f.payload.Position()
}

// Seek moves the payload cursor.
func (f *File) Seek(pos int) error {
	return f.payload.Seek(pos)
}

// Remaining returns the number of payload bytes after the cursor.
func (f *File) Remaining() int {
	return f.payload.Remaining()
}

// Payload returns the payload bytes without the interner.
func (f *File) Payload() []byte {
	return f.payload.Bytes()
}

// ReadBytes reads exactly n payload bytes.
func (f *File) ReadBytes(n int) ([]byte, error) {
	return f.payload.ReadBytes(n)
}

// WriteBytes writes p at the payload cursor.
func (f *File) WriteBytes(p []byte) {
	f.payload.WriteBytes(p)
}

// readLen decodes a u64 length prefix and checks that it fits an int.
func (f *File) readLen() (int, error) {
	n, err := f.payload.ReadU64LE()
	if err != nil {
		return 0, err
	}
	size, err := safecast.Conv[int](n)
	if err != nil {
		return 0, errors.Overflow(errors.PhaseDecode, nil, n, "int")
	}
	return size, nil
}

func (f *File) writeLen(n int) {
	f.payload.WriteU64LE(uint64(n))
}

// capHint bounds a preallocation by the bytes left in the payload,
// assuming each element takes at least one byte.
func (f *File) capHint(n int) int {
	return min(n, f.payload.Remaining())
}
