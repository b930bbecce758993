package marc21

import "io"

// Writer serializes Records to an underlying byte stream.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes r and writes it to the underlying stream.
func (wr *Writer) Write(r *Record) error {
	b, err := Encode(r)
	if err != nil {
		return err
	}
	_, err = wr.w.Write(b)
	return err
}

// Close releases the underlying stream if it implements io.Closer.
func (wr *Writer) Close() error {
	if c, ok := wr.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
