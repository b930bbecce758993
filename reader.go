package marc21

import (
	"io"
)

// Reader is a lazy sequence of Records pulled from an underlying byte
// stream. Each step reads the 5-byte ASCII-digit length prefix, then the
// remaining length-5 bytes of the record, then decodes. End of stream
// is signaled by a zero-byte read of the length prefix, modeled here as
// Next returning (nil, nil, nil) rather than a sentinel error, an
// explicit "none" result instead of an error used for control flow.
type Reader struct {
	r    io.Reader
	opts DecodeOptions
}

// NewReader wraps r. opts configures the character decoder used for
// every record; the zero value decodes strict UTF-8.
func NewReader(r io.Reader, opts DecodeOptions) *Reader {
	return &Reader{r: r, opts: opts}
}

// Next reads and decodes the next record, or returns (nil, nil, nil) at
// a clean end of stream. Diagnostics collected during decode are logged
// by the caller; Next does not discard them, it returns them as its
// second result for callers that need them.
func (rd *Reader) Next() (*Record, []string, error) {
	lenBuf := make([]byte, 5)
	n, err := io.ReadFull(rd.r, lenBuf)
	if n == 0 && (err == io.EOF || err == io.ErrUnexpectedEOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, wrapf(ErrRecordLength, "reading length prefix: %v", err)
	}
	if !isAllDigits(lenBuf) {
		return nil, nil, wrapf(ErrRecordLength, "length prefix %q is not numeric", lenBuf)
	}
	recordLength, err := atoi(lenBuf)
	if err != nil {
		return nil, nil, wrapf(ErrRecordLength, "parsing length prefix %q", lenBuf)
	}
	if recordLength < 5 || recordLength > maxRecordLength {
		return nil, nil, wrapf(ErrRecordLength, "declared length %d out of range", recordLength)
	}

	rest := make([]byte, recordLength-5)
	if _, err := io.ReadFull(rd.r, rest); err != nil {
		return nil, nil, wrapf(ErrRecordLength, "reading %d remaining bytes: %v", len(rest), err)
	}

	full := append(lenBuf, rest...)
	result, err := Decode(full, rd.opts)
	if err != nil {
		return nil, nil, err
	}
	return result.Record, result.Diagnostics, nil
}

// CountRecords returns the number of END_OF_RECORD bytes in r.
func CountRecords(r io.Reader) (int, error) {
	buf := make([]byte, 32*1024)
	count := 0
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if b == endOfRecord {
				count++
			}
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
	}
}
