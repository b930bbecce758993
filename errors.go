package marc21

import "github.com/pkg/errors"

// Sentinel errors for decode failures serious enough to abort decoding.
// Non-fatal conditions (DirectoryError, SubfieldDecodeError) are not
// errors: they are recorded as Diagnostics or logged and decoding
// proceeds.
var (
	// ErrRecordLength: the first 5 bytes are missing or non-numeric.
	ErrRecordLength = errors.New("marc21: record length is missing or not numeric")
	// ErrLeader: the leader is not exactly 24 bytes.
	ErrLeader = errors.New("marc21: leader is not 24 bytes")
	// ErrBaseAddress: base address <= 0.
	ErrBaseAddress = errors.New("marc21: base address must be positive")
	// ErrBaseAddressLength: base address >= record length.
	ErrBaseAddressLength = errors.New("marc21: base address exceeds record length")
	// ErrNoFields: zero fields were attached after decoding.
	ErrNoFields = errors.New("marc21: no fields attached to record")
	// ErrWriteNeedsRecord: Encode was invoked on something other than a *Record.
	ErrWriteNeedsRecord = errors.New("marc21: encoder requires a *Record")
)

// maxRecordLength is a defensive ceiling: a 5-digit leader length field
// can never legitimately declare more bytes than this.
const maxRecordLength = 99999

// wrapf attaches additional context to one of the sentinel errors above
// without losing errors.Is/As compatibility.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
