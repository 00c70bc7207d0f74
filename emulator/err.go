package emulator

import (
	"errors"

	"github.com/littleminion/lmc/translate"
)

var f = translate.From

var (
	ErrRecordName = errors.New(f("record name missing"))
)

// ErrRecordFields indicates a record without exactly four ;-fields.
type ErrRecordFields int

func (err ErrRecordFields) Error() string {
	return f("record has %d fields, want 4", int(err))
}

func (err ErrRecordFields) Is(target error) (ok bool) {
	_, ok = target.(ErrRecordFields)
	return
}

// ErrRecordValue indicates a record field that is not a 3-digit number.
type ErrRecordValue string

func (err ErrRecordValue) Error() string {
	return f("'%v' is not a 3-digit number", string(err))
}

func (err ErrRecordValue) Is(target error) (ok bool) {
	_, ok = target.(ErrRecordValue)
	return
}

// ErrRecordCycles indicates a missing or non-numeric max_cycles field.
type ErrRecordCycles string

func (err ErrRecordCycles) Error() string {
	return f("'%v' is not a cycle count", string(err))
}

func (err ErrRecordCycles) Is(target error) (ok bool) {
	_, ok = target.(ErrRecordCycles)
	return
}

// ErrRecord indicates the location of a malformed record in a batch file.
type ErrRecord struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrRecord) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRecord) Unwrap() error {
	return err.Err
}
