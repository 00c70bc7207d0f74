package cpu

import (
	"errors"

	"github.com/littleminion/lmc/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrInTrayEmpty = errors.New(f("input tray empty"))

	// Assembler errors
	ErrInputEmpty      = errors.New(f("empty input"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrLabelNumeric    = errors.New(f("label cannot be a number"))
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
)

// ErrValueRange indicates a value outside the 000-999 mailbox range.
type ErrValueRange int

func (err ErrValueRange) Error() string {
	return f("value %d out of range 000-999", int(err))
}

func (err ErrValueRange) Is(target error) (ok bool) {
	_, ok = target.(ErrValueRange)
	return
}

// ErrAddressRange indicates an address outside the 00-99 mailbox range.
type ErrAddressRange int

func (err ErrAddressRange) Error() string {
	return f("address %d out of range 00-99", int(err))
}

func (err ErrAddressRange) Is(target error) (ok bool) {
	_, ok = target.(ErrAddressRange)
	return
}

// ErrOpcodeInvalid indicates an instruction word that does not decode.
type ErrOpcodeInvalid Word

func (err ErrOpcodeInvalid) Error() string {
	return f("invalid opcode %v", Word(err))
}

func (err ErrOpcodeInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrOpcodeInvalid)
	return
}

// ErrProgramTooLarge indicates a program of more than 100 cells.
type ErrProgramTooLarge int

func (err ErrProgramTooLarge) Error() string {
	return f("program too large: got %d cells", int(err))
}

func (err ErrProgramTooLarge) Is(target error) (ok bool) {
	_, ok = target.(ErrProgramTooLarge)
	return
}

// ErrMaxCycles indicates a run that exhausted its cycle budget without
// reaching HLT.
type ErrMaxCycles int

func (err ErrMaxCycles) Error() string {
	return f("max cycles hit: %d", int(err))
}

func (err ErrMaxCycles) Is(target error) (ok bool) {
	_, ok = target.(ErrMaxCycles)
	return
}

// ErrMnemonicUnknown indicates a token where a mnemonic was expected.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

// ErrLabelMissing indicates an operand label with no definition.
type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

// ErrInputParse indicates input text that is not a 3-digit number.
type ErrInputParse string

func (err ErrInputParse) Error() string {
	return f("'%v' is not a 3-digit number", string(err))
}

func (err ErrInputParse) Is(target error) (ok bool) {
	_, ok = target.(ErrInputParse)
	return
}

// ErrParseExpression indicates a $() expression that does not evaluate.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax indicates the location of an assembly or listing error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the location of an execution error.
type ErrRuntime struct {
	Cycle   int
	Mailbox Address
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("cycle %d mailbox %v %v", err.Cycle, err.Mailbox, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
