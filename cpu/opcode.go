package cpu

// Opcode is the leading digit of an instruction word.
type Opcode int

const (
	OP_HLT = Opcode(0) // halt (COB)
	OP_ADD = Opcode(1) // add mailbox to calculator
	OP_SUB = Opcode(2) // subtract mailbox from calculator
	OP_STO = Opcode(3) // store calculator to mailbox (STA)
	OP_LDA = Opcode(5) // load mailbox into calculator
	OP_BR  = Opcode(6) // branch always
	OP_BRZ = Opcode(7) // branch if calculator is zero
	OP_BRP = Opcode(8) // branch if NEG flag is clear
	OP_IO  = Opcode(9) // input/output, selected by operand
)

// I/O sub-operations, selected by the operand of OP_IO.
const (
	IO_IN  = Address(1) // pop the input tray into the calculator
	IO_OUT = Address(2) // push the calculator onto the output tray
)

// Fixed encodings for the zero-operand instructions.
const (
	CODE_HLT = Word(0)
	CODE_IN  = Word(901)
	CODE_OUT = Word(902)
)

// mnemonicClass separates the three encoding shapes of the source language.
type mnemonicClass int

const (
	classFixed     = mnemonicClass(0) // HLT, IN, OUT: fixed 3-digit code
	classAddressed = mnemonicClass(1) // LDA, STO, ...: opcode*100 + address
	classData      = mnemonicClass(2) // DAT: literal mailbox value
)

// mnemonic describes one entry of the source language.
type mnemonic struct {
	class mnemonicClass
	code  Word // fixed code (classFixed) or opcode*100 (classAddressed)
}

// mnemonicMap maps source mnemonics, including the COB and STA aliases.
var mnemonicMap = map[string]mnemonic{
	"HLT": {classFixed, CODE_HLT},
	"COB": {classFixed, CODE_HLT},
	"IN":  {classFixed, CODE_IN},
	"OUT": {classFixed, CODE_OUT},
	"ADD": {classAddressed, Word(OP_ADD) * 100},
	"SUB": {classAddressed, Word(OP_SUB) * 100},
	"STO": {classAddressed, Word(OP_STO) * 100},
	"STA": {classAddressed, Word(OP_STO) * 100},
	"LDA": {classAddressed, Word(OP_LDA) * 100},
	"BR":  {classAddressed, Word(OP_BR) * 100},
	"BRZ": {classAddressed, Word(OP_BRZ) * 100},
	"BRP": {classAddressed, Word(OP_BRP) * 100},
	"DAT": {classData, 0},
}

// isMnemonic reports whether word is a source mnemonic. A leading token
// that is not a mnemonic is a label.
func isMnemonic(word string) bool {
	_, ok := mnemonicMap[word]
	return ok
}

// Decode splits an instruction word into its opcode and operand.
// Opcode 4 is reserved and rejected here; I/O sub-operation validity is
// checked at execution.
func Decode(w Word) (op Opcode, operand Address, err error) {
	op = Opcode(w / 100)
	operand = Address(w % 100)
	switch op {
	case OP_HLT, OP_ADD, OP_SUB, OP_STO, OP_LDA, OP_BR, OP_BRZ, OP_BRP, OP_IO:
	default:
		err = ErrOpcodeInvalid(w)
	}
	return
}
