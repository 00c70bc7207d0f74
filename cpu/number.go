package cpu

import (
	"fmt"
)

const (
	// MailboxCount is the number of addressable mailboxes.
	MailboxCount = 100
	// WordLimit is one past the largest value a mailbox can hold.
	WordLimit = 1000
)

// Word is a 3-digit decimal value, 000-999. Mailboxes, the calculator,
// and both I/O trays hold Words.
type Word uint16

// NewWord validates v as a 3-digit decimal value.
func NewWord(v int) (w Word, err error) {
	if v < 0 || v >= WordLimit {
		err = ErrValueRange(v)
		return
	}
	w = Word(v)
	return
}

// String formats the word as it appears in a machine code listing.
func (w Word) String() string {
	return fmt.Sprintf("%03d", uint16(w))
}

// Address is a 2-digit mailbox index, 00-99.
type Address uint8

// NewAddress validates v as a mailbox address.
func NewAddress(v int) (addr Address, err error) {
	if v < 0 || v >= MailboxCount {
		err = ErrAddressRange(v)
		return
	}
	addr = Address(v)
	return
}

// String formats the address as a 2-digit mailbox index.
func (a Address) String() string {
	return fmt.Sprintf("%02d", uint8(a))
}

// Next advances the address by one, wrapping past the last mailbox.
// Only the program counter wraps; operand addresses are range checked.
func (a Address) Next() Address {
	return Address((int(a) + 1) % MailboxCount)
}
