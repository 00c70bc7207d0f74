package cpu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Program is a fully assembled 100-cell memory image. Cells not assigned
// by the source hold the halt encoding 000.
type Program struct {
	Mailbox [MailboxCount]Word
}

// String renders the image as machine code text: exactly 100 lines of
// 3-digit decimal numbers, in mailbox order.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, w := range prog.Mailbox {
		fmt.Fprintf(&sb, "%v\n", w)
	}
	return sb.String()
}

// WriteTo serializes the image as machine code text.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	count, err := io.WriteString(w, prog.String())
	n = int64(count)
	return
}

// ParseProgram reads machine code text: 3-digit decimal values separated
// by newlines, commas, or both. Missing trailing cells default to 000.
func ParseProgram(input io.Reader) (prog *Program, err error) {
	prog = &Program{}
	scanner := bufio.NewScanner(input)

	cell := 0
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 {
			continue
		}
		for _, part := range strings.Split(text, ",") {
			part = strings.TrimSpace(part)
			if len(part) == 0 {
				continue
			}
			err = prog.setCell(cell, part)
			if err != nil {
				err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
				prog = nil
				return
			}
			cell++
		}
	}
	if serr := scanner.Err(); serr != nil {
		err = serr
		prog = nil
	}
	return
}

// setCell parses one machine code value into the given cell.
func (prog *Program) setCell(cell int, part string) (err error) {
	if cell >= MailboxCount {
		err = ErrProgramTooLarge(cell + 1)
		return
	}
	v, perr := strconv.Atoi(part)
	if perr != nil {
		err = ErrInputParse(part)
		return
	}
	prog.Mailbox[cell], err = NewWord(v)
	return
}
