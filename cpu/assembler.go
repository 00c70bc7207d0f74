package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// srcLine is one retained source line with its original position.
type srcLine struct {
	no   int    // 1-based line number in the source
	text string // comment-stripped, trimmed text
}

// exprRe matches a compile-time $() expression.
var exprRe = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a two-pass assembler for the mnemonic source language.
// Pass 1 collects labels and equates; pass 2 encodes against the
// completed tables, so forward and backward references behave
// identically. Any error aborts the whole assembly; no partial image is
// ever produced.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Label  map[string]Address // Map of labels to mailbox addresses.
	Equate map[string]string  // Map of equates.
}

// Parse assembles an input stream into a Program image.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.Label = make(map[string]Address, 16)
	asm.Equate = make(map[string]string)

	lines, err := scan(input)
	if err != nil {
		return
	}
	if len(lines) == 0 {
		err = ErrInputEmpty
		return
	}

	err = asm.collect(lines)
	if err != nil {
		return
	}

	prog, err = asm.encode(lines)
	return
}

// scan strips comments and drops blank lines, keeping source positions.
func scan(input io.Reader) (lines []srcLine, err error) {
	scanner := bufio.NewScanner(input)

	lineno := 0
	for scanner.Scan() {
		lineno++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}
		lines = append(lines, srcLine{no: lineno, text: text})
	}
	err = scanner.Err()
	return
}

// collect is pass 1: walk the lines once, recording labels and equates.
// Every line that is not a directive occupies exactly one mailbox.
func (asm *Assembler) collect(lines []srcLine) (err error) {
	addr := 0
	for _, src := range lines {
		err = asm.collectLine(src.text, addr)
		if err != nil {
			err = &ErrSyntax{LineNo: src.no, Line: src.text, Err: err}
			return
		}
		if !isEquate(src.text) {
			addr++
		}
	}
	return
}

// isEquate reports whether a line is a `.equ` directive, which never
// consumes an address slot.
func isEquate(text string) bool {
	return text == ".equ" || strings.HasPrefix(text, ".equ ") || strings.HasPrefix(text, ".equ\t")
}

// collectLine handles a single line of pass 1.
func (asm *Assembler) collectLine(text string, addr int) (err error) {
	if isEquate(text) {
		return asm.defineEquate(strings.Fields(text))
	}

	if addr >= MailboxCount {
		err = ErrProgramTooLarge(addr + 1)
		return
	}

	// Collapse $() expressions so they tokenize as a single operand.
	// They are evaluated in pass 2, once the label table is complete.
	words := strings.Fields(exprRe.ReplaceAllString(text, "0"))

	if !isMnemonic(words[0]) {
		label := words[0]
		words = words[1:]
		if len(words) == 0 || !isMnemonic(words[0]) {
			which := label
			if len(words) != 0 {
				which = words[0]
			}
			err = ErrMnemonicUnknown(which)
			return
		}
		if _, perr := strconv.Atoi(label); perr == nil {
			err = ErrLabelNumeric
			return
		}
		if _, dup := asm.Label[label]; dup {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = Address(addr)
		if asm.Verbose {
			log.Printf("asm: label %v at mailbox %02d", label, addr)
		}
	}

	if len(words) > 2 {
		err = ErrOperandExtra
	}
	return
}

// defineEquate records a `.equ NAME VALUE` directive. Equate values are
// plain literals or label names; $() belongs in operand position.
func (asm *Assembler) defineEquate(words []string) (err error) {
	if len(words) != 3 || strings.Contains(words[2], "$(") {
		err = ErrEquateSyntax
		return
	}
	if _, dup := asm.Equate[words[1]]; dup {
		err = ErrEquateDuplicate
		return
	}
	asm.Equate[words[1]] = words[2]
	return
}

// encode is pass 2: walk the lines again and encode each one against the
// completed label and equate tables.
func (asm *Assembler) encode(lines []srcLine) (prog *Program, err error) {
	prog = &Program{}

	addr := 0
	for _, src := range lines {
		var used bool
		used, err = asm.encodeLine(prog, src.text, addr)
		if err != nil {
			err = &ErrSyntax{LineNo: src.no, Line: src.text, Err: err}
			prog = nil
			return
		}
		if used {
			if asm.Verbose {
				log.Printf("asm: %02d:\t%v", addr, prog.Mailbox[addr])
			}
			addr++
		}
	}
	return
}

// encodeLine encodes a single line into its mailbox, reporting whether
// the line consumed an address slot.
func (asm *Assembler) encodeLine(prog *Program, text string, addr int) (used bool, err error) {
	if isEquate(text) {
		return
	}
	used = true

	text, err = asm.expand(text)
	if err != nil {
		return
	}
	words := strings.Fields(text)
	if !isMnemonic(words[0]) {
		words = words[1:]
	}

	m := mnemonicMap[words[0]]
	switch m.class {
	case classFixed:
		if len(words) > 1 {
			err = ErrOperandExtra
			return
		}
		prog.Mailbox[addr] = m.code
	case classAddressed:
		if len(words) < 2 {
			err = ErrOperandMissing
			return
		}
		var operand Address
		operand, err = asm.resolve(words[1])
		if err != nil {
			return
		}
		prog.Mailbox[addr] = m.code + Word(operand)
	case classData:
		value := 0
		if len(words) == 2 {
			value, err = asm.literal(words[1])
			if err != nil {
				return
			}
		}
		prog.Mailbox[addr], err = NewWord(value)
	}
	return
}

// resolve turns an operand token into a mailbox address: an equate is
// substituted first, then the label table is consulted, then the token
// is taken as a decimal literal.
func (asm *Assembler) resolve(word string) (addr Address, err error) {
	if equate, ok := asm.Equate[word]; ok {
		word = equate
	}
	if a, ok := asm.Label[word]; ok {
		addr = a
		return
	}
	v, perr := strconv.Atoi(word)
	if perr != nil {
		err = ErrLabelMissing(word)
		return
	}
	return NewAddress(v)
}

// literal parses a DAT operand after equate substitution.
func (asm *Assembler) literal(word string) (value int, err error) {
	if equate, ok := asm.Equate[word]; ok {
		word = equate
	}
	value, perr := strconv.Atoi(word)
	if perr != nil {
		err = ErrInputParse(word)
	}
	return
}

// expand does compile-time $() evaluations over a line of source.
func (asm *Assembler) expand(text string) (out string, err error) {
	out = exprRe.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	return
}

// parenEval evaluates one $() expression, with all integer equates and
// every label predeclared as ints.
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v, verr := strconv.Atoi(str)
		if verr != nil {
			// Non-integer equates may be label names. Skip them here.
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(int(addr))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}
