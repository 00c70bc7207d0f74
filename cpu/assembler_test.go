package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, lines []string) (*Program, error) {
	t.Helper()
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
}

func TestAssemblerEncoding(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"# exercise every mnemonic and alias",
		"start LDA a",
		"      ADD b",
		"      SUB c",
		"      STO d",
		"      STA d",
		"      BR next",
		"next  BRZ start",
		"      BRP start",
		"      IN",
		"      OUT",
		"      COB",
		"a     DAT 5",
		"b     DAT",
		"c     DAT 999",
		"d     DAT 0",
	}

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Word{511, 112, 213, 314, 314, 606, 700, 800, 901, 902, 0, 5, 0, 999, 0}
	for n, want := range expected {
		assert.Equal(want, prog.Mailbox[n], n)
	}
	for n := len(expected); n < MailboxCount; n++ {
		assert.Equal(CODE_HLT, prog.Mailbox[n], n)
	}

	assert.Equal(Address(0), asm.Label["start"])
	assert.Equal(Address(6), asm.Label["next"])
	assert.Equal(Address(11), asm.Label["a"])
}

// Forward and backward references resolve to the same pass-1 addresses.
func TestAssemblerLabelReferences(t *testing.T) {
	assert := assert.New(t)

	prog, err := parse(t, []string{
		"      BR end",
		"loop  BR loop",
		"end   HLT",
	})
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(Word(602), prog.Mailbox[0])
	assert.Equal(Word(601), prog.Mailbox[1])
	assert.Equal(CODE_HLT, prog.Mailbox[2])
}

func TestAssemblerLiteralOperands(t *testing.T) {
	assert := assert.New(t)

	prog, err := parse(t, []string{
		"LDA 5",
		"BR 0",
		"STO 99",
	})
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(Word(505), prog.Mailbox[0])
	assert.Equal(Word(600), prog.Mailbox[1])
	assert.Equal(Word(399), prog.Mailbox[2])
}

func TestAssemblerCommentsAndBlanks(t *testing.T) {
	assert := assert.New(t)

	prog, err := parse(t, []string{
		"# header comment",
		"",
		"      LDA v  # trailing comment",
		"v     DAT 3",
		"   ",
	})
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(Word(501), prog.Mailbox[0])
	assert.Equal(Word(3), prog.Mailbox[1])
	assert.Equal(CODE_HLT, prog.Mailbox[2])
}

func TestAssemblerEquatesAndExpressions(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".equ TEN 10",
		".equ DEST buf",
		"start LDA $(TEN + 2)",
		"      ADD TEN",
		"      STO DEST",
		"      BR $(start + 1)",
		"buf   DAT $(TEN * TEN)",
	}

	prog, err := parse(t, program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Word{512, 110, 304, 601, 100}
	for n, want := range expected {
		assert.Equal(want, prog.Mailbox[n], n)
	}
}

// Re-assembling identical source must produce identical images.
func TestAssemblerDeterminism(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"start IN",
		"      STO v",
		"      LDA v",
		"      ADD $(start + 1)",
		"      OUT",
		"      HLT",
		"v     DAT",
	}

	first, err := parse(t, program)
	assert.NoError(err)
	second, err := parse(t, program)
	assert.NoError(err)

	assert.Equal(first, second)
}

func TestAssemblerEmpty(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"",
		"# nothing here\n\n",
		"   \n\t\n",
	}

	for _, text := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(text))
		assert.True(errors.Is(err, ErrInputEmpty), text)
	}
}

func TestAssemblerTooLarge(t *testing.T) {
	assert := assert.New(t)

	lines := make([]string, MailboxCount+1)
	for n := range lines {
		lines[n] = "HLT"
	}

	_, err := parse(t, lines)
	assert.True(errors.Is(err, ErrProgramTooLarge(0)))

	var se *ErrSyntax
	if assert.True(errors.As(err, &se)) {
		assert.Equal(MailboxCount+1, se.LineNo)
	}
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		prog string
		line int
	}){
		{"x HLT\nx HLT\n", 2},
		{"BR nowhere\n", 1},
		{"FOO\n", 1},
		{"lbl FOO 3\n", 1},
		{"HLT 5\n", 1},
		{"LDA 1 2\n", 1},
		{"LDA\n", 1},
		{"DAT 1000\n", 1},
		{"LDA 100\n", 1},
		{"IN\nLDA abc\n", 2},
		{"5 HLT\n", 1},
		{".equ\n", 1},
		{".equ A\n", 1},
		{".equ A 1\n.equ A 2\n", 2},
		{".equ A $(1+1)\n", 1},
		{"LDA $(foo bar)\n", 1},
		{"LDA $(\"aaa\")\n", 1},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(entry.prog))

		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
	}
}

// Assemble the add-two-inputs program and run it end to end.
func TestAssembleAndRun(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"      IN",
		"      STO a",
		"      IN",
		"      STO b",
		"      LDA a",
		"      ADD b",
		"      OUT",
		"      HLT",
		"a     DAT",
		"b     DAT",
	}

	prog, err := parse(t, program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	c := NewCpu()
	c.Load(prog)
	c.PushInput(4, 7)

	_, err = c.Run(50)
	assert.NoError(err)
	assert.True(c.Halted)
	assert.Equal([]Word{11}, c.OutTray)
}
