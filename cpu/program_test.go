package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramText(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	prog.Mailbox[0] = 591
	prog.Mailbox[1] = 902
	prog.Mailbox[91] = 42

	text := prog.String()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(MailboxCount, len(lines))
	assert.Equal("591", lines[0])
	assert.Equal("902", lines[1])
	assert.Equal("000", lines[2])
	assert.Equal("042", lines[91])

	// The text format round-trips.
	back, err := ParseProgram(strings.NewReader(text))
	assert.NoError(err)
	assert.Equal(prog, back)
}

func TestParseProgramCommas(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgram(strings.NewReader("591,192\n902, 000\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(Word(591), prog.Mailbox[0])
	assert.Equal(Word(192), prog.Mailbox[1])
	assert.Equal(Word(902), prog.Mailbox[2])
	assert.Equal(Word(0), prog.Mailbox[3])
	assert.Equal(CODE_HLT, prog.Mailbox[4])
}

func TestParseProgramErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		line int
		err  error
	}){
		{"not a number", "123\nabc\n", 2, ErrInputParse("")},
		{"out of range", "1000\n", 1, ErrValueRange(0)},
	}

	for _, entry := range table {
		_, err := ParseProgram(strings.NewReader(entry.text))
		assert.True(errors.Is(err, entry.err), entry.name)

		var se *ErrSyntax
		if assert.True(errors.As(err, &se), entry.name) {
			assert.Equal(entry.line, se.LineNo, entry.name)
		}
	}

	// 101 values do not fit.
	long := strings.Repeat("000\n", MailboxCount) + "001\n"
	_, err := ParseProgram(strings.NewReader(long))
	assert.True(errors.Is(err, ErrProgramTooLarge(0)))
}
