package emulator

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/littleminion/lmc/cpu"
)

// Record is one batch test: canned inputs, an optional expected result,
// and a cycle budget.
type Record struct {
	Name      string
	Inputs    []cpu.Word
	Expected  *cpu.Word // nil when the record carries no result check
	MaxCycles int
}

// ParseRecord parses the compact `name;inputs;expected;max_cycles`
// record format. The inputs and expected fields may be empty, but all
// four ;-delimited fields must be present.
func ParseRecord(text string) (rec Record, err error) {
	fields := strings.Split(text, ";")
	if len(fields) != 4 {
		err = ErrRecordFields(len(fields))
		return
	}

	rec.Name = strings.TrimSpace(fields[0])
	if len(rec.Name) == 0 {
		err = ErrRecordName
		return
	}

	inputs := strings.TrimSpace(fields[1])
	if len(inputs) > 0 {
		for _, part := range strings.Split(inputs, ",") {
			var w cpu.Word
			w, err = parseValue(strings.TrimSpace(part))
			if err != nil {
				return
			}
			rec.Inputs = append(rec.Inputs, w)
		}
	}

	expected := strings.TrimSpace(fields[2])
	if len(expected) > 0 {
		var w cpu.Word
		w, err = parseValue(expected)
		if err != nil {
			return
		}
		rec.Expected = &w
	}

	budget := strings.TrimSpace(fields[3])
	cycles, perr := strconv.Atoi(budget)
	if len(budget) == 0 || perr != nil || cycles < 0 {
		err = ErrRecordCycles(budget)
		return
	}
	rec.MaxCycles = cycles

	return
}

// parseValue parses one 3-digit tray value.
func parseValue(part string) (w cpu.Word, err error) {
	v, perr := strconv.Atoi(part)
	if perr != nil {
		err = ErrRecordValue(part)
		return
	}
	w, err = cpu.NewWord(v)
	return
}

// ParseRecords reads a batch file, one record per line. Blank lines and
// lines starting with '#' are skipped.
func ParseRecords(input io.Reader) (recs []Record, err error) {
	scanner := bufio.NewScanner(input)

	lineno := 0
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		var rec Record
		rec, err = ParseRecord(text)
		if err != nil {
			err = &ErrRecord{LineNo: lineno, Line: text, Err: err}
			recs = nil
			return
		}
		recs = append(recs, rec)
	}
	err = scanner.Err()
	return
}
