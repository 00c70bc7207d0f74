package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord(t *testing.T) {
	assert := assert.New(t)

	w, err := NewWord(999)
	assert.NoError(err)
	assert.Equal(Word(999), w)
	assert.Equal("999", w.String())

	w, err = NewWord(7)
	assert.NoError(err)
	assert.Equal("007", w.String())

	_, err = NewWord(-1)
	assert.True(errors.Is(err, ErrValueRange(0)))

	_, err = NewWord(1000)
	assert.True(errors.Is(err, ErrValueRange(0)))
}

func TestAddress(t *testing.T) {
	assert := assert.New(t)

	a, err := NewAddress(99)
	assert.NoError(err)
	assert.Equal(Address(99), a)
	assert.Equal("99", a.String())

	a, err = NewAddress(7)
	assert.NoError(err)
	assert.Equal("07", a.String())

	_, err = NewAddress(-1)
	assert.True(errors.Is(err, ErrAddressRange(0)))

	_, err = NewAddress(100)
	assert.True(errors.Is(err, ErrAddressRange(0)))

	assert.Equal(Address(0), Address(99).Next())
	assert.Equal(Address(1), Address(0).Next())
}
