package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 'ret A'", From("line %d '%v'", 3, "ret A"))
	assert.Equal("stack full", From("stack full"))
}

func TestNewPrinter(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		locales []string
	}){
		{"none", nil},
		{"english", []string{"en-GB"}},
		{"unknown", []string{"xx-YY", FALLBACK_LOCALE}},
	}

	for _, entry := range table {
		printer := newPrinter(entry.locales)
		assert.NotNil(printer, entry.name)
		assert.Equal("bad opcode 0x0000000b", printer.Sprintf("bad opcode 0x%08x", 11), entry.name)
	}
}
