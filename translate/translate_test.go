package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage("", "en-US")
	assert.NotNil(printer)
	assert.Equal("label loop missing", From("label %v missing", "loop"))
	assert.Equal("'NOP' is an invalid instruction", From("'%v' is an invalid instruction", "NOP"))

	// No tags; falls back to the system locale.
	SetLanguage()
	assert.Equal("cpu halted", From("cpu halted"))

	SetLanguage(DEFAULT_LANG)
	assert.Equal("cpu halted", From("cpu halted"))
}
