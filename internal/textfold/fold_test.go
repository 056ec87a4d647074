package textfold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "Hello World", "hello world"},
		{"polish diacritics", "Żółć proszę", "zolc prosze"},
		{"stroked l", "założyć", "zalozyc"},
		{"mixed", "Ile KOSZTUJE plan Enterprise?", "ile kosztuje plan enterprise?"},
		{"empty", "", ""},
		{"all polish letters", "ąćęłńóśźż ĄĆĘŁŃÓŚŹŻ", "acelnoszz acelnoszz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.input))
		})
	}
}

func TestHasLetterOrDigit(t *testing.T) {
	assert.True(t, HasLetterOrDigit("a"))
	assert.True(t, HasLetterOrDigit("... 7 ..."))
	assert.True(t, HasLetterOrDigit("żółć"))
	assert.False(t, HasLetterOrDigit(""))
	assert.False(t, HasLetterOrDigit("?!... --"))
	assert.False(t, HasLetterOrDigit("🙂🙂"))
}

func TestHasUpperRun(t *testing.T) {
	assert.True(t, HasUpperRun("CO TO ZA OSZUSTWO", 6))
	assert.True(t, HasUpperRun("to jest SKANDAL", 6))
	assert.False(t, HasUpperRun("Zwykle zdanie", 6))
	// run broken by a space
	assert.False(t, HasUpperRun("ABC DEF", 6))
	assert.False(t, HasUpperRun("", 6))
}
