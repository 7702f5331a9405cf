package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Type
	}{
		{"empty string", "", TypeEmpty},
		{"whitespace only", "   ", TypeEmpty},
		{"tab and spaces", " \t ", TypeEmpty},

		{"true lowercase", "true", TypeBoolean},
		{"true uppercase", "TRUE", TypeBoolean},
		{"false mixed case", "False", TypeBoolean},
		{"yes", "yes", TypeBoolean},
		{"no", "no", TypeBoolean},
		{"y", "y", TypeBoolean},
		{"n", "n", TypeBoolean},
		{"boolean with whitespace", " true ", TypeBoolean},
		{"truthy word is text", "truey", TypeText},

		{"zero", "0", TypeInteger},
		{"positive integer", "42", TypeInteger},
		{"negative integer", "-42", TypeInteger},
		{"max int64", "9223372036854775807", TypeInteger},
		{"min int64", "-9223372036854775808", TypeInteger},
		{"int64 overflow", "99999999999999999999", TypeText},
		{"int64 underflow", "-99999999999999999999", TypeText},
		{"plus sign is not integer", "+42", TypeFloat},

		{"simple float", "3.14", TypeFloat},
		{"negative float", "-0.5", TypeFloat},
		{"leading dot", ".5", TypeFloat},
		{"exponent", "1e10", TypeFloat},
		{"signed exponent", "6.02e+23", TypeFloat},
		{"float overflow", "1e999", TypeText},
		{"inf token", "inf", TypeText},
		{"nan token", "NaN", TypeText},
		{"trailing dot", "1.", TypeText},

		{"iso date", "2024-01-15", TypeDate},
		{"invalid calendar date", "2024-02-30", TypeText},
		{"leap day", "2024-02-29", TypeDate},
		{"non-leap feb 29", "2023-02-29", TypeText},
		{"slash date", "01/15/2024", TypeDate},
		{"day-first slash date", "15/01/2024", TypeDate},
		{"dashed date", "15-01-2024", TypeDate},
		{"unpadded date is text", "2024-2-3", TypeText},
		{"month thirteen", "2024-13-01", TypeText},

		{"plain word", "hello", TypeText},
		{"mixed alphanumeric", "abc123", TypeText},
		{"multibyte text", "日本語", TypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw), "Classify(%q)", tt.raw)
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	inputs := []string{"", "  ", "true", "-42", "3.14", "2024-01-15", "hello", "1e999"}
	for _, in := range inputs {
		first := Classify(in)
		assert.Equal(t, first, Classify(in), "Classify(%q) changed between calls", in)
	}
}

func TestClassifyDayFirst(t *testing.T) {
	// 25/12/2024 is only valid day-first; both precedences must accept it
	// because the format list is tried in order until one validates.
	assert.Equal(t, TypeDate, Classifier{DayFirst: false}.Classify("25/12/2024"))
	assert.Equal(t, TypeDate, Classifier{DayFirst: true}.Classify("25/12/2024"))

	// Ambiguous dates are dates under either precedence.
	assert.Equal(t, TypeDate, Classifier{DayFirst: false}.Classify("03/04/2024"))
	assert.Equal(t, TypeDate, Classifier{DayFirst: true}.Classify("03/04/2024"))

	// Invalid under both interpretations stays text.
	assert.Equal(t, TypeText, Classifier{DayFirst: true}.Classify("33/13/2024"))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "empty", TypeEmpty.String())
	assert.Equal(t, "boolean", TypeBoolean.String())
	assert.Equal(t, "integer", TypeInteger.String())
	assert.Equal(t, "float", TypeFloat.String())
	assert.Equal(t, "date", TypeDate.String())
	assert.Equal(t, "text", TypeText.String())
	assert.Equal(t, "unknown", Type(99).String())
}
