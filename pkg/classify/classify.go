// Package classify assigns a display type to raw cell values.
//
// Classification is total and deterministic: every string maps to exactly
// one Type, unparseable or ambiguous input degrades to TypeText, and the
// result depends only on the value itself, never on its position in the
// file.
package classify

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Type is the classified category of a cell's content.
type Type int

// Cell types, in classification precedence order.
const (
	TypeEmpty Type = iota
	TypeBoolean
	TypeInteger
	TypeFloat
	TypeDate
	TypeText
)

// String returns the string representation of the type.
func (t Type) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeDate:
		return "date"
	case TypeText:
		return "text"
	default:
		return "unknown"
	}
}

// booleanTokens is the fixed set of values recognized as TypeBoolean,
// matched case-insensitively.
var booleanTokens = map[string]struct{}{
	"true": {}, "false": {},
	"yes": {}, "no": {},
	"y": {}, "n": {},
}

var (
	integerPattern = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern   = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]+)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// dateFormat pairs a shape pattern with the layout used for calendar
// validation. The pattern keeps time.Parse strict: Go's parser accepts
// unpadded numbers ("2024-2-3"), which the shape check rejects.
type dateFormat struct {
	pattern *regexp.Regexp
	layout  string
}

var (
	isoDate      = dateFormat{regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`), "2006-01-02"}
	monthDayDate = dateFormat{regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`), "01/02/2006"}
	dayMonthDate = dateFormat{regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`), "02/01/2006"}
	dashedDate   = dateFormat{regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{4}$`), "02-01-2006"}
)

// Classifier classifies cell values. The zero value uses month-first
// precedence for slash dates (MM/DD/YYYY before DD/MM/YYYY).
type Classifier struct {
	// DayFirst tries DD/MM/YYYY before MM/DD/YYYY for structurally
	// ambiguous slash dates such as 03/04/2024.
	DayFirst bool
}

// Classify returns the type of a raw cell value. The rules form an ordered
// priority list; the first match wins. Order matters: "1" is both a valid
// integer and a date fragment, and "2024" would parse as an integer before
// any date check sees it.
func (c Classifier) Classify(raw string) Type {
	s := strings.TrimSpace(raw)

	// 1. Empty: nothing but whitespace.
	if s == "" {
		return TypeEmpty
	}

	// 2. Boolean: exact token match, case-insensitive.
	if _, ok := booleanTokens[strings.ToLower(s)]; ok {
		return TypeBoolean
	}

	// 3. Integer: decimal digits with optional leading minus, within
	// int64 range. Overflow falls through to Text, never clamps.
	if integerPattern.MatchString(s) {
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			return TypeInteger
		}
		return TypeText
	}

	// 4. Float: decimal grammar that parses to a finite value. The
	// grammar already excludes "inf" and "nan" tokens; the finiteness
	// check catches overflow like 1e999.
	if floatPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return TypeFloat
		}
		return TypeText
	}

	// 5. Date: fixed ordered format list, calendar-validated.
	for _, f := range c.dateFormats() {
		if f.pattern.MatchString(s) {
			if _, err := time.Parse(f.layout, s); err == nil {
				return TypeDate
			}
		}
	}

	// 6. Text: the default for everything else.
	return TypeText
}

// dateFormats returns the accepted date formats in precedence order.
func (c Classifier) dateFormats() [4]dateFormat {
	if c.DayFirst {
		return [4]dateFormat{isoDate, dayMonthDate, monthDayDate, dashedDate}
	}
	return [4]dateFormat{isoDate, monthDayDate, dayMonthDate, dashedDate}
}

// Classify classifies a raw cell value with default (month-first) settings.
func Classify(raw string) Type {
	return Classifier{}.Classify(raw)
}
