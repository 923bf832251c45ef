package asm

import (
	"strconv"
	"strings"
)

type scanState int

const (
	scanOutside  = scanState(iota) // Between tokens.
	scanInside                     // Inside a quoted string.
	scanSawQuote                   // Saw a quote inside a string.
)

// Tokenize splits a source line into classified tokens.
//
// Whitespace separates tokens, a comma is a token of its own, and a ';'
// outside of a string starts a comment. Strings are quoted with ', and a
// doubled quote stands for one quote. A string that is not terminated by
// the end of the line is kept.
func Tokenize(line string) (tokens []Token) {
	var lexeme strings.Builder
	var str []byte
	state := scanOutside
	isConst := false

	flush := func() {
		if lexeme.Len() == 0 {
			return
		}
		tokens = append(tokens, classify(lexeme.String()))
		lexeme.Reset()
	}

	flushString := func() {
		tokens = append(tokens, stringToken(str, isConst))
		str = nil
		isConst = false
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch state {
		case scanInside:
			if c == '\'' {
				state = scanSawQuote
			} else {
				str = append(str, c)
			}
			continue
		case scanSawQuote:
			if c == '\'' {
				str = append(str, c)
				state = scanInside
				continue
			}
			flushString()
			state = scanOutside
		}

		switch c {
		case ';':
			flush()
			return
		case ',':
			flush()
			tokens = append(tokens, Token{Kind: TOKEN_COMMA, Text: ","})
		case '\'':
			if lexeme.String() == "=" {
				isConst = true
				lexeme.Reset()
			} else {
				flush()
			}
			str = []byte{}
			state = scanInside
		case ' ', '\t', '\r', '\n', '\v', '\f':
			flush()
		default:
			lexeme.WriteByte(c)
		}
	}

	if state == scanOutside {
		flush()
	} else {
		flushString()
	}

	return
}

// stringToken makes a string token, or a character constant if the string
// was introduced by '='.
func stringToken(str []byte, isConst bool) (tok Token) {
	if !isConst {
		tok = Token{Kind: TOKEN_STRING, Text: string(str)}
		return
	}

	text := "='" + strings.ReplaceAll(string(str), "'", "''") + "'"
	if len(str) != 1 {
		tok = Token{Kind: TOKEN_OTHER, Text: text}
		return
	}

	tok = Token{Kind: TOKEN_CONST, Text: text, Value: int(str[0])}
	return
}

// classify a lexeme that is not a string.
func classify(text string) (tok Token) {
	tok, ok := keywords[text]
	if ok {
		return
	}

	tok = Token{Kind: TOKEN_OTHER, Text: text}

	if literal, found := strings.CutPrefix(text, "="); found {
		if value, ok := parseHex(literal); ok {
			tok.Kind = TOKEN_CONST
			tok.Value = value
		} else if value, ok := parseDecimal(literal); ok {
			tok.Kind = TOKEN_CONST
			tok.Value = value
		}
		return
	}

	if value, ok := parseHex(text); ok {
		tok.Kind = TOKEN_HEX
		tok.Value = value
	} else if value, ok := parseDecimal(text); ok {
		tok.Kind = TOKEN_DECIMAL
		tok.Value = value
	} else if isLabel(text) {
		tok.Kind = TOKEN_LABEL
	}

	return
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// parseHex parses '#' followed by one to four uppercase hex digits.
func parseHex(text string) (value int, ok bool) {
	digits, found := strings.CutPrefix(text, "#")
	if !found || len(digits) == 0 || len(digits) > 4 {
		return
	}

	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if !isDigit(c) && (c < 'A' || c > 'F') {
			return
		}
	}

	v, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return
	}

	value = int(v)
	ok = true
	return
}

// parseDecimal parses an optionally negative decimal in -32768..65535.
func parseDecimal(text string) (value int, ok bool) {
	digits := strings.TrimPrefix(text, "-")
	if len(digits) == 0 {
		return
	}

	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return
		}
	}

	value, err := strconv.Atoi(text)
	if err != nil || value < -32768 || value > 65535 {
		value = 0
		return
	}

	ok = true
	return
}

// isLabel reports whether text is a letter followed by letters or digits.
func isLabel(text string) bool {
	if len(text) == 0 || !isLetter(text[0]) {
		return false
	}

	for i := 1; i < len(text); i++ {
		if !isLetter(text[i]) && !isDigit(text[i]) {
			return false
		}
	}

	return true
}
