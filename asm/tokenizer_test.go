package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	type tk struct {
		kind  TokenKind
		text  string
		value int
	}

	table := [](struct {
		line     string
		expected []tk
	}){
		{"", nil},
		{"   ; just a comment", nil},
		{"MAIN START", []tk{{TOKEN_LABEL, "MAIN", 0}, {TOKEN_PSEUDO, "START", 0}}},
		{"  LD GR1,GR2", []tk{
			{TOKEN_OPERATOR, "LD", 0}, {TOKEN_REGISTER, "GR1", 0},
			{TOKEN_COMMA, ",", 0}, {TOKEN_REGISTER, "GR2", 0},
		}},
		{"\tADDA\tGR1,=5 ; add", []tk{
			{TOKEN_OPERATOR, "ADDA", 0}, {TOKEN_REGISTER, "GR1", 0},
			{TOKEN_COMMA, ",", 0}, {TOKEN_CONST, "=5", 5},
		}},
		{"  DC -1,#00FF,65535", []tk{
			{TOKEN_PSEUDO, "DC", 0}, {TOKEN_DECIMAL, "-1", -1},
			{TOKEN_COMMA, ",", 0}, {TOKEN_HEX, "#00FF", 255},
			{TOKEN_COMMA, ",", 0}, {TOKEN_DECIMAL, "65535", 65535},
		}},
		{"  DC 'It''s; ok'", []tk{{TOKEN_PSEUDO, "DC", 0}, {TOKEN_STRING, "It's; ok", 0}}},
		{"  DC 'open", []tk{{TOKEN_PSEUDO, "DC", 0}, {TOKEN_STRING, "open", 0}}},
		{"  DC ''", []tk{{TOKEN_PSEUDO, "DC", 0}, {TOKEN_STRING, "", 0}}},
		{"  LD GR0,='A'", []tk{
			{TOKEN_OPERATOR, "LD", 0}, {TOKEN_REGISTER, "GR0", 0},
			{TOKEN_COMMA, ",", 0}, {TOKEN_CONST, "='A'", 65},
		}},
		{"  LD GR0,=''''", []tk{
			{TOKEN_OPERATOR, "LD", 0}, {TOKEN_REGISTER, "GR0", 0},
			{TOKEN_COMMA, ",", 0}, {TOKEN_CONST, "=''''", 39},
		}},
		{"  LD GR0,='AB'", []tk{
			{TOKEN_OPERATOR, "LD", 0}, {TOKEN_REGISTER, "GR0", 0},
			{TOKEN_COMMA, ",", 0}, {TOKEN_OTHER, "='AB'", 0},
		}},
		{"IN OUT", []tk{{TOKEN_MACRO, "IN", 0}, {TOKEN_MACRO, "OUT", 0}}},
		{"#ff #12345 70000 =#ZZ 1A loop2 Loop", []tk{
			{TOKEN_OTHER, "#ff", 0}, {TOKEN_OTHER, "#12345", 0},
			{TOKEN_OTHER, "70000", 0}, {TOKEN_OTHER, "=#ZZ", 0},
			{TOKEN_OTHER, "1A", 0}, {TOKEN_LABEL, "loop2", 0},
			{TOKEN_LABEL, "Loop", 0},
		}},
		{"=#FFFF =-32768", []tk{{TOKEN_CONST, "=#FFFF", 0xffff}, {TOKEN_CONST, "=-32768", -32768}}},
	}

	for _, entry := range table {
		t.Run(entry.line, func(t *testing.T) {
			assert := assert.New(t)

			tokens := Tokenize(entry.line)
			if !assert.Equal(len(entry.expected), len(tokens), "%v", tokens) {
				return
			}
			for n, tok := range tokens {
				assert.Equal(entry.expected[n].kind, tok.Kind, "%d: %v", n, tok)
				assert.Equal(entry.expected[n].text, tok.Text, "%d: %v", n, tok)
				assert.Equal(entry.expected[n].value, tok.Value, "%d: %v", n, tok)
			}
		})
	}
}

func TestTokenizeKeywords(t *testing.T) {
	assert := assert.New(t)

	tokens := Tokenize("LD LAD SVC START DS OUT GR7")
	assert.Equal(7, len(tokens))
	assert.Equal(MN_LD, tokens[0].Mnemonic)
	assert.Equal(MN_LAD, tokens[1].Mnemonic)
	assert.Equal(MN_SVC, tokens[2].Mnemonic)
	assert.Equal(MN_START, tokens[3].Mnemonic)
	assert.Equal(MN_DS, tokens[4].Mnemonic)
	assert.Equal(MN_OUT, tokens[5].Mnemonic)
	assert.Equal(TOKEN_REGISTER, tokens[6].Kind)
	assert.EqualValues(7, tokens[6].Reg)
}

func FuzzTokenize(f *testing.F) {
	f.Add("LABEL LD GR1,=#0010,GR2 ; comment")
	f.Add("  DC 'a''b',=''''")
	f.Add("'")
	f.Add("=")
	f.Add("=';")

	f.Fuzz(func(t *testing.T, line string) {
		for _, tok := range Tokenize(line) {
			switch tok.Kind {
			case TOKEN_COMMA:
				if tok.Text != "," {
					t.Errorf("comma token %q", tok.Text)
				}
			case TOKEN_CONST:
				if len(tok.Text) < 2 || tok.Text[0] != '=' {
					t.Errorf("const token %q", tok.Text)
				}
			}
		}
	})
}
