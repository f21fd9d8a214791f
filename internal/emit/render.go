package emit

import (
	"fmt"
	"strings"
)

const tab = "    "

// WriteC renders block as C statements indented by level tabs of four spaces.
// The input string is expected in a variable named str.
func WriteC(sb *strings.Builder, block Block, level int) {
	for _, s := range block {
		writeStmt(sb, s, level)
	}
}

// RenderC returns block rendered as C source starting at level.
func RenderC(block Block, level int) string {
	var sb strings.Builder
	WriteC(&sb, block, level)
	return sb.String()
}

func writeStmt(sb *strings.Builder, s Stmt, level int) {
	indent := strings.Repeat(tab, level)

	switch s := s.(type) {
	case Switch:
		fmt.Fprintf(sb, "%sswitch (str[%d]) {\n", indent, s.Pos)
		for _, c := range s.Cases {
			fmt.Fprintf(sb, "%s%scase %s:\n", indent, tab, CharLiteral(c.Char))
			WriteC(sb, c.Body, level+2)
			fmt.Fprintf(sb, "%s%s%sbreak;\n", indent, tab, tab)
		}
		if s.Terminal != nil {
			fmt.Fprintf(sb, "%s%scase '\\0': return %s;\n", indent, tab, s.Terminal.Payload)
		}
		fmt.Fprintf(sb, "%s}\n", indent)

	case Guard:
		fmt.Fprintf(sb, "%sif (str[%d] == %s) {\n", indent, s.Pos, CharLiteral(s.Char))
		WriteC(sb, s.Body, level+1)
		fmt.Fprintf(sb, "%s}\n", indent)

	case Accept:
		fmt.Fprintf(sb, "%sif (str[%d] == '\\0') return %s;\n", indent, s.Pos, s.Payload)

	case Compare:
		fmt.Fprintf(sb, "%sif (!strcmp(str, %s)) return %s;\n", indent, StringLiteral(s.Word), s.Payload)

	case Return:
		fmt.Fprintf(sb, "%sreturn %s;\n", indent, s.Payload)

	default:
		panic(fmt.Sprintf("emit: unknown statement %T", s))
	}
}

// CharLiteral renders c as a C character literal.
func CharLiteral(c byte) string {
	switch c {
	case 0:
		return `'\0'`
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	case '\t':
		return `'\t'`
	case '\n':
		return `'\n'`
	}
	if c < 0x20 || c > 0x7e {
		return fmt.Sprintf(`'\x%02x'`, c)
	}
	return "'" + string(rune(c)) + "'"
}

// StringLiteral renders s as a C string literal. Non-printable bytes use
// three-digit octal escapes so a following digit is never absorbed.
func StringLiteral(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&sb, `\%03o`, c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
