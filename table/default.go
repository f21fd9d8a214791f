package table

// Default returns the reserved words of the host language: sized numeric
// types, declarations, control flow and the boolean literals.
func Default() Table {
	return Table{
		Entries: []Entry{
			Keyword("i8", "TOK_I8"),
			Keyword("i16", "TOK_I16"),
			Keyword("i32", "TOK_I32"),
			Keyword("i64", "TOK_I64"),
			Keyword("u8", "TOK_U8"),
			Keyword("u16", "TOK_U16"),
			Keyword("u32", "TOK_U32"),
			Keyword("u64", "TOK_U64"),
			Keyword("f32", "TOK_F32"),
			Keyword("f64", "TOK_F64"),
			Keyword("def", "TOK_DEF"),
			Keyword("var", "TOK_VAR"),
			Keyword("val", "TOK_VAL"),
			Keyword("if", "TOK_IF"),
			Keyword("else", "TOK_ELSE"),
			Keyword("while", "TOK_WHILE"),
			Keyword("for", "TOK_FOR"),
			Keyword("match", "TOK_MATCH"),
			Keyword("case", "TOK_CASE"),
			Keyword("break", "TOK_BREAK"),
			Keyword("continue", "TOK_CONTINUE"),
			Keyword("return", "TOK_RETURN"),
			Keyword("mod", "TOK_MOD"),
			Keyword("bool", "TOK_BOOL"),
			Keyword("struct", "TOK_STRUCT"),
			Keyword("byref", "TOK_BYREF"),

			Boolean("true", true),
			Boolean("false", false),
		},
	}.WithDefaults()
}
