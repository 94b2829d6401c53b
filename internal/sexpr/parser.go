package sexpr

// Parse reads an entire scene file and returns its top-level forms, each
// as a List Value. Top-level forms are node, pattern, material, light,
// camera, and render declarations.
func Parse(src string) ([]Value, error) {
	lx := newLexer(src)
	var forms []Value
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			return forms, nil
		}
		if tok.kind != tokLParen {
			return nil, ParseError{Line: tok.line, Col: tok.col, Msg: "expected top-level form to start with '('"}
		}
		v, err := parseList(lx, tok)
		if err != nil {
			return nil, err
		}
		forms = append(forms, v)
	}
}

// parseList parses the contents of a list whose opening '(' has already
// been consumed (open is that token, kept for its source location).
func parseList(lx *lexer, open token) (Value, error) {
	v := Value{Kind: List, Line: open.line, Col: open.col}
	for {
		tok, err := lx.next()
		if err != nil {
			return Value{}, err
		}
		switch tok.kind {
		case tokEOF:
			return Value{}, ParseError{Line: open.line, Col: open.col, Msg: "unterminated list"}
		case tokRParen:
			return v, nil
		case tokLParen:
			child, err := parseList(lx, tok)
			if err != nil {
				return Value{}, err
			}
			v.Items = append(v.Items, child)
		default:
			v.Items = append(v.Items, atomFromToken(tok))
		}
	}
}

func atomFromToken(tok token) Value {
	switch tok.kind {
	case tokIdent:
		return Value{Kind: Ident, Text: tok.text, Line: tok.line, Col: tok.col}
	case tokKeyword:
		return Value{Kind: Keyword, Text: tok.text, Line: tok.line, Col: tok.col}
	case tokNumber:
		return Value{Kind: Number, Number: tok.num, Line: tok.line, Col: tok.col}
	case tokString:
		return Value{Kind: String, Text: tok.text, Line: tok.line, Col: tok.col}
	case tokHex:
		return Value{Kind: HexColor, Text: tok.text, Line: tok.line, Col: tok.col}
	default:
		return Value{Line: tok.line, Col: tok.col}
	}
}
