/*
File    : eta/lexer/lexer_utils.go
*/
package lexer

// isSpace reports whether c is whitespace that separates tokens.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isAlpha reports whether c can start or continue an identifier, alongside
// isDigit. Only ASCII letters and underscore are accepted; eta identifiers
// are not Unicode-aware.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isAlnum reports whether c can continue an identifier once started.
func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }
