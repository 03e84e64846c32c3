package main

import "fmt"

// tokenKind classifies the spans produced by the scanner.
type tokenKind int

const (
	tokenEsc tokenKind = iota // literal word, may contain backslash sequences
	tokenStr                  // literal word taken verbatim (braced, or a lone $)
	tokenCmd                  // nested script between matching brackets
	tokenVar                  // variable name, without the leading $
	tokenSep                  // inter-word whitespace
	tokenEOL                  // statement terminator
	tokenEOF                  // buffer exhausted
)

var tokenKindNames = [...]string{"esc", "str", "cmd", "var", "sep", "eol", "eof"}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return fmt.Sprintf("invalid token kind %d", int(k))
	}
	return tokenKindNames[k]
}

// isGraph reports whether c is a graphic byte: printable and not a space,
// under a locale-independent 8-bit rule. Bytes outside the ASCII graphic
// range, including all high-bit bytes, count as non-graphic and so separate
// words.
func isGraph(c byte) bool { return c > 0x20 && c < 0x7f }

// isVarChar reports whether c may appear in a variable name after the $.
func isVarChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_'
}

// scanner walks a script buffer producing one classified token per next
// call. Tokens are half-open [start,end) ranges into src; no text is copied.
// The previous token kind doubles as the scanner state: it decides whether a
// brace or quote opens a new word and whether # starts a comment. Once the
// buffer runs out the scanner emits a final EOL (unless one was just
// emitted) and then EOF forever.
type scanner struct {
	src         string
	pos         int
	start, end  int
	kind        tokenKind
	insidequote bool
}

func newScanner(src string) *scanner {
	return &scanner{src: src, kind: tokenEOL}
}

// text returns the current token's bytes.
func (sc *scanner) text() string { return sc.src[sc.start:sc.end] }

func (sc *scanner) next() tokenKind {
	for sc.pos < len(sc.src) {
		switch c := sc.src[sc.pos]; c {
		case '\n', ';':
			if sc.insidequote {
				return sc.scanWord()
			}
			return sc.scanSep(true)
		case '[':
			return sc.scanCommand()
		case '$':
			return sc.scanVar()
		case '#':
			if sc.kind == tokenEOL {
				sc.scanComment()
				continue
			}
			return sc.scanWord()
		default:
			if isGraph(c) || sc.insidequote {
				return sc.scanWord()
			}
			return sc.scanSep(false)
		}
	}
	if sc.kind != tokenEOL && sc.kind != tokenEOF {
		sc.kind = tokenEOL
	} else {
		sc.kind = tokenEOF
	}
	sc.start, sc.end = sc.pos, sc.pos
	return sc.kind
}

// scanSep consumes a run of non-graphic bytes; with eol set it also consumes
// semicolons, classifying the whole run as a statement terminator.
func (sc *scanner) scanSep(eol bool) tokenKind {
	sc.start = sc.pos
	for sc.pos < len(sc.src) {
		c := sc.src[sc.pos]
		if isGraph(c) && !(eol && c == ';') {
			break
		}
		sc.pos++
	}
	sc.end = sc.pos
	if eol {
		sc.kind = tokenEOL
	} else {
		sc.kind = tokenSep
	}
	return sc.kind
}

// scanCommand consumes a bracketed script, tracking nested bracket and brace
// depth. A backslash hides the following byte from the depth counters. The
// token range excludes the outer brackets.
func (sc *scanner) scanCommand() tokenKind {
	sc.pos++
	sc.start = sc.pos
	level, blevel := 1, 0
scan:
	for sc.pos < len(sc.src) {
		switch sc.src[sc.pos] {
		case '\\':
			if sc.pos+1 < len(sc.src) {
				sc.pos++
			}
		case '[':
			if blevel == 0 {
				level++
			}
		case ']':
			if blevel == 0 {
				if level--; level == 0 {
					break scan
				}
			}
		case '{':
			blevel++
		case '}':
			if blevel != 0 {
				blevel--
			}
		}
		sc.pos++
	}
	sc.end = sc.pos
	if sc.pos < len(sc.src) && sc.src[sc.pos] == ']' {
		sc.pos++
	}
	sc.kind = tokenCmd
	return sc.kind
}

// scanVar consumes $ plus a maximal alphanumeric-or-underscore run. An empty
// run degenerates to a one-byte literal token for the $ itself.
func (sc *scanner) scanVar() tokenKind {
	sc.pos++
	sc.start = sc.pos
	for sc.pos < len(sc.src) && isVarChar(sc.src[sc.pos]) {
		sc.pos++
	}
	if sc.pos == sc.start {
		sc.start, sc.end = sc.pos-1, sc.pos
		sc.kind = tokenStr
	} else {
		sc.end = sc.pos
		sc.kind = tokenVar
	}
	return sc.kind
}

// scanBrace consumes a braced literal, tracking nested brace depth. A
// backslash consumes the following byte without affecting depth, but the
// bytes reach the token untouched: braced literals are never escape-decoded.
func (sc *scanner) scanBrace() tokenKind {
	sc.pos++
	sc.start = sc.pos
	level := 1
scan:
	for sc.pos < len(sc.src) {
		switch c := sc.src[sc.pos]; {
		case c == '{':
			level++
		case c == '\\' && sc.pos+1 < len(sc.src):
			sc.pos++
		case c == '}':
			if level--; level == 0 {
				break scan
			}
		}
		sc.pos++
	}
	sc.end = sc.pos
	if sc.pos < len(sc.src) {
		sc.pos++
	}
	sc.kind = tokenStr
	return sc.kind
}

// scanWord accumulates a literal word. At the start of a new word a brace
// hands off to scanBrace and a double quote enters quoted mode, where
// whitespace and semicolons are ordinary bytes. The word ends at $, [, the
// closing quote, or (outside quotes) a non-graphic byte or semicolon; a
// backslash pulls the following byte into the word.
func (sc *scanner) scanWord() tokenKind {
	if newword := sc.kind == tokenSep || sc.kind == tokenEOL || sc.kind == tokenStr; newword {
		switch sc.src[sc.pos] {
		case '{':
			return sc.scanBrace()
		case '"':
			sc.insidequote = true
			sc.pos++
		}
	}
	sc.start = sc.pos
scan:
	for sc.pos < len(sc.src) {
		switch c := sc.src[sc.pos]; c {
		case '$', '[':
			break scan
		case '"':
			if sc.insidequote {
				sc.end = sc.pos
				sc.pos++
				sc.insidequote = false
				sc.kind = tokenEsc
				return sc.kind
			}
		case '\\':
			if sc.pos+1 < len(sc.src) {
				sc.pos++
			}
		default:
			if (!isGraph(c) || c == ';') && !sc.insidequote {
				break scan
			}
		}
		sc.pos++
	}
	sc.end = sc.pos
	sc.kind = tokenEsc
	return sc.kind
}

// scanComment discards bytes through the end of the line; the newline itself
// is left for the separator scan.
func (sc *scanner) scanComment() {
	for sc.pos < len(sc.src) && sc.src[sc.pos] != '\n' {
		sc.pos++
	}
}
