package calc

import (
	apperrors "github.com/agbru/uintcalc/internal/errors"
)

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	tkEOF tokenKind = iota
	tkNumber
	tkPlus
	tkMinus
	tkStar
	tkStarStar
	tkSlash
	tkPercent
	tkAmp
	tkPipe
	tkCaret
	tkTilde
	tkShl
	tkShr
	tkLParen
	tkRParen
)

// token is a single lexical unit with its byte offset in the source text.
type token struct {
	kind   tokenKind
	text   string
	offset int
}

// lex splits src into tokens. Whitespace separates tokens and is otherwise
// ignored.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9':
			start := i
			i++
			if c == '0' && i < len(src) && (src[i] == 'x' || src[i] == 'X') {
				i++
				for i < len(src) && isHexDigit(src[i]) {
					i++
				}
			} else {
				for i < len(src) && src[i] >= '0' && src[i] <= '9' {
					i++
				}
			}
			toks = append(toks, token{kind: tkNumber, text: src[start:i], offset: start})
		case c == '+':
			toks = append(toks, token{kind: tkPlus, text: "+", offset: i})
			i++
		case c == '-':
			toks = append(toks, token{kind: tkMinus, text: "-", offset: i})
			i++
		case c == '*':
			if i+1 < len(src) && src[i+1] == '*' {
				toks = append(toks, token{kind: tkStarStar, text: "**", offset: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tkStar, text: "*", offset: i})
				i++
			}
		case c == '/':
			toks = append(toks, token{kind: tkSlash, text: "/", offset: i})
			i++
		case c == '%':
			toks = append(toks, token{kind: tkPercent, text: "%", offset: i})
			i++
		case c == '&':
			toks = append(toks, token{kind: tkAmp, text: "&", offset: i})
			i++
		case c == '|':
			toks = append(toks, token{kind: tkPipe, text: "|", offset: i})
			i++
		case c == '^':
			toks = append(toks, token{kind: tkCaret, text: "^", offset: i})
			i++
		case c == '~':
			toks = append(toks, token{kind: tkTilde, text: "~", offset: i})
			i++
		case c == '<':
			if i+1 < len(src) && src[i+1] == '<' {
				toks = append(toks, token{kind: tkShl, text: "<<", offset: i})
				i += 2
			} else {
				return nil, apperrors.ParseError{Offset: i, Message: "unexpected '<'"}
			}
		case c == '>':
			if i+1 < len(src) && src[i+1] == '>' {
				toks = append(toks, token{kind: tkShr, text: ">>", offset: i})
				i += 2
			} else {
				return nil, apperrors.ParseError{Offset: i, Message: "unexpected '>'"}
			}
		case c == '(':
			toks = append(toks, token{kind: tkLParen, text: "(", offset: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tkRParen, text: ")", offset: i})
			i++
		default:
			return nil, apperrors.ParseError{Offset: i, Message: "unexpected character " + string(c)}
		}
	}
	toks = append(toks, token{kind: tkEOF, offset: len(src)})
	return toks, nil
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
