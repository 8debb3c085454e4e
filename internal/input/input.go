// Package input reads the factorial operand from a text stream.
package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/zorak1103/fact/internal/errors"
	"github.com/zorak1103/fact/internal/logging"
)

// Parser turns a single token into a signed integer of BitSize width.
// In lenient mode a token is read up to its first non-digit, and one with no
// leading integer yields 0 instead of an error.
type Parser struct {
	BitSize int
	Lenient bool
}

// NewParser returns a Parser for the given bit size. A bitSize of 0 means 64.
func NewParser(bitSize int, lenient bool) *Parser {
	if bitSize == 0 {
		bitSize = 64
	}
	return &Parser{BitSize: bitSize, Lenient: lenient}
}

// Parse converts token into an integer.
func (p *Parser) Parse(token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return p.fallback(token, io.ErrUnexpectedEOF)
	}

	n, err := strconv.ParseInt(token, 10, p.BitSize)
	if err == nil {
		return n, nil
	}
	if !p.Lenient {
		return 0, &apperrors.InputError{Token: token, Err: err}
	}

	// Lenient mode takes the leading integer like a stream extraction would,
	// so "12abc" is 12 and "5.7" is 5.
	prefix := leadingInteger(token)
	if prefix == "" {
		return p.fallback(token, err)
	}
	n, prefixErr := strconv.ParseInt(prefix, 10, p.BitSize)
	if prefixErr != nil {
		return p.fallback(token, prefixErr)
	}
	logging.Warnf("ignoring trailing characters of %q, using %d", token, n)
	return n, nil
}

// leadingInteger returns the longest [+-]?[0-9]+ prefix of s, or "" if s does
// not start with an integer.
func leadingInteger(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}

// Read scans r for whitespace-delimited tokens and parses the first one.
// Only the first token is used.
func (p *Parser) Read(r io.Reader) (int64, error) {
	token, err := ReadToken(r)
	if err != nil {
		return p.fallback("", err)
	}
	return p.Parse(token)
}

func (p *Parser) fallback(token string, cause error) (int64, error) {
	inErr := &apperrors.InputError{Token: token, Err: cause}
	if !p.Lenient {
		return 0, inErr
	}
	logging.Warnf("using 0 for unusable input: %v", inErr)
	return 0, nil
}

// ReadToken returns the first whitespace-delimited token of r.
// It returns io.ErrUnexpectedEOF when r holds no token at all.
func ReadToken(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}
