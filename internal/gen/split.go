package gen

import (
	"errors"
	"fmt"
	"go/scanner"
	"go/token"
	"strings"
)

// splitChecks splits a tag value at commas that are not nested inside
// (), [], {} or a literal.
func splitChecks(value string) ([]string, error) {
	var (
		s     scanner.Scanner
		errs  scanner.ErrorList
		fset  = token.NewFileSet()
		file  = fset.AddFile("", fset.Base(), len(value))
		depth int
		start int
		parts []string
	)
	s.Init(file, []byte(value), func(pos token.Position, msg string) { errs.Add(pos, msg) }, 0)

	for {
		pos, tok, _ := s.Scan()
		if tok == token.EOF {
			break
		}
		switch tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unexpected %s at offset %d", tok, file.Offset(pos))
			}
		case token.COMMA:
			if depth == 0 {
				off := file.Offset(pos)
				parts = append(parts, strings.TrimSpace(value[start:off]))
				start = off + 1
			}
		}
	}
	if errs.Len() > 0 {
		return nil, errs.Err()
	}
	if depth != 0 {
		return nil, errors.New("unbalanced brackets")
	}
	parts = append(parts, strings.TrimSpace(value[start:]))

	for i, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("empty check at position %d", i+1)
		}
	}
	return parts, nil
}
