package datefmt

import (
	"strings"
)

// DefaultPattern is used by Cache.Default and TruncateToSeconds.
const DefaultPattern = "yyyy-MM-dd HH:mm:ss"

// patternLetters lists supported field letters, any other unquoted ASCII letter is rejected.
const patternLetters = "GyYMLwWDdFEuaHkKhmsSzZX"

// token is either a literal (letter == 0) or a field repeated count times.
type token struct {
	letter byte
	count  int
	text   string

	// fixed is set for numeric fields directly followed by another numeric field,
	// such fields consume exactly count digits on parse.
	fixed bool
}

func (t token) numeric() bool {
	switch t.letter {
	case 'y', 'Y', 'w', 'W', 'D', 'd', 'F', 'u', 'H', 'k', 'K', 'h', 'm', 's', 'S':
		return true
	case 'M', 'L':
		return t.count < 3
	}

	return false
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func compile(pattern string) ([]token, error) {
	var (
		tokens []token
		lit    strings.Builder
	)

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]

		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2

				continue
			}

			j := i + 1

			for {
				if j >= len(pattern) {
					return nil, &ConstructionError{Pattern: pattern, Offset: i, Reason: "unterminated quote"}
				}

				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						lit.WriteByte('\'')
						j += 2

						continue
					}

					break
				}

				lit.WriteByte(pattern[j])
				j++
			}

			i = j + 1

		case isASCIILetter(c):
			if strings.IndexByte(patternLetters, c) < 0 {
				return nil, &ConstructionError{
					Pattern: pattern,
					Offset:  i,
					Reason:  "illegal pattern character '" + string(c) + "'",
				}
			}

			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}

			if c == 'X' && j-i > 3 {
				return nil, &ConstructionError{Pattern: pattern, Offset: i, Reason: "too many pattern letters: X"}
			}

			flush()
			tokens = append(tokens, token{letter: c, count: j - i})
			i = j

		default:
			lit.WriteByte(c)
			i++
		}
	}

	flush()

	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].numeric() && tokens[i+1].numeric() {
			tokens[i].fixed = true
		}
	}

	return tokens, nil
}
