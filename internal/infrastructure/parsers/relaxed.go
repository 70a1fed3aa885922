package parsers

import "bytes"

// StripRelaxed turns relaxed JSON into strict JSON. It removes block comments,
// then line comments, then commas that directly precede a closing brace or
// bracket. Text inside string literals is never touched, and a "/*" inside a
// line comment does not open a block comment.
func StripRelaxed(src []byte) []byte {
	out := stripBlockComments(src)
	out = stripLineComments(out)
	return stripTrailingCommas(out)
}

// stringSpan returns the index just past the string literal starting at i.
func stringSpan(src []byte, i int) int {
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return len(src)
}

func stripBlockComments(src []byte) []byte {
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		c := src[i]
		if c == '"' {
			end := stringSpan(src, i)
			out = append(out, src[i:end]...)
			i = end
			continue
		}
		if c == '/' && i+1 < len(src) && src[i+1] == '/' {
			// Line comments are copied as-is; quotes inside them must not
			// start a string.
			end := lineEnd(src, i)
			out = append(out, src[i:end]...)
			i = end
			continue
		}
		if c == '/' && i+1 < len(src) && src[i+1] == '*' {
			end := bytes.Index(src[i+2:], []byte("*/"))
			if end < 0 {
				// Unterminated comments stay so strict parsing reports them.
				out = append(out, src[i:]...)
				break
			}
			i += 2 + end + 2
			continue
		}
		out = append(out, c)
		i++
	}
	return out
}

func stripLineComments(src []byte) []byte {
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		c := src[i]
		if c == '"' {
			end := stringSpan(src, i)
			out = append(out, src[i:end]...)
			i = end
			continue
		}
		if c == '/' && i+1 < len(src) && src[i+1] == '/' {
			i = lineEnd(src, i)
			continue
		}
		out = append(out, c)
		i++
	}
	return out
}

func stripTrailingCommas(src []byte) []byte {
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		c := src[i]
		if c == '"' {
			end := stringSpan(src, i)
			out = append(out, src[i:end]...)
			i = end
			continue
		}
		if c == ',' {
			j := i + 1
			for j < len(src) && isSpace(src[j]) {
				j++
			}
			if j < len(src) && (src[j] == '}' || src[j] == ']') {
				i++
				continue
			}
		}
		out = append(out, c)
		i++
	}
	return out
}

// lineEnd returns the index of the newline ending the line at i, or len(src).
func lineEnd(src []byte, i int) int {
	if n := bytes.IndexByte(src[i:], '\n'); n >= 0 {
		return i + n
	}
	return len(src)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
