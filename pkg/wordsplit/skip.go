package wordsplit

// escapeLen returns the byte length of a C-style backslash escape sequence
// at the start of s, or 0 when s does not begin one. Recognized forms:
// \a \b \f \n \r \t \v, \' \" \\ \? \0, \xH (one to four hex digits),
// \uHHHH (exactly four), \UHHHHHHHH (exactly eight).
func escapeLen(s string) int {
	if len(s) < 2 || s[0] != '\\' {
		return 0
	}

	switch s[1] {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\'', '"', '\\', '?', '0':
		return 2
	case 'x':
		n := hexRun(s[2:], 4)
		if n == 0 {
			return 0
		}
		return 2 + n
	case 'u':
		if hexRun(s[2:], 4) == 4 {
			return 6
		}
		return 0
	case 'U':
		if hexRun(s[2:], 8) == 8 {
			return 10
		}
		return 0
	}
	return 0
}

// hexRun counts leading hex digits in s, up to max.
func hexRun(s string, max int) int {
	n := 0
	for n < len(s) && n < max && isHexDigit(s[n]) {
		n++
	}
	return n
}

// entityLen returns the byte length of an XML/HTML character entity at the
// start of s, or 0. Forms: &#NNNN; (up to four decimal digits), &#xHHHH;
// (up to four hex digits), or a named entity &name;. An entity is consumed
// as a unit and never split into words.
func entityLen(s string) int {
	if len(s) < 3 || s[0] != '&' {
		return 0
	}

	i := 1
	if s[i] == '#' {
		i++
		hex := false
		if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
			hex = true
			i++
		}
		start := i
		for i < len(s) && i-start < 4 {
			if hex && !isHexDigit(s[i]) {
				break
			}
			if !hex && !isDigit(s[i]) {
				break
			}
			i++
		}
		if i == start || i >= len(s) || s[i] != ';' {
			return 0
		}
		return i + 1
	}

	if !isASCIILetter(s[i]) {
		return 0
	}
	for i < len(s) && (isASCIILetter(s[i]) || isDigit(s[i])) {
		i++
	}
	if i >= len(s) || s[i] != ';' {
		return 0
	}
	return i + 1
}

// dotNetFormatLen returns the byte length of a .NET-style format specifier
// {index[,alignment][:format]} at the start of s, including interpolation
// property placeholders {Name.Property}, or 0 when s does not begin one.
// Doubled braces are handled by the caller.
func dotNetFormatLen(s string) int {
	if len(s) < 3 || s[0] != '{' {
		return 0
	}

	i := 1
	start := i
	for i < len(s) && isPlaceholderByte(s[i]) {
		i++
	}
	if i == start {
		return 0
	}

	if i < len(s) && s[i] == ',' {
		i++
		if i < len(s) && s[i] == '-' {
			i++
		}
		aligned := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == aligned {
			return 0
		}
	}

	if i < len(s) && s[i] == ':' {
		i++
		for i < len(s) && s[i] != '}' && s[i] != '{' {
			i++
		}
	}

	if i < len(s) && s[i] == '}' {
		return i + 1
	}
	return 0
}

// printfLen returns the byte length of a printf-family format specifier
// %[flags][width][.precision][length]conversion at the start of s, or 0.
func printfLen(s string) int {
	if len(s) < 2 || s[0] != '%' {
		return 0
	}
	if s[1] == '%' {
		return 2
	}

	i := 1
	for i < len(s) && isPrintfFlag(s[i]) {
		i++
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '*') {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && (isDigit(s[i]) || s[i] == '*') {
			i++
		}
	}
	for i < len(s) && isPrintfLength(s[i]) {
		i++
	}
	if i < len(s) && isPrintfConversion(s[i]) {
		return i + 1
	}
	return 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isPlaceholderByte matches format-item indexes and interpolation property
// expressions: digits, letters, '.', '_'.
func isPlaceholderByte(b byte) bool {
	return isDigit(b) || isASCIILetter(b) || b == '.' || b == '_'
}

func isPrintfFlag(b byte) bool {
	switch b {
	case '-', '+', ' ', '#', '0', '\'':
		return true
	}
	return false
}

func isPrintfLength(b byte) bool {
	switch b {
	case 'h', 'l', 'L', 'q', 'j', 'z', 't':
		return true
	}
	return false
}

func isPrintfConversion(b byte) bool {
	switch b {
	case 'd', 'i', 'o', 'u', 'x', 'X', 'e', 'E', 'f', 'F',
		'g', 'G', 'a', 'A', 'c', 's', 'p', 'n':
		return true
	}
	return false
}
