package outline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rustyoz/svg"
)

// Path data errors. Each is wrapped in ErrMalformedOutline by parse.
var (
	errNoMoveTo         = errors.New("path data does not start with a moveto")
	errUnsupportedCmd   = errors.New("unsupported path command")
	errArgumentCount    = errors.New("wrong number of path arguments")
	errUnexpectedSymbol = errors.New("unexpected character in path data")
	errBadNumber        = errors.New("bad number in path data")
)

// pathArgs is the argument count of each supported command. A command may
// repeat its argument group; Z takes none.
var pathArgs = map[byte]int{
	'M': 2, 'm': 2,
	'L': 2, 'l': 2,
	'H': 1, 'h': 1,
	'V': 1, 'v': 1,
	'C': 6, 'c': 6,
	'Z': 0, 'z': 0,
}

// normalizePaths checks the path data of every path in the document and
// rewrites it in canonical form.
//
// The svg package stops reading a path at the first token it does not
// expect and reports no error, so bad data would otherwise draw a partial
// path. It also prints a line to stdout for stray separators, which the
// canonical form never contains.
func normalizePaths(doc *svg.Svg) error {
	if err := normalizeElements(doc.Elements); err != nil {
		return err
	}
	for i := range doc.Groups {
		if err := normalizeElements(doc.Groups[i].Elements); err != nil {
			return err
		}
	}
	return nil
}

func normalizeElements(elements []svg.DrawingInstructionParser) error {
	for _, e := range elements {
		switch e := e.(type) {
		case *svg.Path:
			d, err := normalizePathData(e.D)
			if err != nil {
				if e.ID != "" {
					return fmt.Errorf("path %q: %w", e.ID, err)
				}
				return err
			}
			e.D = d
		case *svg.Group:
			if err := normalizeElements(e.Elements); err != nil {
				return err
			}
		case *svg.Svg:
			if err := normalizePaths(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// normalizePathData validates SVG path data restricted to the M, L, H, V, C
// and Z commands and their relative forms. It returns the data with every
// token separated by a single space.
func normalizePathData(d string) (string, error) {
	var (
		sb    strings.Builder
		cmd   byte
		want  int
		count int
		first = true
	)

	finish := func() error {
		if cmd == 0 {
			return nil
		}
		if (want == 0 && count != 0) ||
			(want > 0 && (count == 0 || count%want != 0)) {
			return fmt.Errorf("%w: %c has %d", errArgumentCount, cmd, count)
		}
		return nil
	}

	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case isPathSpace(c):
			i++

		case c == ',':
			// A comma separates two arguments.
			if count == 0 || want == 0 {
				return "", fmt.Errorf("%w: ',' at %d", errUnexpectedSymbol, i)
			}
			i++
			for i < len(d) && isPathSpace(d[i]) {
				i++
			}
			if i == len(d) || !startsNumber(d[i]) {
				return "", fmt.Errorf("%w: ',' at %d", errUnexpectedSymbol, i)
			}

		case isPathLetter(c):
			args, ok := pathArgs[c]
			if !ok {
				return "", fmt.Errorf("%w: %c", errUnsupportedCmd, c)
			}
			if first && c != 'M' && c != 'm' {
				return "", errNoMoveTo
			}
			if err := finish(); err != nil {
				return "", err
			}
			if !first {
				sb.WriteByte(' ')
			}
			sb.WriteByte(c)
			cmd, want, count, first = c, args, 0, false
			i++

		case startsNumber(c):
			if cmd == 0 {
				return "", errNoMoveTo
			}
			if want == 0 {
				return "", fmt.Errorf("%w: %c has arguments", errArgumentCount, cmd)
			}
			n := scanNumber(d[i:])
			if n == 0 {
				return "", fmt.Errorf("%w: %q at %d", errBadNumber, d[i:min(i+8, len(d))], i)
			}
			v, err := strconv.ParseFloat(d[i:i+n], 64)
			if err != nil || math.IsInf(v, 0) {
				return "", fmt.Errorf("%w: %q", errBadNumber, d[i:i+n])
			}
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
			count++
			i += n

		default:
			return "", fmt.Errorf("%w: %q at %d", errUnexpectedSymbol, c, i)
		}
	}

	if err := finish(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// scanNumber returns the length of the SVG number at the start of s, or 0
// when s does not start with one.
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func startsNumber(c byte) bool {
	return isDigit(c) || c == '+' || c == '-' || c == '.'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isPathLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isPathSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
