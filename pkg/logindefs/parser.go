// Package logindefs extracts the UID_MIN/UID_MAX range from the
// login.defs file shipped by shadow-utils.
//
// The UID_MIN..UID_MAX range defined in login.defs is the range of
// UIDs that are free to allocate to ordinary users. UIDs below UID_MIN
// belong to system accounts, and UIDs above UID_MAX are the nobody
// user and/or dedicated guest users. login.defs also defines
// SYS_UID_MIN/SYS_UID_MAX and SUB_UID_MIN/SUB_UID_MAX, but those often
// don't cover the full ranges and aren't required to fill the rest of
// the UID domain, so this package ignores them. See login.defs(5) for
// the full format.
package logindefs

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
)

// Parse scans a login.defs stream and returns the UID_MIN/UID_MAX
// range. Lines defining other keys are ignored. If a key is defined
// more than once the last occurrence wins. Once the stream is
// exhausted both keys must have been seen; otherwise a
// DefinitionError names the one that is missing.
func Parse(r io.Reader) (UIDRange, error) {
	br := bufio.NewReader(r)

	var (
		min, max       uint32
		sawMin, sawMax bool
	)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			def, value, ok, lineErr := scanLine(line)
			if lineErr != nil {
				return UIDRange{}, lineErr
			}
			if ok {
				if def == UIDMin {
					min, sawMin = value, true
				} else {
					max, sawMax = value, true
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return UIDRange{}, err
		}
	}

	if !sawMin {
		return UIDRange{}, &DefinitionError{Definition: UIDMin, Reason: ReasonMissing}
	}
	if !sawMax {
		return UIDRange{}, &DefinitionError{Definition: UIDMax, Reason: ReasonMissing}
	}
	return UIDRange{Min: min, Max: max}, nil
}

// scanLine extracts a UID_MIN or UID_MAX definition from a single
// line. ok is false when the line defines neither key (blank lines,
// comments, and unrelated keys).
func scanLine(line []byte) (def Definition, value uint32, ok bool, err error) {
	// Comments start at the last '#' on the line. A '#' inside a
	// value therefore truncates it; the shadow-utils tools read the
	// file the same way, so keep that behavior.
	if pos := bytes.LastIndexByte(line, '#'); pos >= 0 {
		line = line[:pos]
	}

	line = trimLeftSpace(line)
	if len(line) == 0 {
		return 0, 0, false, nil
	}

	key := line
	var rest []byte
	if pos := indexSpace(line); pos >= 0 {
		key, rest = line[:pos], line[pos:]
	}

	switch string(key) {
	case "UID_MIN":
		def = UIDMin
	case "UID_MAX":
		def = UIDMax
	default:
		return 0, 0, false, nil
	}

	rest = trimLeftSpace(rest)
	if len(rest) == 0 {
		return 0, 0, false, &DefinitionError{Definition: def, Reason: ReasonEmpty}
	}

	val := rest
	if pos := indexSpace(rest); pos >= 0 {
		val = rest[:pos]
	}

	n, perr := strconv.ParseUint(string(val), 10, 32)
	if perr != nil {
		raw := append([]byte(nil), val...)
		return 0, 0, false, &DefinitionError{Definition: def, Reason: ReasonInvalid, Raw: raw}
	}
	return def, uint32(n), true, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func trimLeftSpace(b []byte) []byte {
	for len(b) > 0 && isSpace(b[0]) {
		b = b[1:]
	}
	return b
}

func indexSpace(b []byte) int {
	for i := 0; i < len(b); i++ {
		if isSpace(b[i]) {
			return i
		}
	}
	return -1
}
