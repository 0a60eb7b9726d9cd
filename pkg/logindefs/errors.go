package logindefs

import "fmt"

// Reason describes what is wrong with a UID_MIN or UID_MAX definition.
type Reason int

const (
	// ReasonMissing means the key never appeared before end of input.
	ReasonMissing Reason = iota
	// ReasonEmpty means the key appeared with no value after it.
	ReasonEmpty
	// ReasonInvalid means the value was not a valid non-negative
	// integer in the UID domain.
	ReasonInvalid
)

// DefinitionError reports a structurally or syntactically bad UID_MIN
// or UID_MAX definition. For ReasonInvalid, Raw holds the offending
// value bytes exactly as they appeared in the file.
type DefinitionError struct {
	Definition Definition
	Reason     Reason
	Raw        []byte
}

func (e *DefinitionError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return fmt.Sprintf("%s defined in login.defs without a value", e.Definition.Key())
	case ReasonInvalid:
		return fmt.Sprintf("%s was not a valid %s", quoteBytes(e.Raw), e.Definition.Key())
	default:
		return fmt.Sprintf("%s not defined in login.defs", e.Definition.Key())
	}
}

// quoteBytes renders raw value bytes for a one-line diagnostic,
// escaping anything non-printable.
func quoteBytes(raw []byte) string {
	return fmt.Sprintf("%q", raw)
}

// SourceError reports a failure to open or read the login.defs
// resource. Op distinguishes the two.
type SourceError struct {
	Op   string // "open" or "read"
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
