package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // model to bytes
	PhaseDecode   Phase = "decode"   // bytes to model
	PhaseGenerate Phase = "generate" // codec generation
	PhaseLoad     Phase = "load"     // package or file loading
	PhaseParse    Phase = "parse"    // reference strings, config
)

// Kind categorizes the error
type Kind string

const (
	KindShortRead          Kind = "short_read"
	KindStringNotFound     Kind = "string_not_found"
	KindEnumOutOfBounds    Kind = "enum_out_of_bounds"
	KindInvalidFlagBits    Kind = "invalid_flag_bits"
	KindMalformedReference Kind = "malformed_reference"
	KindWrongFileFormat    Kind = "wrong_file_format"
	KindInvalidData        Kind = "invalid_data"
	KindOverflow           Kind = "overflow"
	KindNilPointer         Kind = "nil_pointer"
	KindUnsupported        Kind = "unsupported"
	KindNotFound           Kind = "not_found"
	KindInvalidInput       Kind = "invalid_input"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" {
		b.WriteString(": type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase != "" && t.Phase != e.Phase {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Match returns a sentinel that matches any error of the given kind via errors.Is.
func Match(kind Kind) *Error {
	return &Error{Kind: kind}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// WithPath prepends segment to the path of the *Error in err's chain.
// Errors of other types are returned unchanged.
func WithPath(err error, segment string) error {
	var e *Error
	if stderrors.As(err, &e) {
		e.Path = append([]string{segment}, e.Path...)
	}
	return err
}

// Convenience constructors for common error patterns

// ShortRead creates an error for a fixed-width read past the end of the payload
func ShortRead(need, remaining, offset int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindShortRead,
		Detail: fmt.Sprintf("need %d bytes at offset %d, %d remaining", need, offset, remaining),
		Value:  need,
	}
}

// StringNotFound creates an error for an interner index past the end of the table
func StringNotFound(index uint64, size int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindStringNotFound,
		Detail: fmt.Sprintf("string index %d out of range (table size %d)", index, size),
		Value:  index,
	}
}

// EnumOutOfBounds creates an error for a discriminant that matches no variant of goType
func EnumOutOfBounds(goType string, value uint64) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindEnumOutOfBounds,
		GoType: goType,
		Detail: fmt.Sprintf("discriminant %d matches no variant", value),
		Value:  value,
	}
}

// InvalidFlagBits creates an error for a flag value with bits outside the known set
func InvalidFlagBits(goType string, value, known uint64) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidFlagBits,
		GoType: goType,
		Detail: fmt.Sprintf("value %#x has unknown bits %#x", value, value&^known),
		Value:  value,
	}
}

// MalformedReference creates an error for a reference string that failed to parse
func MalformedReference(phase Phase, text string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformedReference,
		Detail: fmt.Sprintf("malformed reference %q", text),
		Value:  text,
		Cause:  cause,
	}
}

// WrongFileFormat creates a magic header mismatch error
func WrongFileFormat(got, want []byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindWrongFileFormat,
		Detail: fmt.Sprintf("magic %q, expected %q", got, want),
		Value:  got,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		GoType: targetType,
		Detail: fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:  value,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}
