package contract

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a requested entity does not exist in the stats
// store. Kind names the entity class ("player" or "attribute") and Key is the
// identifier or name that failed to resolve. It is never silently substituted
// with a default.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// SchemaError reports that an expected table or column is absent from the
// stats store. It is fatal for the current operation but must never crash the
// process, and is reported distinctly from NotFoundError.
type SchemaError struct {
	Object string // table or table.column
	Detail string
}

func (e *SchemaError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("store schema mismatch: missing %s", e.Object)
	}
	return fmt.Sprintf("store schema mismatch: missing %s: %s", e.Object, e.Detail)
}

// ValueError reports structurally invalid input to a computation, such as an
// empty category list or mismatched series lengths. Division by zero in
// derived metrics is policy (schema.Rate.Valid), not a ValueError.
type ValueError struct {
	Op     string
	Detail string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsSchemaError reports whether err is or wraps a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
