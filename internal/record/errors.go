package record

import (
	"errors"
	"fmt"
)

// RecordError attaches the identity of the record being processed to a
// fault, so a run that aborts points at the exact record.
type RecordError struct {
	Kind     Kind
	Key      FormKey
	EditorID string
	Err      error
}

func (e *RecordError) Error() string {
	if e.EditorID != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Kind, e.Key, e.EditorID, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Kind, e.Key, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Enrich wraps err with the identity of rec. Errors that already carry a
// record identity are returned unchanged; a nil err stays nil.
func Enrich(err error, rec *Record) error {
	if err == nil {
		return nil
	}

	var re *RecordError
	if errors.As(err, &re) {
		return err
	}

	if rec == nil {
		return err
	}

	return &RecordError{
		Kind:     rec.Kind,
		Key:      rec.Key,
		EditorID: rec.EditorID,
		Err:      err,
	}
}
