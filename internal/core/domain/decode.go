package domain

import (
	"encoding/json"
	"errors"
	"io"
)

// DecodeDraft decodes one JSON document from r into dst. A value of the wrong
// JSON type leaves its field unset instead of failing the document, so the
// readiness rules report it as missing. Syntax errors and io.EOF are returned.
func DecodeDraft(r io.Reader, dst any) error {
	err := json.NewDecoder(r).Decode(dst)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}
