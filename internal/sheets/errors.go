package sheets

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// AccessError is a permission or not-found failure from the spreadsheet
// API. Remediation carries user-facing text telling the operator how to
// fix it (e.g. share the sheet with the service account).
type AccessError struct {
	StatusCode  int
	Remediation string
	Err         error
}

func (e *AccessError) Error() string {
	return e.Err.Error()
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// wrapAccessError classifies Google API errors: 403 and 404 become
// AccessError with remediation text, everything else passes through
// unchanged as a transport failure.
func wrapAccessError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Code {
	case http.StatusNotFound:
		return &AccessError{
			StatusCode:  apiErr.Code,
			Remediation: "Spreadsheet not found. Make sure you've shared it with the service account.",
			Err:         err,
		}
	case http.StatusForbidden:
		return &AccessError{
			StatusCode:  apiErr.Code,
			Remediation: "Permission denied. Please share the spreadsheet with the service account email.",
			Err:         err,
		}
	}

	return err
}
