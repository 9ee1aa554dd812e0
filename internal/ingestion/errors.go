package ingestion

import "fmt"

// UnsupportedFormatError reports a document format the pipeline does not
// handle, either by declared type or because the required converter is
// unavailable on this host.
type UnsupportedFormatError struct {
	MimeType string
	Reason   string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unsupported document format %q", e.MimeType)
	}
	return fmt.Sprintf("unsupported document format %q: %s", e.MimeType, e.Reason)
}

// CorruptDocumentError reports a document whose declared format is supported
// but whose bytes could not be decoded.
type CorruptDocumentError struct {
	MimeType string
	Err      error
}

func (e *CorruptDocumentError) Error() string {
	return fmt.Sprintf("corrupt %s document: %v", e.MimeType, e.Err)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Err
}
