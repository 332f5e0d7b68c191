// Package document recovers plain text from resume files. Supported
// formats are PDF and DOCX; the declared format is checked before any byte
// of the payload is inspected.
package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat means the declared format is not one this
	// package can read. Fatal to the request, no fallback.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrCorruptDocument means the payload could not be parsed at all.
	ErrCorruptDocument = errors.New("document could not be parsed")
	// ErrEmptyDocument means parsing succeeded but produced no text.
	ErrEmptyDocument = errors.New("document contains no extractable text")
)

// Format is the declared type of a document payload.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Document is an opaque payload with its declared format. It is held only
// for the duration of one extraction call and never persisted here.
type Document struct {
	Data   []byte
	Format Format
}

// DetectFormat resolves a filename, extension or MIME type to a Format.
// Anything unrecognised is rejected with ErrUnsupportedFormat.
func DetectFormat(nameOrMIME string) (Format, error) {
	v := strings.ToLower(strings.TrimSpace(nameOrMIME))

	switch {
	case v == "application/pdf", v == "pdf", strings.HasSuffix(v, ".pdf"):
		return FormatPDF, nil
	case v == docxMIME, v == "docx", strings.HasSuffix(v, ".docx"):
		return FormatDOCX, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, nameOrMIME)
}

// ExtractText converts the document payload into newline-delimited plain
// text. The returned text is never empty: a document with nothing to
// extract fails with ErrEmptyDocument instead of succeeding emptily.
func ExtractText(doc Document) (string, error) {
	switch doc.Format {
	case FormatPDF:
		return extractPDF(doc.Data)
	case FormatDOCX:
		return extractDOCX(doc.Data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, doc.Format)
	}
}
