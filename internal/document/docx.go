package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// extractDOCX reads word/document.xml out of the OOXML container and walks
// it paragraph by paragraph. Text inside tables lives in cell paragraphs,
// so it is picked up by the same walk without dedicated table handling.
func extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	var body io.ReadCloser
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			if body, err = f.Open(); err != nil {
				return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
			}
			break
		}
	}
	if body == nil {
		return "", fmt.Errorf("%w: word/document.xml not found", ErrCorruptDocument)
	}
	defer body.Close()

	text, err := paragraphText(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	if text == "" {
		return "", ErrEmptyDocument
	}

	return text, nil
}

// paragraphText collects the character data of every w:t element and emits
// a newline at each paragraph end, preserving the document's block order.
func paragraphText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var b strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteString(" ")
			case "br":
				b.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return strings.TrimSpace(b.String()), nil
}
