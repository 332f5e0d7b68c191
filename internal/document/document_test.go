package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func buildDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("creating archive entry: %v", err)
	}

	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`
	if _, err := f.Write([]byte(doc)); err != nil {
		t.Fatalf("writing archive entry: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}

	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		input string
		want  Format
	}{
		{"resume.pdf", FormatPDF},
		{"application/pdf", FormatPDF},
		{"RESUME.DOCX", FormatDOCX},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", FormatDOCX},
	}

	for _, c := range cases {
		got, err := DetectFormat(c.input)
		if err != nil {
			t.Fatalf("DetectFormat(%q): unexpected error: %v", c.input, err)
		}
		if got != c.want {
			t.Fatalf("DetectFormat(%q): expected %q, got %q", c.input, c.want, got)
		}
	}
}

func TestDetectFormatUnsupported(t *testing.T) {
	if _, err := DetectFormat("resume.txt"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractTextUnsupportedFormatBeforeParsing(t *testing.T) {
	doc := Document{Data: []byte("anything at all"), Format: Format("txt")}

	if _, err := ExtractText(doc); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractDOCX(t *testing.T) {
	data := buildDOCX(t, "John Smith", "Skills: Python, Go")

	text, err := ExtractText(Document{Data: data, Format: FormatDOCX})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one line per paragraph, got %q", text)
	}
	if lines[0] != "John Smith" || lines[1] != "Skills: Python, Go" {
		t.Fatalf("paragraphs out of order or mangled: %q", text)
	}
}

func TestExtractDOCXEmpty(t *testing.T) {
	data := buildDOCX(t)

	if _, err := ExtractText(Document{Data: data, Format: FormatDOCX}); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestExtractDOCXCorrupt(t *testing.T) {
	data := []byte("this is not a zip archive")

	if _, err := ExtractText(Document{Data: data, Format: FormatDOCX}); !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestExtractDOCXMissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("creating archive entry: %v", err)
	}
	if _, err := f.Write([]byte("<w:styles/>")); err != nil {
		t.Fatalf("writing archive entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}

	if _, err := ExtractText(Document{Data: buf.Bytes(), Format: FormatDOCX}); !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}

func TestExtractPDFCorrupt(t *testing.T) {
	data := []byte("%PDF-1.4 truncated garbage")

	if _, err := ExtractText(Document{Data: data, Format: FormatPDF}); !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("expected ErrCorruptDocument, got %v", err)
	}
}
