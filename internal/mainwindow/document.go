package mainwindow

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedDocument is returned when the main window subtree is cut short
// or cannot be decoded.
var ErrMalformedDocument = errors.New("cannot read main window data")

// TokenWriter receives the tokens produced by SaveXML. *xml.Encoder implements it.
type TokenWriter interface {
	EncodeToken(t xml.Token) error
}

// LoadXML consumes the main window subtree from r. The caller has already read
// the opening <MainWindow>; LoadXML returns once the matching end element has
// been read. Child elements are consumed without changing m.
func (m *Model) LoadXML(r xml.TokenReader) error {
	mainLog().Info("MainWindowModel.LoadXML")

	depth := 0
	for {
		tok, err := r.Token()

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				mainLog().Debug("ignoring main window element", "name", t.Name.Local)
			}
			depth++
		case xml.EndElement:
			if depth == 0 {
				if t.Name.Local == DocumentElement {
					return nil
				}
				return fmt.Errorf("%w: unexpected </%s>", ErrMalformedDocument, t.Name.Local)
			}
			depth--
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: document ended before </%s>", ErrMalformedDocument, DocumentElement)
			}
			return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}
}

// SaveXML writes an empty <MainWindow> element. No field values are written;
// they are persisted through the settings store instead.
func (m Model) SaveXML(w TokenWriter) error {
	mainLog().Info("MainWindowModel.SaveXML")

	start := xml.StartElement{Name: xml.Name{Local: DocumentElement}}
	if err := w.EncodeToken(start); err != nil {
		return fmt.Errorf("writing <%s>: %w", DocumentElement, err)
	}
	if err := w.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("writing </%s>: %w", DocumentElement, err)
	}
	return nil
}

// ReadDocument scans r for the first <MainWindow> element and loads it into a
// default Model. A document without that element yields the defaults.
func ReadDocument(r io.Reader) (Model, error) {
	m := New()
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == DocumentElement {
			if err := m.LoadXML(dec); err != nil {
				return New(), err
			}
			return m, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return m, nil
			}
			return New(), fmt.Errorf("reading document: %w", err)
		}
	}
}

// WriteDocument encodes m's element to w.
func WriteDocument(w io.Writer, m Model) error {
	enc := xml.NewEncoder(w)
	if err := m.SaveXML(enc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing document: %w", err)
	}
	return nil
}
