package svg

import (
	"io"
	"os"
)

// Open reads the file at path and returns a Parser over its contents.
func Open(path string) (*Parser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewParser(data), nil
}

// Read consumes r fully and returns a Parser over its contents.
func Read(r io.Reader) (*Parser, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewParser(data), nil
}

// Parse builds a Document from raw markup.
func Parse(data []byte) (*Document, error) {
	return ParseDocument(NewParser(data))
}

// Write serializes a document to w.
func Write(w io.Writer, document *Document) error {
	return WriteEvents(w, document.Events())
}

// WriteEvents serializes an event sequence to w, one event per line.
func WriteEvents(w io.Writer, events []Event) error {
	c := NewComposer(w)
	for _, event := range events {
		if err := c.Write(event); err != nil {
			return err
		}
	}
	return nil
}

// Save writes a document to the file at path, creating or truncating it.
func Save(path string, document *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, document); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
