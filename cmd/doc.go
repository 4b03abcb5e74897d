package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"newsletter-studio/internal/model"
)

// readDocument loads a newsletter document from a JSON file, or stdin when
// path is "-". The container width is clamped on the way in.
func readDocument(path string) (*model.Newsletter, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var n model.Newsletter
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	n.Settings.ContainerWidth = model.ClampContainerWidth(n.Settings.ContainerWidth)
	return &n, nil
}

// writeOutput writes data to a file, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
