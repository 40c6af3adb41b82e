// Package output delivers a rendered document: to a file, to stdout, or
// as the data URI the browser flavor of this tool used for downloads.
package output

import (
	"encoding/base64"
	"fmt"
	"os"
)

const dataURIPrefix = "data:application/octet-stream;base64,"

// DataURI wraps content in a base64 octet-stream data URI.
func DataURI(content []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(content)
}

// Write delivers content to path, or to stdout when path is empty.
func Write(path string, content []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(content)
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
