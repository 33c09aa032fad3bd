// Common package contains file helpers shared by the tools
package common

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// ErrCompressed is returned for gzip input, which the tools do not read
var ErrCompressed = errors.New("compressed input is not supported")

// LoadText reads a whole text file into memory.
// Gzip data (magic number 1F 8B) is refused rather than parsed as text.
func LoadText(file string) (string, error) {
	info, err := os.Stat(file)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("failed to open file: %s is a directory", file)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if bytes.HasPrefix(data, []byte{0x1F, 0x8B}) {
		return "", fmt.Errorf("%s: %w", file, ErrCompressed)
	}
	return string(data), nil
}
