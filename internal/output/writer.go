// Package output persists parse results as JSON documents. Each source file
// becomes one document under <root>/json/, and a run-level directory map
// records every file the run touched, including the failed ones.
package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"outline/internal/core/errors"
	"outline/internal/model"
)

// DirectoryMapName sorts ahead of the per-file documents in a listing.
const DirectoryMapName = "00_directory_map.json"

// MapEntry is one file's line in the directory map.
type MapEntry struct {
	FilePath string `json:"file_path"`
	Document string `json:"document,omitempty"`
	Blocks   int    `json:"blocks"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// Writer writes documents under one output root. Safe for concurrent
// WriteModule calls; the directory map is written once per run.
type Writer struct {
	root string
}

func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// WriteModule persists one module hierarchy, returning the document name.
func (w *Writer) WriteModule(module *model.Module) (string, error) {
	dir := filepath.Join(w.root, "json")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "create output directory")
	}

	name := DocumentName(module.FilePath)
	data, err := json.MarshalIndent(module, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "encode module document")
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "write module document")
	}
	return name, nil
}

// WriteDirectoryMap persists the run manifest next to the documents.
func (w *Writer) WriteDirectoryMap(entries []MapEntry) error {
	dir := filepath.Join(w.root, "json")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "create output directory")
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "encode directory map")
	}
	if err := os.WriteFile(filepath.Join(dir, DirectoryMapName), data, 0o644); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "write directory map")
	}
	return nil
}

// DocumentName flattens a source path into a single file name, replacing
// path separators so the json/ directory stays flat.
func DocumentName(filePath string) string {
	clean := filepath.ToSlash(filepath.Clean(filePath))
	clean = strings.TrimPrefix(clean, "./")
	clean = strings.TrimPrefix(clean, "/")
	return strings.ReplaceAll(clean, "/", ":") + ".json"
}

// CountBlocks returns the number of blocks in a hierarchy, the root included.
func CountBlocks(block model.Block) int {
	total := 1
	for _, child := range block.Common().Children {
		total += CountBlocks(child)
	}
	return total
}
