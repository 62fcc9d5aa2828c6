package source

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/quantself/step-report/internal/domain"
)

// extractSingleFile returns the contents of the only file in a zip archive.
// The source contract is a compressed archive holding exactly one record
// file; anything else is a parse failure.
func extractSingleFile(archive []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("%w: open archive: %v", domain.ErrParse, err)
	}

	var files []*zip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		files = append(files, f)
	}
	if len(files) != 1 {
		return nil, fmt.Errorf("%w: archive holds %d files, want exactly 1", domain.ErrParse, len(files))
	}

	rc, err := files[0].Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrParse, files[0].Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrParse, files[0].Name, err)
	}
	return data, nil
}
