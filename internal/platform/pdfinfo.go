package platform

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFInfo summarizes a locally selected PDF for the pre-upload preview.
type PDFInfo struct {
	FilePath  string
	FileSize  int64
	PageCount int
}

// ReadPDFInfo inspects the file at path. It is informational only: the
// grading service remains the sole enforcement point for file validity, so a
// failure here must never block a submission.
func ReadPDFInfo(path string) (*PDFInfo, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat PDF: %w", err)
	}

	return &PDFInfo{
		FilePath:  path,
		FileSize:  stat.Size(),
		PageCount: r.NumPage(),
	}, nil
}
