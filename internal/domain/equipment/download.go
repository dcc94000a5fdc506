package equipment

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
)

const (
	DocumentPDF = "pdf"
	DocumentDoc = "doc"
)

var documentMIMETypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Download describes a spec sheet or brochure attached to a machine. The file
// itself travels inline in URL as a data: URL.
type Download struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Size     string `json:"size"`
	Uploaded string `json:"uploaded"`
}

func NewDownload(filename string, data []byte, now time.Time) (Download, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	ext := strings.ToLower(filepath.Ext(name))

	mimeType, ok := documentMIMETypes[ext]
	if !ok || name == "" {
		return Download{}, errors.ErrUnsupportedDocument
	}

	docType := DocumentDoc
	if ext == ".pdf" {
		docType = DocumentPDF
	}

	return Download{
		Name:     name,
		URL:      "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Type:     docType,
		Size:     fmt.Sprintf("%.2f MB", float64(len(data))/1048576),
		Uploaded: now.Format("02/01/2006"),
	}, nil
}

// Payload decodes the inline file content.
func (d Download) Payload() ([]byte, error) {
	_, encoded, ok := strings.Cut(d.URL, ";base64,")
	if !ok {
		return nil, fmt.Errorf("download %q has no inline payload", d.Name)
	}
	return base64.StdEncoding.DecodeString(encoded)
}
