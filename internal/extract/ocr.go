package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine recognizes text in page images with a local Tesseract
// install. Each Recognize call uses a fresh client; gosseract clients are
// not safe to reuse across images with different settings.
type TesseractEngine struct {
	language string
}

func NewTesseractEngine(language string) *TesseractEngine {
	if language == "" {
		language = "eng"
	}
	return &TesseractEngine{language: language}
}

func (e *TesseractEngine) Recognize(img image.Image) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	// Grayscale plus a light sharpen measurably improves recognition on
	// 200 DPI scans of printed specifications.
	processed := imaging.Sharpen(imaging.Grayscale(img), 0.8)

	var buf bytes.Buffer
	if err := png.Encode(&buf, processed); err != nil {
		return "", fmt.Errorf("failed to encode page image: %w", err)
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to recognize text: %w", err)
	}

	return text, nil
}

func checkOCR() error {
	return safeCall(func() error {
		client := gosseract.NewClient()
		defer client.Close()

		if v := client.Version(); v == "" {
			return fmt.Errorf("tesseract not installed")
		}
		return client.SetLanguage("eng")
	})
}
