package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/posterscan/posterscan/constants"
)

// Config controls how the tesseract collaborator is invoked.
type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string

	PSM int // page segmentation mode; 0 leaves tesseract's default
	OEM int // 1 = LSTM; leave 0 to use default
}

// Result is one OCR pass over a poster image.
type Result struct {
	Text       string   // flattened per the Document grouping rules
	Document   Document // structured pages/blocks/lines/words
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32 // blended word-level + text-shape confidence, 0..1
}

// Extractor wraps the tesseract binary. It is the one stateful, expensive
// collaborator in the system: construct once and reuse across requests.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Recognize runs tesseract in TSV mode over one image and returns the
// structured document, its flattened text, and a confidence estimate.
func (e *Extractor) Recognize(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	ext := constants.NormalizeExt(filepath.Ext(path))
	if !constants.IsImageExt(ext) {
		e.logger.Error("unsupported ocr extension", "extension", ext)
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}
	if _, err := os.Stat(path); err != nil {
		return Result{}, fmt.Errorf("open image: %w", err)
	}

	tsv, warns, err := e.tesseractTSV(ctx, path)
	if err != nil {
		return Result{Warnings: warns}, err
	}

	doc := parseTSV(tsv)
	txt := doc.Flatten()

	// blend: weight tesseract's own word confidence higher when present
	wordConf := doc.MeanWordConfidence()
	heurConf := heuristicConfidence(txt)
	var conf float32
	if wordConf > 0 {
		conf = 0.7*wordConf + 0.3*heurConf
	} else {
		conf = heurConf
	}
	if conf > 1.0 {
		conf = 1.0
	}

	res := Result{
		Text:       txt,
		Document:   doc,
		Language:   e.cfg.TesseractLang,
		Duration:   time.Since(start),
		Warnings:   warns,
		Confidence: conf,
	}
	e.logger.Debug("ocr done",
		"path", path,
		"chars", len(txt),
		"confidence", conf,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func (e *Extractor) tesseractTSV(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}
