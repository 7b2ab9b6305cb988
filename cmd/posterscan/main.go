package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/posterscan/posterscan/constants"
	"github.com/posterscan/posterscan/internal/common"
	"github.com/posterscan/posterscan/internal/entity"
	"github.com/posterscan/posterscan/internal/export"
	"github.com/posterscan/posterscan/internal/extract"
	"github.com/posterscan/posterscan/internal/ocr"
	"github.com/posterscan/posterscan/internal/pipeline"
	"github.com/posterscan/posterscan/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		image  = flag.String("image", "", "single poster image to process")
		dir    = flag.String("dir", "", "directory of poster images to process")
		format = flag.String("format", "json", "output format: json, csv, or xlsx")
		out    = flag.String("out", "", "output file path (default: stdout; required for xlsx over a directory)")
		inmem  = flag.Bool("inmem", false, "use an in-memory SQLite database")
	)
	flag.Parse()

	if (*image == "") == (*dir == "") {
		printError("Error: exactly one of --image or --dir is required\n")
		os.Exit(1)
	}
	switch *format {
	case "json", "csv", "xlsx":
	default:
		printError("Error: --format must be json, csv, or xlsx\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbPath := cfg.Database.Path
	if *inmem {
		dbPath = ":memory:"
	}
	db, err := repository.Open(ctx, dbPath, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := repository.NewExtractionRepository(db)
	recognizer := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)
	engine := extract.NewEngine(logger)
	processor := pipeline.NewProcessor(recognizer, engine, repo, cfg.OCR.Timeout, logger)
	exporter := export.NewService(logger)

	paths, err := collectImages(*image, *dir)
	if err != nil {
		logger.Error("failed to collect images", "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		printError("Error: no image files found\n")
		os.Exit(1)
	}

	var extractions []entity.Extraction
	for _, p := range paths {
		ex, err := processor.Run(ctx, p)
		if err != nil {
			logger.Error("failed to persist extraction", "path", p, "error", err)
			os.Exit(1)
		}
		extractions = append(extractions, *ex)
	}

	output, err := render(exporter, *format, extractions)
	if err != nil {
		logger.Error("failed to render output", "format", *format, "error", err)
		os.Exit(1)
	}

	if *out == "" {
		if *format == "xlsx" {
			printError("Error: --out is required for xlsx output\n")
			os.Exit(1)
		}
		fmt.Println(string(output))
		return
	}
	if err := os.WriteFile(*out, output, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("output written", "path", *out, "posters", len(extractions))
}

// collectImages resolves the flag pair into a sorted list of image paths.
func collectImages(image, dir string) ([]string, error) {
	if image != "" {
		return []string{image}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if constants.IsImageExt(ext) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func render(exporter *export.Service, format string, extractions []entity.Extraction) ([]byte, error) {
	switch format {
	case "xlsx":
		return exporter.ExportExtractionsXLSX(extractions)
	case "csv":
		var parts []string
		for i := range extractions {
			b, err := exporter.RenderCSV(extractions[i].Record)
			if err != nil {
				return nil, err
			}
			if i > 0 {
				// keep a single header row across posters
				lines := strings.SplitN(string(b), "\n", 2)
				if len(lines) == 2 {
					b = []byte(lines[1])
				}
			}
			parts = append(parts, string(b))
		}
		return []byte(strings.Join(parts, "")), nil
	default:
		records := make([]entity.PosterRecord, 0, len(extractions))
		for i := range extractions {
			b, err := exporter.RenderJSON(extractions[i].Record)
			if err != nil {
				return nil, err
			}
			if err := export.ValidateRecordJSON(b); err != nil {
				return nil, err
			}
			records = append(records, extractions[i].Record)
		}
		if len(records) == 1 {
			return exporter.RenderJSON(records[0])
		}
		return json.MarshalIndent(records, "", "  ")
	}
}
