package ocr

import (
	"strconv"
	"strings"
)

// Document is the recognized text of one poster image, grouped the way the
// OCR engine reads it: pages hold blocks, blocks hold lines, lines hold
// words. Reading order is preserved throughout; downstream extraction leans
// on line order as its primary positional signal.
type Document struct {
	Pages []Page
}

// Page is one page of recognized text.
type Page struct {
	Number int
	Blocks []Block
}

// Block is a positional group of lines (a tesseract block).
type Block struct {
	Lines []Line
}

// Line is an ordered sequence of recognized words.
type Line struct {
	Words []Word
}

// Word is a single recognized token with the engine's confidence in 0..100.
type Word struct {
	Text       string
	Confidence float64
}

// Flatten joins the document into a single text blob: words separated by
// spaces, lines by newlines, and blocks by a blank line.
func (d Document) Flatten() string {
	var sb strings.Builder
	for _, page := range d.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				for i, w := range line.Words {
					if i > 0 {
						sb.WriteByte(' ')
					}
					sb.WriteString(w.Text)
				}
				sb.WriteByte('\n')
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// MeanWordConfidence returns the average per-word confidence scaled to 0..1,
// or 0 when the document holds no words.
func (d Document) MeanWordConfidence() float32 {
	var sum float64
	var n int
	for _, page := range d.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				for _, w := range line.Words {
					sum += w.Confidence
					n++
				}
			}
		}
	}
	if n == 0 {
		return 0
	}
	return float32(sum / float64(n) / 100.0)
}

// parseTSV builds a Document from tesseract TSV output. TSV rows carry a
// level column (1=page, 2=block, 3=paragraph, 4=line, 5=word); only word
// rows contribute text, the rest just open new groups. Paragraph breaks are
// folded into line breaks.
func parseTSV(tsv string) Document {
	const (
		colLevel = 0
		colPage  = 1
		colBlock = 2
		colPar   = 3
		colLine  = 4
		colConf  = 10
		colText  = 11
	)

	var doc Document
	lastPage, lastBlock := -1, -1
	lastPar, lastLine := -1, -1

	for i, row := range strings.Split(tsv, "\n") {
		if i == 0 || row == "" { // header / trailing newline
			continue
		}
		cols := strings.Split(row, "\t")
		if len(cols) < 12 {
			continue
		}
		level, err := strconv.Atoi(cols[colLevel])
		if err != nil || level != 5 {
			continue
		}
		text := strings.TrimSpace(cols[colText])
		if text == "" {
			continue
		}

		pageN, _ := strconv.Atoi(cols[colPage])
		blockN, _ := strconv.Atoi(cols[colBlock])
		parN, _ := strconv.Atoi(cols[colPar])
		lineN, _ := strconv.Atoi(cols[colLine])
		conf, _ := strconv.ParseFloat(cols[colConf], 64)
		if conf < 0 {
			conf = 0
		}

		if pageN != lastPage {
			doc.Pages = append(doc.Pages, Page{Number: pageN})
			lastPage, lastBlock, lastPar, lastLine = pageN, -1, -1, -1
		}
		page := &doc.Pages[len(doc.Pages)-1]

		if blockN != lastBlock {
			page.Blocks = append(page.Blocks, Block{})
			lastBlock, lastPar, lastLine = blockN, -1, -1
		}
		block := &page.Blocks[len(page.Blocks)-1]

		if parN != lastPar || lineN != lastLine {
			block.Lines = append(block.Lines, Line{})
			lastPar, lastLine = parN, lineN
		}
		line := &block.Lines[len(block.Lines)-1]

		line.Words = append(line.Words, Word{Text: text, Confidence: conf})
	}
	return doc
}
