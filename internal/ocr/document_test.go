package ocr

import (
	"strings"
	"testing"
)

const sampleTSV = `level	page_num	block_num	par_num	line_num	word_num	left	top	width	height	conf	text
1	1	0	0	0	0	0	0	600	800	-1
2	1	1	0	0	0	10	10	580	100	-1
4	1	1	1	1	0	10	10	580	40	-1
5	1	1	1	1	1	10	10	120	40	96.5	ANNUAL
5	1	1	1	1	2	140	10	110	40	95.0	TECH
5	1	1	1	1	3	260	10	130	40	93.5	SUMMIT
5	1	1	1	2	1	10	60	90	40	91.0	2025
2	1	2	0	0	0	10	200	580	60	-1
5	1	2	1	1	1	10	200	100	40	88.0	Venue:
5	1	2	1	1	2	120	200	200	40	90.0	City
5	1	2	1	1	3	330	200	120	40	89.0	Hall
`

func TestParseTSVGrouping(t *testing.T) {
	doc := parseTSV(sampleTSV)

	if len(doc.Pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(doc.Pages))
	}
	page := doc.Pages[0]
	if len(page.Blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(page.Blocks))
	}
	if len(page.Blocks[0].Lines) != 2 {
		t.Errorf("block 0 lines = %d, want 2", len(page.Blocks[0].Lines))
	}
	if len(page.Blocks[0].Lines[0].Words) != 3 {
		t.Errorf("line 0 words = %d, want 3", len(page.Blocks[0].Lines[0].Words))
	}
	if w := page.Blocks[0].Lines[0].Words[0]; w.Text != "ANNUAL" || w.Confidence != 96.5 {
		t.Errorf("first word = %+v", w)
	}
}

func TestFlattenGroupSeparators(t *testing.T) {
	doc := parseTSV(sampleTSV)
	flat := doc.Flatten()

	wantLines := []string{"ANNUAL TECH SUMMIT", "2025", "", "Venue: City Hall"}
	gotLines := strings.Split(strings.TrimRight(flat, "\n"), "\n")
	if len(gotLines) != len(wantLines) {
		t.Fatalf("lines = %q, want %q", gotLines, wantLines)
	}
	for i := range wantLines {
		if gotLines[i] != wantLines[i] {
			t.Errorf("line %d = %q, want %q", i, gotLines[i], wantLines[i])
		}
	}
}

func TestMeanWordConfidence(t *testing.T) {
	doc := parseTSV(sampleTSV)
	got := doc.MeanWordConfidence()
	// (96.5+95.0+93.5+91.0+88.0+90.0+89.0)/7/100
	want := float32(643.0 / 7.0 / 100.0)
	if diff := got - want; diff > 0.001 || diff < -0.001 {
		t.Errorf("mean confidence = %v, want %v", got, want)
	}

	if (Document{}).MeanWordConfidence() != 0 {
		t.Error("empty document should have zero confidence")
	}
}

func TestParseTSVSkipsMalformedRows(t *testing.T) {
	tsv := "level\tpage\n5\t1\tbroken\n" + "not a tsv row at all\n"
	doc := parseTSV(tsv)
	if len(doc.Pages) != 0 {
		t.Errorf("expected empty document, got %+v", doc)
	}
}

func TestHeuristicConfidenceSignals(t *testing.T) {
	rich := heuristicConfidence("Date: March 5, 2025 Time: 10:00 AM Contact: 9876543210")
	poor := heuristicConfidence("xxxx")
	if rich <= poor {
		t.Errorf("expected richer text to score higher: %v vs %v", rich, poor)
	}
}
