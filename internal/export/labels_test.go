package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/piwi3910/PatternCut/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, buildTestReport())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyPlan(t *testing.T) {
	dir := t.TempDir()
	err := ExportLabels(filepath.Join(dir, "empty.pdf"), Report{})
	if err == nil {
		t.Fatal("expected error for empty plan, got nil")
	}
}

func TestWriteLabels(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLabels(&buf, buildTestReport()); err != nil {
		t.Fatalf("WriteLabels returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestReport())

	// devant, dos, manche x2, doublure
	if len(labels) != 5 {
		t.Fatalf("expected 5 labels, got %d", len(labels))
	}
	if labels[0].Name != "devant" || labels[0].PieceID != "piece-0" {
		t.Errorf("unexpected first label %+v", labels[0])
	}
	if labels[0].Width != 25 || labels[0].Height != 100 {
		t.Errorf("wrong dimensions: got %.0fx%.0f, want 25x100", labels[0].Width, labels[0].Height)
	}

	sleeves := 0
	for _, l := range labels {
		if l.Name == "manche" {
			sleeves++
			if l.Copies != 2 {
				t.Errorf("sleeve label should report 2 copies, got %d", l.Copies)
			}
			if l.Copy != sleeves {
				t.Errorf("expected copy %d, got %d", sleeves, l.Copy)
			}
		}
		if l.Fabric != "coton" {
			t.Errorf("expected fabric coton, got %q", l.Fabric)
		}
	}
	if sleeves != 2 {
		t.Errorf("expected 2 sleeve labels, got %d", sleeves)
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	info := LabelInfo{PieceID: "piece-2", Name: "manche", Copy: 1, Copies: 2, Width: 24, Height: 60}
	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["width_cm"] != 24.0 {
		t.Errorf("expected width_cm 24, got %v", decoded["width_cm"])
	}
	if _, ok := decoded["fabric"]; ok {
		t.Error("empty fabric should be omitted")
	}
}

func TestCollectLabelInfos_EmptyPlan(t *testing.T) {
	if labels := CollectLabelInfos(Report{Plan: model.CuttingPlan{}}); len(labels) != 0 {
		t.Errorf("expected no labels, got %d", len(labels))
	}
}

func TestFitText_TrimsWholeRunes(t *testing.T) {
	width := func(s string) float64 { return float64(utf8.RuneCountInString(s)) }

	got := fitText("Manche brodée à l'épaule", 10, width)
	if !utf8.ValidString(got) {
		t.Fatalf("fitText produced invalid UTF-8: %q", got)
	}
	if got != "Manche ..." {
		t.Errorf("expected %q, got %q", "Manche ...", got)
	}

	got = fitText("éééééééééé", 6, width)
	if got != "ééé..." {
		t.Errorf("expected %q, got %q", "ééé...", got)
	}

	if got := fitText("dos", 10, width); got != "dos" {
		t.Errorf("short text should be unchanged, got %q", got)
	}
}
