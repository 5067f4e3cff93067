package render

import (
	"testing"

	"github.com/ijuttt/imgsearch/internal/model"
)

func TestScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.987, "Score: 0.987"},
		{1, "Score: 1.000"},
		{0.12345, "Score: 0.123"},
		{12.3456, "Score: 12.346"},
	}

	for _, tt := range tests {
		if got := Score(tt.score); got != tt.want {
			t.Errorf("Score(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCaptions(t *testing.T) {
	r := model.ImageResult{ImageID: 12}

	if got := DatasetCaption(12); got != "Image 12.jpg" {
		t.Errorf("DatasetCaption = %q", got)
	}
	if got := DatasetHeading(31); got != "All Dataset Images (31 images)" {
		t.Errorf("DatasetHeading = %q", got)
	}
	if got := SearchAlt(r); got != "Search result 12" {
		t.Errorf("SearchAlt = %q", got)
	}
	if got := DatasetAlt(r); got != "Dataset image 12" {
		t.Errorf("DatasetAlt = %q", got)
	}
}

func TestResultLine(t *testing.T) {
	if got := ResultLine("Score: 0.987", "/i/1.jpg", false); got != "Score: 0.987\t/i/1.jpg" {
		t.Errorf("plain = %q", got)
	}
	colored := ResultLine("a", "b", true)
	if colored != Bold+"a"+Reset+"\t"+Cyan+"b"+Reset {
		t.Errorf("colored = %q", colored)
	}
}
