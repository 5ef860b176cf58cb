package engine

import (
	"testing"

	"github.com/jackzampolin/outline/internal/layout"
)

func titleLine(page int, text string, size, y float64) ClassifiedLine {
	return ClassifiedLine{
		TextLine: layout.TextLine{
			Page:     page,
			Text:     text,
			FontSize: size,
			BBox:     layout.BBox{Y0: y, Y1: y + size},
		},
	}
}

func TestFindTitle(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("joins max-size cluster in vertical order", func(t *testing.T) {
		lines := []ClassifiedLine{
			titleLine(1, "Annual", 24, 10),
			titleLine(1, "Report", 24, 30),
			titleLine(1, "prepared by the committee", 12, 50),
			titleLine(1, "2024", 24, 70),
		}
		// 2024 would be blocked upstream; FindTitle only sees what
		// survives the filter, so feed it unblocked text instead.
		lines[3].Text = "Edition"

		got := FindTitle(cfg, lines)
		want := "Annual Report Edition"
		if got != want {
			t.Errorf("FindTitle() = %q, want %q", got, want)
		}
	})

	t.Run("caps concatenation at three lines", func(t *testing.T) {
		lines := []ClassifiedLine{
			titleLine(1, "One", 24, 10),
			titleLine(1, "Two", 24, 20),
			titleLine(1, "Three", 24, 30),
			titleLine(1, "Four", 24, 40),
		}
		got := FindTitle(cfg, lines)
		if got != "One Two Three" {
			t.Errorf("FindTitle() = %q, want %q", got, "One Two Three")
		}
	})

	t.Run("tolerates half-point size differences", func(t *testing.T) {
		lines := []ClassifiedLine{
			titleLine(1, "Big", 24, 10),
			titleLine(1, "Almost", 23.6, 20),
			titleLine(1, "Small", 23.5, 30),
		}
		got := FindTitle(cfg, lines)
		if got != "Big Almost" {
			t.Errorf("FindTitle() = %q, want %q", got, "Big Almost")
		}
	})

	t.Run("vertical order wins over input order", func(t *testing.T) {
		lines := []ClassifiedLine{
			titleLine(1, "Second", 24, 40),
			titleLine(1, "First", 24, 10),
		}
		got := FindTitle(cfg, lines)
		if got != "First Second" {
			t.Errorf("FindTitle() = %q, want %q", got, "First Second")
		}
	})

	t.Run("empty first page yields empty title", func(t *testing.T) {
		lines := []ClassifiedLine{
			titleLine(2, "Heading", 24, 10),
		}
		if got := FindTitle(cfg, lines); got != "" {
			t.Errorf("FindTitle() = %q, want empty", got)
		}
	})

	t.Run("no lines at all", func(t *testing.T) {
		if got := FindTitle(cfg, nil); got != "" {
			t.Errorf("FindTitle() = %q, want empty", got)
		}
	})
}
