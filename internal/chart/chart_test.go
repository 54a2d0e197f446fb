package chart

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lexstat/internal/freq"
)

func sampleData() Data {
	return Data{
		TopWords: []freq.Entry[string]{
			{Key: "the", Count: 4},
			{Key: "cat", Count: 2},
			{Key: "sat", Count: 1},
		},
		SentenceLengths:       []int{3, 5, 8, 8},
		Bins:                  20,
		AverageSentenceLength: 6,
	}
}

func TestNewModes(t *testing.T) {
	tests := []struct {
		mode string
		want any
	}{
		{mode: "terminal", want: &Terminal{}},
		{mode: "", want: &Terminal{}},
		{mode: "PNG", want: &PNG{}},
		{mode: "none", want: Nop{}},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			r, err := New(tt.mode, Options{Out: &bytes.Buffer{}, OutputPath: filepath.Join(t.TempDir(), "c.png")})
			if err != nil {
				t.Fatalf("New(%q) returned error: %v", tt.mode, err)
			}
			switch tt.want.(type) {
			case *Terminal:
				if _, ok := r.(*Terminal); !ok {
					t.Fatalf("got %T want *Terminal", r)
				}
			case *PNG:
				if _, ok := r.(*PNG); !ok {
					t.Fatalf("got %T want *PNG", r)
				}
			case Nop:
				if _, ok := r.(Nop); !ok {
					t.Fatalf("got %T want Nop", r)
				}
			}
		})
	}
}

func TestNewUnknownMode(t *testing.T) {
	_, err := New("svg", Options{})
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestNewPNGRequiresPath(t *testing.T) {
	if _, err := New(ModePNG, Options{}); err == nil {
		t.Fatal("expected error for missing output path")
	}
}

func TestTerminalRender(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminal(&buf, 8)
	if err := r.Render(context.Background(), sampleData()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		wordsTitle,
		histogramTitle,
		"Average sentence length: 6.00 words",
		"the " + strings.Repeat(barGlyph, 8) + " 4",
		"cat " + strings.Repeat(barGlyph, 4) + " 2",
		"sat " + strings.Repeat(barGlyph, 2) + " 1",
		"[7.8, 8.0] " + strings.Repeat(barGlyph, 8) + " 2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no colour for non-terminal writer")
	}
}

func TestTerminalRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminal(&buf, 0).Render(context.Background(), Data{}); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "(no words)") {
		t.Fatalf("expected empty word panel, got:\n%s", out)
	}
	if !strings.Contains(out, "Average sentence length: 0.00 words") {
		t.Fatalf("expected zero caption, got:\n%s", out)
	}
}

func TestTerminalBarMinimumWidth(t *testing.T) {
	r := NewTerminal(&bytes.Buffer{}, 10)
	if got := r.bar(1, 1000, 0); got != barGlyph {
		t.Fatalf("bar(1, 1000) = %q want single glyph", got)
	}
	if got := r.bar(0, 1000, 0); got != "" {
		t.Fatalf("bar(0, 1000) = %q want empty", got)
	}
}

func TestPNGRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "chart.png")
	r := &PNG{Path: path, Width: 600, Height: 300}
	if err := r.Render(context.Background(), sampleData()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open chart: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != 600 || cfg.Height != 300 {
		t.Fatalf("got %dx%d want 600x300", cfg.Width, cfg.Height)
	}
}

func TestPNGRenderDefaultSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.png")
	if err := (&PNG{Path: path}).Render(context.Background(), sampleData()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open chart: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != defaultPNGWidth || cfg.Height != defaultPNGHeight {
		t.Fatalf("got %dx%d want %dx%d", cfg.Width, cfg.Height, defaultPNGWidth, defaultPNGHeight)
	}
}

func TestPNGRenderEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := (&PNG{Path: path}).Render(context.Background(), Data{}); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected chart file: %v", err)
	}
}

func TestRenderHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	renderers := []Renderer{Nop{}, NewTerminal(&bytes.Buffer{}, 0), &PNG{Path: filepath.Join(t.TempDir(), "x.png")}}
	for _, r := range renderers {
		if err := r.Render(ctx, sampleData()); !errors.Is(err, context.Canceled) {
			t.Fatalf("%T: expected context.Canceled, got %v", r, err)
		}
	}
}
