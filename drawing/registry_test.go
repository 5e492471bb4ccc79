package drawing

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

// mockBackend records the calls it receives.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	viewBox    Rect
	ops        []string
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(viewBox Rect) error {
	b.beginCalls++
	b.viewBox = viewBox
	b.ops = b.ops[:0]
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) FillPath(_ *gg.Path, _ Brush) { b.ops = append(b.ops, "fill") }

func (b *mockBackend) StrokePath(_ *gg.Path, _ Brush, _ Stroke) {
	b.ops = append(b.ops, "stroke")
}

func (b *mockBackend) DrawText(_ string, _, _, _ float64, _ Anchor, _ Brush) {
	b.ops = append(b.ops, "text")
}

func (b *mockBackend) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, strings.Join(b.ops, ","))
	return int64(n), err
}

// withFormats swaps in an empty format registry for the duration of a test.
func withFormats(t *testing.T) {
	t.Helper()
	formatsMu.Lock()
	saved := formats
	formats = make(map[string]Format)
	formatsMu.Unlock()
	t.Cleanup(func() {
		formatsMu.Lock()
		formats = saved
		formatsMu.Unlock()
	})
}

func mockFormat(name string) Format {
	return Format{
		Name: name,
		New: func(int, int) WriterBackend {
			return newMockBackend(name)
		},
	}
}

func TestRegisterAndLookupFormat(t *testing.T) {
	withFormats(t)
	RegisterFormat(mockFormat("ops"))

	f, err := LookupFormat("OPS")
	if err != nil {
		t.Fatalf("LookupFormat failed: %v", err)
	}
	if f.Ext != "ops" {
		t.Errorf("Ext = %q, want it to default to the name", f.Ext)
	}
	mock, ok := f.New(10, 12).(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "ops" {
		t.Errorf("got name %q, want %q", mock.name, "ops")
	}
}

func TestLookupFormatUnknown(t *testing.T) {
	withFormats(t)
	RegisterFormat(mockFormat("svg"))
	RegisterFormat(mockFormat("png"))

	_, err := LookupFormat("pdf")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("error = %v, want it to wrap ErrUnknownFormat", err)
	}
	if !strings.Contains(err.Error(), "png, svg") {
		t.Errorf("error = %q, want it to list the formats", err)
	}
}

func TestRegisterFormatPanics(t *testing.T) {
	withFormats(t)

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil constructor", func() { RegisterFormat(Format{Name: "nil"}) }},
		{"empty name", func() { RegisterFormat(Format{New: mockFormat("x").New}) }},
		{"duplicate", func() {
			RegisterFormat(mockFormat("dup"))
			RegisterFormat(mockFormat("dup"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestFormatsSorted(t *testing.T) {
	withFormats(t)
	for _, name := range []string{"svg", "png", "ansi"} {
		RegisterFormat(mockFormat(name))
	}

	got := Formats()
	want := []string{"ansi", "png", "svg"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}
