package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-loft/loft/pkg/errors"
)

func TestParsePalette_OverridesDefaults(t *testing.T) {
	p, err := ParsePalette([]byte("primary: \"#FF0000\"\ntext: \"#80112233\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Primary != 0xFFFF0000 {
		t.Errorf("primary: got %v", p.Primary)
	}
	if p.Text != 0x80112233 {
		t.Errorf("text: got %v", p.Text)
	}
	// Unset colors keep their default values.
	if p.Surface != DefaultPalette().Surface {
		t.Errorf("surface should keep default, got %v", p.Surface)
	}
}

func TestParsePalette_InvalidColor(t *testing.T) {
	if _, err := ParsePalette([]byte("primary: notacolor\n")); err == nil {
		t.Fatal("expected error for invalid color")
	}
}

func TestLoadPalette(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	if err := os.WriteFile(path, []byte("danger: \"#AA0000\"\n"), 0o644); err != nil {
		t.Fatalf("writing palette: %v", err)
	}

	p, err := LoadPalette(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Danger != 0xFFAA0000 {
		t.Errorf("danger: got %v", p.Danger)
	}
}

func TestLoadPalette_Missing(t *testing.T) {
	_, err := LoadPalette(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var le *errors.LoftError
	if !stderrors.As(err, &le) {
		t.Fatalf("expected *errors.LoftError, got %T", err)
	}
	if le.Kind != errors.KindTheme {
		t.Errorf("kind: got %v", le.Kind)
	}
	if le.Op != "theme.LoadPalette" {
		t.Errorf("op: got %q", le.Op)
	}
}

func TestInteractionState(t *testing.T) {
	var s InteractionState

	s.Insert(InteractionPressed | InteractionHovered)
	if !s.Contains(InteractionPressed) || !s.Contains(InteractionHovered) {
		t.Fatal("inserted flags should be contained")
	}
	if s.Contains(InteractionFocused) {
		t.Fatal("focused flag should not be set")
	}

	s.Remove(InteractionPressed)
	if s.Contains(InteractionPressed) {
		t.Fatal("removed flag should not be contained")
	}
	if !s.Contains(InteractionHovered) {
		t.Fatal("remove must not clear other flags")
	}
}

func TestSlate_CheckboxHints(t *testing.T) {
	thm := DefaultTheme()
	painter := thm.Checkbox()

	size := painter.SizeHint(CheckboxState{}, nil)
	if size.Width != 20 || size.Height != 20 {
		t.Errorf("size hint: got %+v", size)
	}

	rect := CheckboxState{}.Rect.WithSize(size)
	paint := painter.PaintHint(rect)
	if paint.Width() != size.Width+6 || paint.Height() != size.Height+6 {
		t.Errorf("paint hint should include the focus ring, got %+v", paint)
	}
	if got := painter.MouseHint(rect); got != rect {
		t.Errorf("mouse hint should match the logical rect, got %+v", got)
	}
}

func TestSlate_CheckboxDraw(t *testing.T) {
	thm := DefaultTheme()
	painter := thm.Checkbox()

	plain := painter.Draw(CheckboxState{}, nil)
	checked := painter.Draw(CheckboxState{Checked: true}, nil)
	focused := painter.Draw(CheckboxState{Control: ControlState{
		Interaction: InteractionFocused,
	}}, nil)

	if len(checked) <= len(plain) {
		t.Errorf("checked draw should add checkmark commands: %d vs %d", len(checked), len(plain))
	}
	if len(focused) != len(plain)+1 {
		t.Errorf("focused draw should add one focus ring command: %d vs %d", len(focused), len(plain))
	}
}
