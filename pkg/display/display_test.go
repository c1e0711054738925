package display

import (
	"testing"

	"github.com/go-loft/loft/pkg/geometry"
)

func fill(x float64) Command {
	return FillRect{Rect: geometry.RectFromLTWH(x, 0, 1, 1)}
}

func TestListDisplay_PushRepaintRemove(t *testing.T) {
	d := NewListDisplay()

	id := d.PushGroup([]Command{fill(1)}, GroupOptions{})
	if d.GroupCount() != 1 {
		t.Fatalf("group count: got %d", d.GroupCount())
	}

	d.RepaintGroup(id, []Command{fill(2), fill(3)})
	if got := len(d.Commands()); got != 2 {
		t.Fatalf("commands after repaint: got %d", got)
	}

	d.RemoveGroup(id)
	if d.GroupCount() != 0 {
		t.Fatalf("group count after remove: got %d", d.GroupCount())
	}
	if got := len(d.Commands()); got != 0 {
		t.Fatalf("commands after remove: got %d", got)
	}
}

func TestListDisplay_ZOrder(t *testing.T) {
	d := NewListDisplay()

	d.PushGroup([]Command{fill(1)}, GroupOptions{ZOrder: 1})
	d.PushGroup([]Command{fill(2)}, GroupOptions{ZOrder: 0})
	d.PushGroup([]Command{fill(3)}, GroupOptions{ZOrder: 0})

	cmds := d.Commands()
	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}
	want := []float64{2, 3, 1}
	for i, c := range cmds {
		if got := c.(FillRect).Rect.Left; got != want[i] {
			t.Errorf("command %d: got x=%g, want %g", i, got, want[i])
		}
	}
}

func TestCommandGroup_StartsDirty(t *testing.T) {
	d := NewListDisplay()
	var g CommandGroup

	if !g.Dirty() {
		t.Fatal("zero command group should start dirty")
	}

	built := 0
	g.PushWith(d, GroupOptions{}, func() []Command {
		built++
		return []Command{fill(1)}
	})
	if built != 1 {
		t.Fatalf("build calls: got %d, want 1", built)
	}
	if d.GroupCount() != 1 {
		t.Fatalf("group count: got %d", d.GroupCount())
	}
}

func TestCommandGroup_CleanFramesSkipBuild(t *testing.T) {
	d := NewListDisplay()
	var g CommandGroup

	built := 0
	build := func() []Command {
		built++
		return []Command{fill(1)}
	}

	g.PushWith(d, GroupOptions{}, build)
	g.PushWith(d, GroupOptions{}, build)
	g.PushWith(d, GroupOptions{}, build)
	if built != 1 {
		t.Fatalf("build calls on clean frames: got %d, want 1", built)
	}

	g.Repaint()
	g.PushWith(d, GroupOptions{}, build)
	if built != 2 {
		t.Fatalf("build calls after repaint: got %d, want 2", built)
	}
	// Repaint reuses the existing group rather than pushing a second one.
	if d.GroupCount() != 1 {
		t.Fatalf("group count: got %d, want 1", d.GroupCount())
	}
}

func TestCommandGroup_Remove(t *testing.T) {
	d := NewListDisplay()
	var g CommandGroup

	g.PushWith(d, GroupOptions{}, func() []Command { return []Command{fill(1)} })
	g.Remove(d)

	if d.GroupCount() != 0 {
		t.Fatalf("group count after remove: got %d", d.GroupCount())
	}
	if !g.Dirty() {
		t.Fatal("removed group should be dirty again")
	}

	// Pushing after removal creates a fresh group.
	g.PushWith(d, GroupOptions{}, func() []Command { return []Command{fill(2)} })
	if d.GroupCount() != 1 {
		t.Fatalf("group count after re-push: got %d", d.GroupCount())
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#336699")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 0xFF336699 {
		t.Fatalf("got %08X", uint32(c))
	}

	c, err = ParseColor("80FFFFFF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 0x80FFFFFF {
		t.Fatalf("got %08X", uint32(c))
	}

	if _, err := ParseColor("red"); err == nil {
		t.Fatal("expected error for non-hex input")
	}
	if _, err := ParseColor("#12345"); err == nil {
		t.Fatal("expected error for wrong length")
	}
}

func TestColor_String(t *testing.T) {
	c := RGBA8(0x33, 0x66, 0x99, 0x80)
	if got := c.String(); got != "#80336699" {
		t.Fatalf("got %q", got)
	}
}
