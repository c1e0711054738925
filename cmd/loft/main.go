// Package main runs a headless Loft demo. It mounts a small widget tree,
// drives a few frames with synthetic input and prints the recorded draw
// commands, which is useful for inspecting retained-mode output without a
// window backend.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-loft/loft/cmd/loft/internal/config"
	"github.com/go-loft/loft/pkg/app"
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/geometry"
	"github.com/go-loft/loft/pkg/theme"
	"github.com/go-loft/loft/pkg/widgets"
)

func main() {
	ticks := flag.Int("ticks", 3, "frames to run after input")
	verbose := flag.Bool("v", false, "print every draw command")
	flag.Parse()

	if err := run(*ticks, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "loft: %v\n", err)
		os.Exit(1)
	}
}

func run(ticks int, verbose bool) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		root, err = os.Getwd()
		if err != nil {
			return err
		}
	}

	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}

	palette := theme.DefaultPalette()
	if resolved.PalettePath != "" {
		palette, err = theme.LoadPalette(resolved.PalettePath)
		if err != nil {
			return err
		}
	}

	out := display.NewListDisplay()
	var check *widgets.Checkbox

	a, err := app.New(theme.NewSlate(palette), out, func(thm theme.Theme, uctx core.UpdateContext, gctx core.GraphicsContext) core.WidgetChildren {
		container := widgets.NewContainer()
		margins := widgets.NewMargins(geometry.UniformSideOffsets(16))
		margins.SetRect(geometry.RectFromLTWH(0, 0, resolved.Width, resolved.Height))

		stack := widgets.NewVStack(widgets.VStackItem{BottomMargin: 8})

		title := widgets.NewLabel(resolved.AppName, geometry.Offset{}, thm, gctx)
		check = widgets.NewCheckbox(false, false, geometry.Offset{}, thm, uctx, gctx)
		button := widgets.NewButton("Quit", theme.ButtonPrimary, false, geometry.Offset{}, thm, uctx, gctx)

		stack.Push(nil, title)
		stack.Push(nil, check)
		stack.Push(nil, button)

		margins.Push(stack)
		container.Add(margins)
		container.Add(stack)
		container.Add(title)
		container.Add(check)
		container.Add(button)
		return container
	}, app.Options{
		Name:       resolved.AppName,
		WindowSize: geometry.Size{Width: resolved.Width, Height: resolved.Height},
		Scale:      resolved.Scale,
		FontSize:   resolved.FontSize,
		Warmup:     2,
	})
	if err != nil {
		return err
	}

	// Toggle the checkbox with a synthetic click at its center.
	center := check.MouseBounds().Center()
	a.PointerMoved(center, core.KeyModifiers{})
	a.PointerPressed(core.MouseButtonLeft, core.KeyModifiers{})
	a.Tick()
	a.PointerReleased(core.MouseButtonLeft, core.KeyModifiers{})
	for range ticks {
		a.Tick()
	}

	fmt.Printf("%s: %d groups, %d commands, checkbox checked=%v\n",
		resolved.AppName, out.GroupCount(), len(out.Commands()), check.Checked.Get())
	if verbose {
		for i, cmd := range out.Commands() {
			fmt.Printf("%3d: %#v\n", i, cmd)
		}
	}
	return nil
}
