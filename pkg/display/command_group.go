package display

// CommandGroup tracks one retained command group across frames and only
// resubmits commands when flagged dirty. A zero CommandGroup is ready to
// use and starts dirty, so the first draw always submits.
type CommandGroup struct {
	id     GroupID
	pushed bool
	clean  bool
}

// Repaint flags the group so the next PushWith resubmits its commands.
func (g *CommandGroup) Repaint() {
	g.clean = false
}

// Dirty reports whether the next PushWith will resubmit.
func (g *CommandGroup) Dirty() bool {
	return !g.clean
}

// PushWith submits the group to the display if it is dirty. The build
// function is only invoked when commands actually need to be emitted, so
// clean frames cost nothing.
func (g *CommandGroup) PushWith(d Display, opts GroupOptions, build func() []Command) {
	if g.clean {
		return
	}
	cmds := build()
	if g.pushed {
		d.RepaintGroup(g.id, cmds)
	} else {
		g.id = d.PushGroup(cmds, opts)
		g.pushed = true
	}
	g.clean = true
}

// Remove discards the retained group from the display. The group reverts
// to its initial dirty, unpushed state.
func (g *CommandGroup) Remove(d Display) {
	if g.pushed {
		d.RemoveGroup(g.id)
		g.pushed = false
	}
	g.clean = false
}
