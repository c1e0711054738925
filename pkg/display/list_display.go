package display

import "sort"

// ListDisplay is the in-memory reference Display. It retains command
// groups and can flatten them into a single ordered command list, which is
// what a backend would rasterize and what tests inspect.
type ListDisplay struct {
	groups map[GroupID]*retainedGroup
	order  []GroupID
	nextID GroupID
}

type retainedGroup struct {
	cmds []Command
	opts GroupOptions
	seq  int
}

// NewListDisplay creates an empty in-memory display.
func NewListDisplay() *ListDisplay {
	return &ListDisplay{groups: make(map[GroupID]*retainedGroup)}
}

// PushGroup retains a new command group and returns its id.
func (d *ListDisplay) PushGroup(cmds []Command, opts GroupOptions) GroupID {
	d.nextID++
	id := d.nextID
	d.groups[id] = &retainedGroup{
		cmds: append([]Command(nil), cmds...),
		opts: opts,
		seq:  len(d.order),
	}
	d.order = append(d.order, id)
	return id
}

// RepaintGroup replaces the commands of an existing group in place.
func (d *ListDisplay) RepaintGroup(id GroupID, cmds []Command) {
	g, ok := d.groups[id]
	if !ok {
		return
	}
	g.cmds = append(g.cmds[:0], cmds...)
}

// RemoveGroup discards a retained group.
func (d *ListDisplay) RemoveGroup(id GroupID) {
	delete(d.groups, id)
}

// GroupCount returns the number of retained groups.
func (d *ListDisplay) GroupCount() int {
	return len(d.groups)
}

// Commands flattens all retained groups into one command list, ordered by
// z-order then submission order.
func (d *ListDisplay) Commands() []Command {
	live := make([]*retainedGroup, 0, len(d.groups))
	for _, id := range d.order {
		if g, ok := d.groups[id]; ok {
			live = append(live, g)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		if live[i].opts.ZOrder != live[j].opts.ZOrder {
			return live[i].opts.ZOrder < live[j].opts.ZOrder
		}
		return live[i].seq < live[j].seq
	})
	var out []Command
	for _, g := range live {
		out = append(out, g.cmds...)
	}
	return out
}
