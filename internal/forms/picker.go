package forms

// DismissWatcher lets the picker observe pointer interactions outside its
// bounding region. Watch returns a release func; the picker acquires the
// watch when its list opens and releases it when the list closes, so the
// watcher is never held while the list is shut.
type DismissWatcher interface {
	Watch(onOutside func()) (release func())
}

// DepartmentPicker is the custom multi-select behind the agent form's
// department field. Selected departments render as removable chips;
// removing a chip deletes directly from the selection without reopening
// the list.
type DepartmentPicker struct {
	watcher  DismissWatcher
	release  func()
	open     bool
	selected []string
	index    map[string]struct{}
}

// NewDepartmentPicker builds a closed picker. watcher may be nil when no
// outside-dismiss source exists (e.g. in tests).
func NewDepartmentPicker(watcher DismissWatcher) *DepartmentPicker {
	return &DepartmentPicker{
		watcher: watcher,
		index:   make(map[string]struct{}),
	}
}

// OpenList shows the option list and acquires the outside-dismiss watch.
func (p *DepartmentPicker) OpenList() {
	if p.open {
		return
	}
	p.open = true
	if p.watcher != nil {
		p.release = p.watcher.Watch(p.CloseList)
	}
}

// CloseList hides the option list and releases the outside-dismiss watch.
// The selection is untouched.
func (p *DepartmentPicker) CloseList() {
	if !p.open {
		return
	}
	p.open = false
	if p.release != nil {
		p.release()
		p.release = nil
	}
}

// ToggleList flips list visibility, as a trigger click does.
func (p *DepartmentPicker) ToggleList() {
	if p.open {
		p.CloseList()
		return
	}
	p.OpenList()
}

// IsOpen reports list visibility.
func (p *DepartmentPicker) IsOpen() bool {
	return p.open
}

// Toggle flips membership of the given department in the selection.
func (p *DepartmentPicker) Toggle(id string) {
	if id == "" {
		return
	}
	if _, ok := p.index[id]; ok {
		p.Remove(id)
		return
	}
	p.index[id] = struct{}{}
	p.selected = append(p.selected, id)
}

// Remove deletes a department from the selection. Works whether or not the
// list is open; removing a chip never reopens it.
func (p *DepartmentPicker) Remove(id string) {
	if _, ok := p.index[id]; !ok {
		return
	}
	delete(p.index, id)
	for i, sel := range p.selected {
		if sel == id {
			p.selected = append(p.selected[:i], p.selected[i+1:]...)
			break
		}
	}
}

// Has reports membership.
func (p *DepartmentPicker) Has(id string) bool {
	_, ok := p.index[id]
	return ok
}

// Selected returns the selection in insertion order.
func (p *DepartmentPicker) Selected() []string {
	out := make([]string, len(p.selected))
	copy(out, p.selected)
	return out
}

// Reset clears the selection and closes the list, releasing any held watch.
func (p *DepartmentPicker) Reset() {
	p.CloseList()
	p.selected = nil
	p.index = make(map[string]struct{})
}

// SetSelection replaces the selection wholesale, deduplicating while
// preserving order. Used when seeding from initial data.
func (p *DepartmentPicker) SetSelection(ids []string) {
	p.selected = nil
	p.index = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := p.index[id]; dup {
			continue
		}
		p.index[id] = struct{}{}
		p.selected = append(p.selected, id)
	}
}
