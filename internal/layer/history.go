package layer

// Snapshot is a committed transform and tint.
type Snapshot struct {
	Transform Transform
	Tint      Tint
}

// Commit saves the current transform and tint as the undo baseline,
// replacing any earlier one.
func (l *Layer) Commit() {
	l.committed = &Snapshot{Transform: l.transform, Tint: l.tint}
	l.log.Debug("committed")
}

// Committed returns the undo baseline, if any.
func (l *Layer) Committed() (Snapshot, bool) {
	if l.committed == nil {
		return Snapshot{}, false
	}
	return *l.committed, true
}

// Undo restores the committed transform and tint, moves the layer back to
// the committed center and re-rasterizes it. The baseline is kept, so
// repeated calls give the same result.
//
// A layer that was never committed discards itself instead: it is removed
// from its container, detached from its delegate, and discarded is true.
// No transform or tint change happens in that case.
func (l *Layer) Undo() (discarded bool, err error) {
	if l.committed == nil {
		if l.container != nil {
			l.container.RemoveLayer(l)
		}
		l.container = nil
		l.delegate = nil
		l.dragging = false
		l.removed = true
		l.log.Debug("discarded uncommitted layer")
		return true, nil
	}
	snap := *l.committed
	l.applyTransform(snap.Transform)
	l.applyTint(snap.Tint)
	l.view.Center = snap.Transform.Center
	l.dragging = false
	l.log.Debug("restored committed state")
	return false, l.RefreshImage()
}
