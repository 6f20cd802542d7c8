package uikit

// ConfirmDialog gates destructive and state-changing mutations behind an
// explicit second confirmation. Two exits only: Confirm runs the pending
// callback and closes, Dismiss closes without side effects.
type ConfirmDialog struct {
	open    bool
	summary string
	action  func() error
}

// Open arms the dialog. Summary identifies the target record (title,
// date range) so the user confirms the right one.
func (d *ConfirmDialog) Open(summary string, action func() error) {
	d.open = true
	d.summary = summary
	d.action = action
}

func (d *ConfirmDialog) IsOpen() bool    { return d.open }
func (d *ConfirmDialog) Summary() string { return d.summary }

func (d *ConfirmDialog) Confirm() error {
	if !d.open || d.action == nil {
		return nil
	}
	err := d.action()
	d.close()
	return err
}

func (d *ConfirmDialog) Dismiss() {
	d.close()
}

func (d *ConfirmDialog) close() {
	d.open = false
	d.summary = ""
	d.action = nil
}
