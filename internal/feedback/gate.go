package feedback

// Gate decides whether the dialog is rendered.
type Gate struct {
	visible bool
}

func (g *Gate) Open() { g.visible = true }

// Close hides the dialog. It does not touch a pending submission.
func (g *Gate) Close() { g.visible = false }

func (g *Gate) Visible() bool { return g.visible }
