package interaction

// LabelPanel is the on-screen label shown for a clicked part
type LabelPanel interface {
	SetText(text string)
	ShowAt(x, y float32)
	Hide()
}

// Panel is a LabelPanel that only records its state; hosts render it.
// Version increases on every visible change.
type Panel struct {
	Text    string
	X, Y    float32
	Visible bool
	Version uint64
}

func (p *Panel) SetText(text string) {
	if p.Text != text {
		p.Text = text
		p.Version++
	}
}

func (p *Panel) ShowAt(x, y float32) {
	if !p.Visible || p.X != x || p.Y != y {
		p.X, p.Y = x, y
		p.Visible = true
		p.Version++
	}
}

func (p *Panel) Hide() {
	if p.Visible {
		p.Visible = false
		p.Version++
	}
}
