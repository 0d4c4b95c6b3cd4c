package feedback

// Dialog pairs a Gate with a Controller for one application.
type Dialog struct {
	gate Gate
	ctrl *Controller
}

func NewDialog(appName string, sender Sender, opts ...Option) (*Dialog, error) {
	ctrl, err := NewController(appName, sender, opts...)
	if err != nil {
		return nil, err
	}
	return &Dialog{ctrl: ctrl}, nil
}

// Open shows the dialog. A controller left in Sent or Error goes back to
// Idle; one that is still Sending is left alone.
func (d *Dialog) Open() {
	d.ctrl.Acknowledge()
	d.gate.Open()
}

// Close hides the dialog unconditionally. A pending submission keeps running
// and is resolved into the controller when it finishes.
func (d *Dialog) Close() { d.gate.Close() }

func (d *Dialog) Visible() bool { return d.gate.Visible() }

// CanClose reports whether the close affordance should be enabled.
func (d *Dialog) CanClose() bool { return d.ctrl.Status() != Sending }

func (d *Dialog) Controller() *Controller { return d.ctrl }
