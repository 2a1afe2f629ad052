package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgDispatch carries a closure posted by a controller.
// The root model runs it inside Update, on the event loop.
type MsgDispatch struct {
	Fn func()
}

func (MsgDispatch) sealed() {}
