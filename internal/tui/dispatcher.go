package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/stackq/internal/domain"
)

var _ domain.Dispatcher = (*ProgramDispatcher)(nil)

// ProgramDispatcher posts closures into a running bubbletea program.
// Closures dispatched before Attach are dropped.
type ProgramDispatcher struct {
	send func(tea.Msg)
	mu   sync.RWMutex
}

// NewProgramDispatcher creates a dispatcher that is not yet attached.
func NewProgramDispatcher() *ProgramDispatcher {
	return &ProgramDispatcher{}
}

// Attach binds the dispatcher to p.
func (d *ProgramDispatcher) Attach(p *tea.Program) {
	d.attachSend(p.Send)
}

func (d *ProgramDispatcher) attachSend(send func(tea.Msg)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.send = send
}

// Dispatch implements domain.Dispatcher.
// It blocks until the event loop accepts the message or the program has exited.
func (d *ProgramDispatcher) Dispatch(fn func()) {
	d.mu.RLock()
	send := d.send
	d.mu.RUnlock()
	if send == nil {
		return
	}
	send(MsgDispatch{Fn: fn})
}
