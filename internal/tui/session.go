package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/nwl/internal/project"
)

// Session feeds build events to a Model. Interactive sessions run a
// bubbletea program; otherwise the model is updated in place and rendered
// once when the session ends.
type Session struct {
	interactive bool
	out         io.Writer
	state       Model
	program     *tea.Program
	done        chan struct{}
	runErr      error
}

// NewSession prepares a session writing to out.
func NewSession(m Model, interactive bool, out io.Writer) *Session {
	return &Session{interactive: interactive, out: out, state: m}
}

// Start launches the program of an interactive session.
func (s *Session) Start() {
	if !s.interactive {
		return
	}
	s.program = tea.NewProgram(s.state, tea.WithOutput(s.out))
	s.done = make(chan struct{})
	go func() {
		final, err := s.program.Run()
		if m, ok := final.(Model); ok {
			s.state = m
		}
		s.runErr = err
		close(s.done)
	}()
}

// Progress is a project.WithProgress callback.
func (s *Session) Progress(ev project.Event) {
	s.Send(EventMsg{Event: ev})
}

// Send delivers msg to the model.
func (s *Session) Send(msg tea.Msg) {
	if s.interactive {
		if s.program != nil {
			s.program.Send(msg)
		}
		return
	}
	updated, _ := s.state.Update(msg)
	if m, ok := updated.(Model); ok {
		s.state = m
	}
}

// Finish records the build outcome, stops the program and returns its
// error. Non-interactive sessions print the final view.
func (s *Session) Finish(buildErr error) error {
	s.Send(DoneMsg{Err: buildErr})
	if !s.interactive {
		_, err := fmt.Fprint(s.out, s.state.View())
		return err
	}
	if s.program == nil {
		return nil
	}
	s.program.Quit()
	<-s.done
	return s.runErr
}

// Model returns the latest model. For interactive sessions it is current once
// Finish returned.
func (s *Session) Model() Model {
	return s.state
}
