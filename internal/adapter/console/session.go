package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/countdown-timer/countdown/internal/domain"
	"github.com/countdown-timer/countdown/internal/usecase"
)

// LineReader is the input side of a session. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Session is an interactive terminal host for one countdown.
// It is also the engine's StateObserver: every published state is printed.
type Session struct {
	in  LineReader
	out io.Writer

	// mu serializes writes from the command loop and from state notifications
	mu sync.Mutex
}

// NewSession creates a session reading commands from in and writing to out.
func NewSession(in LineReader, out io.Writer) *Session {
	return &Session{in: in, out: out}
}

// OnStateChange implements domain.StateObserver.
func (s *Session) OnStateChange(state domain.State) {
	s.println(Format(state))
}

// Run reads commands until quit, end of input or ctx is cancelled.
// It returns nil on a normal exit.
func (s *Session) Run(ctx context.Context, engine usecase.CountdownEngine) error {
	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := s.in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			// EOF or the reader was closed
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "h", "?":
			s.printHelp()

		case "pause", "resume", "p":
			if err := engine.TogglePause(); err != nil {
				return fmt.Errorf("toggle pause: %w", err)
			}

		case "target", "t":
			if err := s.cmdTarget(engine, args); err != nil {
				return err
			}

		case "status", "s":
			s.cmdStatus(engine)

		case "quit", "q", "exit":
			return nil

		default:
			s.printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Session) cmdTarget(engine usecase.CountdownEngine, args []string) error {
	if len(args) == 0 {
		s.println("Usage: target <timestamp>   e.g. target 2030-01-01T00:00:00Z")
		return nil
	}

	// Allow "2030-01-01 12:00" without quoting
	target := domain.TargetFromString(strings.Join(args, " "))
	if err := engine.SetTarget(target); err != nil {
		return fmt.Errorf("set target: %w", err)
	}

	if engine.State().IsPaused {
		s.println("Target stored; resume to apply it.")
	}
	return nil
}

func (s *Session) cmdStatus(engine usecase.CountdownEngine) {
	state := engine.State()
	s.printf("target: %s\n", engine.Target())
	s.printf("state:  %s\n", Format(state))
}

func (s *Session) printHelp() {
	s.println("Commands:")
	s.println("  pause | p              toggle pause/resume")
	s.println("  target | t <time>      change the target (ISO timestamp)")
	s.println("  status | s             show target and current state")
	s.println("  help | h               show this help")
	s.println("  quit | q               exit")
}

func (s *Session) println(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, line)
}

func (s *Session) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

// Ensure interfaces are implemented.
var (
	_ domain.StateObserver = (*Session)(nil)
	_ LineReader           = (*readline.Instance)(nil)
)
