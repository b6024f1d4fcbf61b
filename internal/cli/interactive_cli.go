package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
)

// errEnd signals the normal end of an interactive session.
var errEnd = errors.New("end of session")

// InteractiveCLI contains shared IO for interactive terminal sessions.
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// newInteractiveCLI wires an interactive CLI to the given streams. Commands
// pass os.Stdin/os.Stdout; tests pass buffers.
func newInteractiveCLI(in io.Reader, out io.Writer) *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(in),
		stdoutWriter: out,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// NewStdioCLI wires an interactive CLI to the process's standard streams.
func NewStdioCLI() *InteractiveCLI {
	return newInteractiveCLI(os.Stdin, os.Stdout)
}

type Session interface {
	Session(context context.Context) error
}

// Run drives a session loop until it ends or an interrupt arrives.
func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readLine reads one trimmed line of user input.
func (cli *InteractiveCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question until it gets an answer.
func (cli *InteractiveCLI) confirm(prompt string) (bool, error) {
	for {
		fmt.Fprintf(cli.stdoutWriter, "%s [y/n]: ", prompt)
		answer, err := cli.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
