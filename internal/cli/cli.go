// Package cli is the line-based text interface to the pet.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"dramagotchi/internal/pet"
)

const (
	msgWelcome     = "🐣 Welcome to your virtual pet!"
	msgIntro       = "Type 'help' to see every action. Take good care of your pet!"
	promptName     = "What should your pet be called? "
	promptAction   = "What would you like to do? "
	msgNeedName    = "Please enter a name."
	msgUnknown     = "Unknown action. Type 'help' for a list of commands."
	msgInterrupt   = "See you soon! Your pet is waiting for you."
	msgTryAgainFmt = "%s Try again!"
	msgLastedFmt   = "%s lasted %s."
)

// Session is one text mode game
type Session struct {
	In     io.Reader
	Out    io.Writer
	Now    func() time.Time
	Config *pet.Config
	// Name skips the name prompt when set
	Name string

	scanner *bufio.Scanner
}

// Run plays until the pet dies, the player quits or input ends
func (s *Session) Run() error {
	if s.Now == nil {
		s.Now = time.Now
	}
	s.scanner = bufio.NewScanner(s.In)

	s.println(msgWelcome)
	name := strings.TrimSpace(s.Name)
	if name == "" {
		var err error
		name, err = s.promptName()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read name: %w", err)
		}
	}

	p := pet.New(name, s.Now(), s.Config)
	s.println(msgIntro)

	for {
		p.Advance(s.Now())
		if !p.IsAlive() {
			break
		}

		s.println("\n" + pet.RenderStatus(p))
		line, err := s.readLine(promptAction)
		if errors.Is(err, io.EOF) {
			s.println("\n" + msgInterrupt)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}
		if line == "" {
			continue
		}

		action, ok := pet.ParseAction(line)
		if !ok {
			log.Printf("Unknown command %q", line)
			s.println(msgUnknown)
			continue
		}

		// A pet that died in the meantime gets the game over message below
		if resp := p.Do(action, s.Now()); p.IsAlive() || resp != p.GameOverText() {
			s.println(resp)
		}
		if action == pet.ActionQuit {
			return nil
		}
	}

	s.println(fmt.Sprintf(msgTryAgainFmt, p.GameOverText()))
	s.println(fmt.Sprintf(msgLastedFmt, p.Name, p.Lifetime()))
	return nil
}

func (s *Session) promptName() (string, error) {
	for {
		name, err := s.readLine(promptName)
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
		s.println(msgNeedName)
	}
}

// readLine prompts and returns the next trimmed input line
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.Out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.Out, line)
}
