package ddbui

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
)

// Selector asks for one item out of an ordered list and returns its index.
type Selector interface {
	Select(label string, items []string) (int, error)
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(label string) (bool, error)
}

// Prompt implements Selector and Confirmer on the terminal.
type Prompt struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

var (
	_ Selector  = (*Prompt)(nil)
	_ Confirmer = (*Prompt)(nil)
)

func (p *Prompt) Select(label string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("nothing to select")
	}
	sel := promptui.Select{
		Label:  label,
		Items:  items,
		Size:   10,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return 0, fmt.Errorf("select: %w", err)
	}
	return idx, nil
}

// Confirm returns false without error when the operator answers no.
func (p *Prompt) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	return true, nil
}

// Scripted answers prompts from fixed values. Useful in tests and for
// non-interactive runs.
type Scripted struct {
	Choice int
	Answer bool
	Err    error

	// Labels records the items offered to Select.
	Labels []string
}

func (s *Scripted) Select(_ string, items []string) (int, error) {
	s.Labels = append([]string(nil), items...)
	if s.Err != nil {
		return 0, s.Err
	}
	if s.Choice < 0 || s.Choice >= len(items) {
		return 0, fmt.Errorf("scripted choice %d out of range [0,%d)", s.Choice, len(items))
	}
	return s.Choice, nil
}

func (s *Scripted) Confirm(string) (bool, error) {
	return s.Answer, s.Err
}
