package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ConfirmPrompt is shown before executing a plan.
const ConfirmPrompt = "Proceed with renaming? (Y/n): "

// maxPromptAttempts bounds re-asking on unrecognized answers.
const maxPromptAttempts = 3

// Confirmer gates execution of the whole plan.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// PromptConfirmer asks on Out and reads the answer from In. An empty answer
// or "y"/"yes" proceeds; "n"/"no" declines; end of input declines.
// Unrecognized answers are asked again, then treated as a decline.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements [Confirmer].
func (c PromptConfirmer) Confirm(prompt string) (bool, error) {
	r := bufio.NewReader(c.In)
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		fmt.Fprint(c.Out, prompt)
		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			fmt.Fprintln(c.Out)
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.Out, "Please answer y or n.")
	}
	return false, nil
}
