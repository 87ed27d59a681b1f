package cli

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrInterrupted is returned when the user aborts a prompt with ^C or ^D
var ErrInterrupted = errors.New("cli: prompt interrupted")

type SelectWidget = promptui.Select

type SelectFn func(*SelectWidget)

// FixedSelect from menu, choices keep their order
func FixedSelect(label string, choices []string, opt ...SelectFn) (int, string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: choices,
		Size:  len(choices),
	}
	for _, fn := range opt {
		fn(&prompt)
	}

	idx, result, err := prompt.Run()
	if err != nil {
		return -1, "", wrapPromptErr(err)
	}
	return idx, result, nil
}

// Input a line, validateFunc may be nil
func Input(label string, validateFunc func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateFunc,
	}

	result, err := prompt.Run()
	if err != nil {
		return "", wrapPromptErr(err)
	}
	return strings.TrimSpace(result), nil
}

func wrapPromptErr(err error) error {
	if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
		return ErrInterrupted
	}
	return err
}
