package quiz

import (
	"context"
	"errors"
	"io"

	"github.com/palemoky/tonetrainer/internal/database"
)

// MenuChoice is a top-level menu command.
type MenuChoice string

const (
	MenuHelp     MenuChoice = "h"
	MenuStart    MenuChoice = "s"
	MenuQuit     MenuChoice = "q"
	MenuSettings MenuChoice = "t"
)

var welcomeLines = []string{
	"Welcome to the (mandarin) tonetrainer",
	"Characters and pinyin by CC-CEDICT, https://cc-cedict.org/wiki/start,",
	"pronunciations by Forvo, https://forvo.com",
	"For help press 'h + Enter', to start press 's + Enter',",
	"to quit press 'q + Enter', to set the simplified/traditional setting, ",
	"press 't + Enter'",
}

var helpLines = []string{
	"This program helps you to train recognising mandarin tones.",
	"The program shows you the pinyin of a two character word and plays the corresponding audio",
	"To replay the audio, press 'r + Enter', to play the next pronunciation from a different person,",
	"press 'n + Enter', to quit the program press 'q + Enter'",
	"When you want to make a guess, type the two tones and press enter, e.g. '24'",
	"After your guess, it is shown if you were correct and which word was queried",
	"Then you can replay the audio ('r + Enter'), replay the next audio ('n' + Enter), quit ('q + Enter') " +
		"or continue with the next tone pair (press 'Enter')",
}

// Welcome prints the start banner and the menu.
func Welcome(c *Console) {
	for _, l := range welcomeLines {
		c.Println(l)
	}
}

// Help prints the in-round instructions.
func Help(c *Console) {
	for _, l := range helpLines {
		c.Println(l)
	}
}

// ReadMenuChoice asks until one of h/s/q/t is entered.
// End of input and cancellation count as quit.
func ReadMenuChoice(ctx context.Context, c *Console) (MenuChoice, error) {
	for {
		line, err := c.ReadLine(ctx)
		if stopped(ctx, err) {
			return MenuQuit, nil
		}
		if err != nil {
			return "", err
		}

		switch choice := MenuChoice(line); choice {
		case MenuHelp, MenuStart, MenuQuit, MenuSettings:
			return choice, nil
		}
		c.Println("Please enter a character out of the choices")
	}
}

// ReadLang asks for the character form until 's' or 't' is entered.
func ReadLang(ctx context.Context, c *Console) (database.Lang, error) {
	for {
		c.Println("type 's + Enter' for simplified or 't + Enter' for 'traditional':")
		line, err := c.ReadLine(ctx)
		if err != nil {
			return "", err
		}

		switch line {
		case "s":
			return database.LangSimplified, nil
		case "t":
			return database.LangTraditional, nil
		}
		c.Println("please type one of the above mentioned characters")
	}
}

// RunMenu shows the banner and handles the top-level choice.
// It reports whether the quiz should start. saveLang persists a changed
// character form.
func RunMenu(ctx context.Context, c *Console, saveLang func(database.Lang) error) (bool, error) {
	Welcome(c)

	choice, err := ReadMenuChoice(ctx, c)
	if err != nil {
		return false, err
	}

	switch choice {
	case MenuHelp:
		Help(c)
		// any line continues
		if _, err := c.ReadLine(ctx); err != nil {
			if stopped(ctx, err) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	case MenuSettings:
		lang, err := ReadLang(ctx, c)
		if stopped(ctx, err) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if err := saveLang(lang); err != nil {
			return false, err
		}
		return true, nil
	case MenuStart:
		return true, nil
	default:
		return false, nil
	}
}

// stopped reports whether reading ended because the input is exhausted or
// ctx was cancelled.
func stopped(ctx context.Context, err error) bool {
	return errors.Is(err, io.EOF) || (err != nil && ctx.Err() != nil)
}
