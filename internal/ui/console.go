// Package ui provides the line-oriented console the game is played through:
// numbered menus, yes/no confirmations and free-text prompts.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
)

// declineWord aborts a direction prompt without choosing.
const declineWord = "NO"

// Console reads player input line by line and styles its output. Malformed
// input always re-prompts; the console never fails a read short of EOF.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	styleBanner color.Style
	stylePrompt color.Style
	styleMenu   color.Style
	styleWarn   color.Style
}

// NewConsole creates a console on stdin and stdout.
func NewConsole() *Console {
	return NewConsoleWith(os.Stdin, os.Stdout)
}

// NewConsoleWith creates a console on explicit streams, used by tests.
func NewConsoleWith(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,

		styleBanner: color.New(color.FgYellow, color.OpBold),
		stylePrompt: color.New(color.FgCyan),
		styleMenu:   color.New(color.FgWhite),
		styleWarn:   color.New(color.FgRed),
	}
}

// Banner prints a highlighted line.
func (c *Console) Banner(msg string) {
	fmt.Fprintln(c.out, c.styleBanner.Render(msg))
}

// ReadLine prompts once and returns the trimmed reply, which may be empty.
func (c *Console) ReadLine(prompt string) string {
	fmt.Fprint(c.out, c.stylePrompt.Render(prompt))
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// ReadName prompts until it gets a non-empty reply.
func (c *Console) ReadName(prompt string) string {
	for {
		if name := c.ReadLine(prompt); name != "" {
			return name
		}
		c.warn("Input must not be empty.")
	}
}

// ReadCount prompts for an integer within [min, max].
func (c *Console) ReadCount(prompt string, min, max int) int {
	for {
		reply := c.ReadLine(prompt)
		n, err := strconv.Atoi(reply)
		if err != nil {
			c.warn("Enter a whole number.")
			continue
		}
		if n < min || n > max {
			c.warn(fmt.Sprintf("Enter a number between %d and %d.", min, max))
			continue
		}
		return n
	}
}

// ChooseAction shows the hero's action menu and returns the chosen index.
func (c *Console) ChooseAction(heroName string, options []string) int {
	fmt.Fprintln(c.out, c.stylePrompt.Render(fmt.Sprintf("Choose an action for hero %s:", heroName)))
	c.printMenu(options)
	for {
		idx, err := c.menuChoice("Enter the action number: ", len(options))
		if err != nil {
			c.warn(`Invalid input. Please enter an action number.`)
			continue
		}
		return idx
	}
}

// ChooseDirection shows the direction menu. Replying "NO" declines the move
// and returns ok=false.
func (c *Console) ChooseDirection(heroName string, options []string) (int, bool) {
	fmt.Fprintln(c.out, c.stylePrompt.Render(fmt.Sprintf("Choose a direction for hero %s:", heroName)))
	c.printMenu(options)
	for {
		reply := c.ReadLine(`Enter the direction number or "NO" to decline: `)
		if strings.EqualFold(reply, declineWord) {
			return 0, false
		}
		n, err := strconv.Atoi(reply)
		if err != nil || n < 1 || n > len(options) {
			c.warn(`Invalid input. Please enter a direction number or "NO".`)
			continue
		}
		return n - 1, true
	}
}

// Confirm asks a yes/no question until it gets one of the two answers.
func (c *Console) Confirm(prompt string) bool {
	for {
		switch strings.ToLower(c.ReadLine(prompt)) {
		case "yes":
			return true
		case "no":
			return false
		}
		c.warn(`Invalid input. Please enter "yes" or "no".`)
	}
}

// printMenu numbers the options from one, the way every prompt in the game
// counts.
func (c *Console) printMenu(options []string) {
	for i, opt := range options {
		fmt.Fprintln(c.out, c.styleMenu.Render(fmt.Sprintf("%d. %s", i+1, opt)))
	}
}

// menuChoice reads a 1-based selection and converts it to a 0-based index.
func (c *Console) menuChoice(prompt string, size int) (int, error) {
	reply := c.ReadLine(prompt)
	n, err := strconv.Atoi(reply)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > size {
		return 0, fmt.Errorf("choice %d out of range 1..%d", n, size)
	}
	return n - 1, nil
}

func (c *Console) warn(msg string) {
	fmt.Fprintln(c.out, c.styleWarn.Render(msg))
}
