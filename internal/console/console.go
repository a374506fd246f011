package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"resale_ledger/internal/commands"
)

type (
	Form   = commands.Form
	Field  = commands.FormField
	Option = commands.Option
)

// Console is a line-oriented chat transport. A single reader goroutine
// pumps stdin into a channel so every read can race a context deadline;
// a line typed after a control expired is consumed and ignored, the same
// way an expired chat control swallows a late click.
type Console struct {
	out   io.Writer
	lines chan string
}

func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:   out,
		lines: make(chan string),
	}
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			c.lines <- scanner.Text()
		}
		close(c.lines)
	}()
	return c
}

// ReadLine returns the next input line, or ctx.Err() on expiry.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *Console) PromptForm(ctx context.Context, form Form) (map[string]string, error) {
	fmt.Fprintf(c.out, "\n== %s ==\n", form.Title)
	answers := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		for {
			switch {
			case field.Default != "":
				fmt.Fprintf(c.out, "%s [%s]: ", field.Label, field.Default)
			case field.Required:
				fmt.Fprintf(c.out, "%s: ", field.Label)
			default:
				fmt.Fprintf(c.out, "%s (optional): ", field.Label)
			}
			line, err := c.ReadLine(ctx)
			if err != nil {
				return nil, err
			}
			if line == "" {
				line = field.Default
			}
			if line == "" && field.Required {
				fmt.Fprintln(c.out, "This field is required.")
				continue
			}
			answers[field.Name] = line
			break
		}
	}
	return answers, nil
}

func (c *Console) Select(ctx context.Context, prompt string, options []Option) (int, error) {
	fmt.Fprintf(c.out, "\n%s\n", prompt)
	for i, opt := range options {
		if opt.Description != "" {
			fmt.Fprintf(c.out, "  %2d. %s (%s)\n", i+1, opt.Label, opt.Description)
		} else {
			fmt.Fprintf(c.out, "  %2d. %s\n", i+1, opt.Label)
		}
	}
	for {
		fmt.Fprintf(c.out, "Choice [1-%d]: ", len(options))
		line, err := c.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(c.out, "Please enter a number from the list.")
			continue
		}
		return n - 1, nil
	}
}

func (c *Console) Confirm(ctx context.Context, prompt string) (bool, error) {
	fmt.Fprintf(c.out, "\n%s\n", prompt)
	for {
		fmt.Fprint(c.out, "Confirm [yes/no]: ")
		line, err := c.ReadLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, "Please answer yes or no.")
	}
}

func (c *Console) Send(ctx context.Context, message string) error {
	_, err := fmt.Fprintln(c.out, message)
	return err
}
