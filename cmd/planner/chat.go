package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"InvestPlanner/internal/model"
	"InvestPlanner/internal/render"
)

// localChat is the chat id of the terminal conversation.
const localChat int64 = 0

func newChatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the planner in the terminal",
		Long: `Start a conversational session. Type your answers, pick an option by its number,
use /catalog, /detail <id>, /invest <id> <amount> and /portfolio, or 'reset' to start over.
Type 'exit' to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(opts)
		},
	}
}

func runChat(opts *options) error {
	a, err := newApp(opts, true)
	if err != nil {
		return err
	}
	defer a.close()

	d := a.dispatcher()
	printer := render.NewPrinter(os.Stdout)

	// Options of the latest reply, so "2" can stand for its second label.
	var current []model.Option
	emit := func(r model.Reply) {
		printer.Print(r)
		current = r.Options
	}

	d.Open(localChat, emit)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(text) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(current) {
			text = current[n-1].Label
		}
		current = nil
		d.Handle(localChat, text, emit)
	}
	return scanner.Err()
}
