package tgbot

import (
	"sort"
	"strings"
)

type HelpCommand struct {
	commands *Commands
}

func (c *HelpCommand) Run(args string) (string, error) {
	args = strings.TrimPrefix(strings.TrimSpace(args), "/")
	if command, ok := c.commands.list[args]; ok && !c.commands.hidden.Contains(args) {
		return command.Help(), nil
	}

	names := make([]string, 0, len(c.commands.list))
	for name := range c.commands.list {
		if c.commands.hidden.Contains(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range names {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Send /help and a command name for details")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "Lists the available commands"
}
