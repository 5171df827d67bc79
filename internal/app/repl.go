package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shoplist/internal/assistant"
	"shoplist/internal/storage/sqlite"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const replHelp = `Say things like "add 2 bananas", "remove milk", "show me phones".
Meta commands:
  :add [qty] <name>   add an item without interpretation
  :suggest <item>     add a suggested item
  :inc <n>  :dec <n>  change the quantity of item n
  :qty <n> <qty>      set the quantity of item n
  :rm <n>             remove item n
  :view <product>     select a product for follow-up questions
  :details            show the selected product
  :clear-search       show the whole list again
  :lang <tag>         change the recognition language
  :history  :stats    session history
  :quit`

func replCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Type utterances and manage the list interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runREPL(cmd)
		},
	}
}

func (rt *runtime) runREPL(cmd *cobra.Command) error {
	sh, closeFn, err := rt.newSession()
	if err != nil {
		return err
	}
	defer closeFn()

	fmt.Fprintln(rt.out, "Type :help for commands.")
	sh.render(sh.ctl.Snapshot())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(rt.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(rt.out)
			return scanner.Err()
		}
		if quit := sh.handle(scanner.Text()); quit {
			return nil
		}
	}
}

// shell turns one input line into a controller call and prints the result.
type shell struct {
	ctl          *assistant.Controller
	history      *sqlite.History
	historyLimit int
	out          io.Writer
}

func (s *shell) handle(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, ":") {
		s.render(s.ctl.Submit(line))
		return false
	}

	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(line, name))

	switch name {
	case ":quit", ":q", ":exit":
		return true
	case ":help":
		fmt.Fprintln(s.out, replHelp)
	case ":add":
		qty := 1
		if len(args) > 1 {
			if n, err := strconv.Atoi(args[0]); err == nil {
				qty = n
				rest = strings.Join(args[1:], " ")
			}
		}
		s.render(s.ctl.ManualAdd(rest, qty))
	case ":suggest":
		s.render(s.ctl.AddSuggestion(rest))
	case ":inc", ":dec", ":rm", ":qty":
		s.edit(name, args)
	case ":view":
		s.render(s.ctl.ViewProduct(rest))
	case ":details":
		s.details()
	case ":clear-search":
		s.render(s.ctl.ClearSearch())
	case ":lang":
		tag, err := s.ctl.SetLanguage(rest)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return false
		}
		fmt.Fprintf(s.out, "Language: %s\n", tag)
	case ":history":
		s.printHistory()
	case ":stats":
		s.printStats()
	default:
		fmt.Fprintf(s.out, "Unknown command %s. Type :help for commands.\n", name)
	}
	return false
}

func (s *shell) edit(name string, args []string) {
	want, usage := 1, name+" <n>"
	if name == ":qty" {
		want, usage = 2, usage+" <qty>"
	}
	if len(args) != want {
		fmt.Fprintf(s.out, "Usage: %s\n", usage)
		return
	}
	items := s.ctl.Items()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(items) {
		fmt.Fprintf(s.out, "No item %s. The list has %d item(s).\n", args[0], len(items))
		return
	}
	id := items[n-1].ID

	var out assistant.Outcome
	switch name {
	case ":inc":
		out, err = s.ctl.Increment(id)
	case ":dec":
		out, err = s.ctl.Decrement(id)
	case ":rm":
		out, err = s.ctl.RemoveByID(id)
	case ":qty":
		qty, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			qty = 1
		}
		out, err = s.ctl.SetQuantity(id, qty)
	}
	if err != nil {
		log.Warnf("edit failed cmd=%s item=%s err=%v", name, id, err)
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.render(out)
}

func (s *shell) details() {
	name, details, err := s.ctl.SelectedProductDetails()
	if name == "" {
		fmt.Fprintln(s.out, "No product selected. Use :view <product>.")
		return
	}
	fmt.Fprintf(s.out, "Selected: %s\n", name)
	if err != nil {
		fmt.Fprintln(s.out, "Details: No details available")
		return
	}
	fmt.Fprintf(s.out, "Details: battery %s, memory %s, processor %s\n", details.Battery, details.Memory, details.Processor)
}

func (s *shell) printHistory() {
	if s.history == nil {
		fmt.Fprintln(s.out, "History is disabled.")
		return
	}
	records, err := s.history.Recent(s.historyLimit)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No utterances yet.")
		return
	}
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		fmt.Fprintf(s.out, "%s  %-13s %q -> %s\n", r.Interpreted.Local().Format("15:04:05"), r.Intent, r.RawText, r.Feedback)
	}
}

func (s *shell) printStats() {
	if s.history == nil {
		fmt.Fprintln(s.out, "History is disabled.")
		return
	}
	stats, err := s.history.Stats()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Utterances: %d (unrecognized %d)\n", stats.Total, stats.Unrecognized)
	for _, intent := range sortedIntents(stats.ByIntent) {
		fmt.Fprintf(s.out, "  %-13s %d\n", intent, stats.ByIntent[intent])
	}
}
