package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/numwords/internal/input"
	"github.com/agbru/numwords/internal/ui"
	"github.com/agbru/numwords/internal/words"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// ExponentSign starts the session with negative exponent signs spelled.
	ExponentSign bool
}

// REPL is an interactive session that reads numbers and prints their word
// form.
type REPL struct {
	config    REPLConfig
	formatter *words.Formatter
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a new REPL reading stdin and writing stdout.
func NewREPL(config REPLConfig) *REPL {
	r := &REPL{config: config, in: os.Stdin, out: os.Stdout}
	r.rebuildFormatter()
	return r
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

func (r *REPL) rebuildFormatter() {
	if r.config.ExponentSign {
		r.formatter = words.NewFormatter(words.WithExponentSign())
	} else {
		r.formatter = words.NewFormatter()
	}
}

// Start runs the session until the user exits or input reaches EOF.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"words> "+ui.ColorReset())

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}

		if line = strings.TrimSpace(line); line != "" {
			if !r.processCommand(line) {
				return
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s   %sNumbers to Words - Interactive Mode%s        %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<number> ...%s   - Convert one or more numbers to words\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scanon <n>%s      - Show the canonical form of n\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssign%s           - Toggle spelling of negative exponent signs\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s         - Display current settings\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s    - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand executes one input line. It returns false when the REPL
// should exit.
func (r *REPL) processCommand(line string) bool {
	parts := strings.Fields(line)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "canon":
		r.cmdCanon(args)
	case "sign":
		r.cmdSign()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.convert(parts)
	}
	return true
}

// convert prints the words for every token, or an error for the first
// token that is not a number.
func (r *REPL) convert(tokens []string) {
	values, err := input.ParseAll(tokens)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		return
	}
	for _, v := range values {
		fmt.Fprintf(r.out, "  %s%s%s → %s\n", ui.ColorCyan(), words.FormatInvariant(v), ui.ColorReset(), r.formatter.Words(v))
	}
}

func (r *REPL) cmdCanon(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: canon <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	v, err := input.ParseNumber(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "  %s%s%s\n", ui.ColorCyan(), words.FormatInvariant(v), ui.ColorReset())
}

func (r *REPL) cmdSign() {
	r.config.ExponentSign = !r.config.ExponentSign
	r.rebuildFormatter()
	fmt.Fprintf(r.out, "Exponent sign: %s%s%s\n", ui.ColorGreen(), onOff(r.config.ExponentSign), ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent settings:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Exponent sign:  %s%s%s\n", ui.ColorCyan(), onOff(r.config.ExponentSign), ui.ColorReset())
	fmt.Fprintln(r.out)
}

func onOff(b bool) string {
	if b {
		return "spelled"
	}
	return "dropped"
}
