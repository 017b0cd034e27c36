package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding a
// new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsEngine  bool     // true if values come from the engine list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion
// generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "expression", Short: "e", Help: "Expression to evaluate", ValueName: "expression"},
	{Long: "width", Help: "Evaluation width in bits", Values: []string{"256", "512"}, ValueName: "bits"},
	{Long: "engine", Help: "Engine to use", IsEngine: true, ValueName: "engine"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"30s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "verbose", Short: "v", Help: "Verbose output"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "hex", Short: "x", Help: "Hexadecimal output"},
	{Long: "repl", Help: "Start the interactive session"},
	{Long: "batch", Help: "Evaluate expressions from file", IsFile: true, ValueName: "file"},
	{Long: "jobs", Help: "Batch parallelism", Values: []string{"1", "2", "4", "8"}, ValueName: "count"},
	{Long: "bench", Help: "Run the throughput benchmark"},
	{Long: "bench-duration", Help: "Measurement window per benchmarked operation", ValueName: "duration"},
	{Long: "tui", Help: "Show the live dashboard"},
	{Long: "serve", Help: "Expose Prometheus metrics", ValueName: "address"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
	{Long: "no-color", Help: "Disable color output"},
}

// GenerateCompletion writes a completion script for the requested shell.
func GenerateCompletion(out io.Writer, shell string, engines []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, engines)
	case "zsh":
		return generateZshCompletion(out, engines)
	case "fish":
		return generateFishCompletion(out, engines)
	default:
		return fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish)", shell)
	}
}

// engineValues returns the completion values for a flag, resolving the
// dynamic engine list.
func engineValues(f FlagCompletion, engines []string) []string {
	if f.IsEngine {
		return append(append([]string{}, engines...), "all")
	}
	return f.Values
}

func generateBashCompletion(out io.Writer, engines []string) error {
	var flags []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			flags = append(flags, "--"+f.Long)
		}
		if f.Short != "" {
			flags = append(flags, "-"+f.Short)
		}
	}

	fmt.Fprintf(out, "# bash completion for uintcalc\n")
	fmt.Fprintf(out, "_uintcalc() {\n")
	fmt.Fprintf(out, "    local cur prev\n")
	fmt.Fprintf(out, "    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(out, "    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	fmt.Fprintf(out, "    case \"$prev\" in\n")
	for _, f := range flagRegistry {
		values := engineValues(f, engines)
		if len(values) == 0 && !f.IsFile {
			continue
		}
		fmt.Fprintf(out, "        --%s)\n", f.Long)
		if f.IsFile {
			fmt.Fprintf(out, "            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
		} else {
			fmt.Fprintf(out, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(values, " "))
		}
		fmt.Fprintf(out, "            return\n")
		fmt.Fprintf(out, "            ;;\n")
	}
	fmt.Fprintf(out, "    esac\n")
	fmt.Fprintf(out, "    COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(flags, " "))
	fmt.Fprintf(out, "}\n")
	fmt.Fprintf(out, "complete -F _uintcalc uintcalc\n")
	return nil
}

func generateZshCompletion(out io.Writer, engines []string) error {
	fmt.Fprintf(out, "#compdef uintcalc\n")
	fmt.Fprintf(out, "_uintcalc() {\n")
	fmt.Fprintf(out, "    _arguments \\\n")
	for _, f := range flagRegistry {
		values := engineValues(f, engines)
		spec := fmt.Sprintf("        '--%s[%s]", f.Long, f.Help)
		switch {
		case f.IsFile:
			spec += fmt.Sprintf(":%s:_files'", f.ValueName)
		case len(values) > 0:
			spec += fmt.Sprintf(":%s:(%s)'", f.ValueName, strings.Join(values, " "))
		case f.ValueName != "":
			spec += fmt.Sprintf(":%s:'", f.ValueName)
		default:
			spec += "'"
		}
		fmt.Fprintf(out, "%s \\\n", spec)
	}
	fmt.Fprintf(out, "        && return 0\n")
	fmt.Fprintf(out, "}\n")
	fmt.Fprintf(out, "_uintcalc\n")
	return nil
}

func generateFishCompletion(out io.Writer, engines []string) error {
	fmt.Fprintf(out, "# fish completion for uintcalc\n")
	for _, f := range flagRegistry {
		line := fmt.Sprintf("complete -c uintcalc -l %s -d '%s'", f.Long, f.Help)
		if f.Short != "" {
			line += fmt.Sprintf(" -s %s", f.Short)
		}
		if values := engineValues(f, engines); len(values) > 0 {
			line += fmt.Sprintf(" -xa '%s'", strings.Join(values, " "))
		}
		if f.IsFile {
			line += " -r"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
