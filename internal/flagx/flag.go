// Package flagx holds helpers for sharing os.Args between several flag
// consumers: the config loader parses its own flags while the command
// tree parses the rest.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns only the arguments that belong to allowedFlags,
// keeping their values. Both "-f value" and "-f=value" forms are
// recognized; a single-dash name also matches its double-dash spelling
// ("-config" allows "--config").
//
// A value is taken from the next argument only when that argument does not
// start with '-'. Positional arguments and unknown flags are dropped.
func FilterArgs(args []string, allowedFlags []string) []string {
	matched, _ := SplitArgs(args, allowedFlags)
	return matched
}

// StripArgs is the complement of FilterArgs: it returns args without the
// listed flags and their values, in their original order.
func StripArgs(args []string, flags []string) []string {
	_, rest := SplitArgs(args, flags)
	return rest
}

// SplitArgs partitions args into the listed flags (with their values) and
// everything else. Arguments after "--" are never matched.
func SplitArgs(args []string, flags []string) (matched, rest []string) {
	allowed := make(map[string]struct{}, len(flags)*2)
	for _, f := range flags {
		name := strings.TrimLeft(f, "-")
		allowed["-"+name] = struct{}{}
		allowed["--"+name] = struct{}{}
	}

	matched = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			rest = append(rest, args[i:]...)
			break
		}

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, known := allowed[name]; known {
				matched = append(matched, arg)
				continue
			}
			rest = append(rest, arg)
			continue
		}

		if _, known := allowed[arg]; !known {
			rest = append(rest, arg)
			continue
		}
		matched = append(matched, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			matched = append(matched, args[i+1])
			i++
		}
	}

	return matched, rest
}

// ConfigFileFlag extracts the JSON config path given with -c or -config.
// It returns an empty string when neither flag is present.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
