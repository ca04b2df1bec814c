// docid CLI - inspect and re-encode polymorphic record identifiers.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/docid"
)

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "none"
)

// verbose is the persistent flag shared by all subcommands.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docid",
	Short: "docid inspects and re-encodes polymorphic record identifiers",
	Long: `docid decodes record identifiers from their textual forms and re-encodes
them across the wire formats used by document stores and query APIs.

Arguments starting with '{' are parsed as extended JSON, so the document
form {"$oid": ...} is accepted. Everything else is decoded like a
query-language scalar token: integer-looking arguments become int64
identifiers, the rest passes through the $oid: marker rule. Use --text
to take arguments as verbatim text instead.`,
	SilenceUsage:  true,
	SilenceErrors: true, // Errors are printed once in main.
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// decodeArg turns a command line argument into an ID.
//
// Without asText, '{'-prefixed arguments are parsed as extended JSON;
// the rest follows the scalar token rule: decimal arguments become
// KindInt64, everything else goes through the marker rule.
func decodeArg(arg string, asText bool) (docid.ID, error) {
	if asText {
		return docid.String(arg), nil
	}
	if len(arg) > 0 && arg[0] == '{' {
		var id docid.ID
		if err := json.Unmarshal([]byte(arg), &id); err != nil {
			return docid.ID{}, fmt.Errorf("decode %q: %w", arg, err)
		}
		return id, nil
	}
	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return docid.Int64(i), nil
	}
	return docid.DecodeString(arg), nil
}
