package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/docid"
	"github.com/hupe1980/docid/graphql"
)

// inspectFlags holds all flags for the inspect command.
type inspectFlags struct {
	asText bool
	asJSON bool
}

// inspectFlagVals is the package-level instance bound to cobra flags.
var inspectFlagVals inspectFlags

var inspectCmd = &cobra.Command{
	Use:   "inspect <value>...",
	Short: "Decode values and show their variant and wire encodings",
	Long: `Decode each value and print its variant, canonical rendering and the
form it takes in each wire encoding. ObjectIDs additionally show the
timestamp embedded in their leading four bytes.

With --json, one JSON object is printed per value instead; encodings
that reject the value are omitted from the object.`,
	Example: `  # A marked string restores the ObjectID variant
  docid inspect '$oid:507f1f77bcf86cd799439011'

  # A marked string with a malformed remainder stays text
  docid inspect '$oid:not-hex'

  # Integer-looking arguments become int64 identifiers
  docid inspect 42

  # Verbatim text, no token decoding
  docid inspect --text 42

  # Machine-readable output, one object per value
  docid inspect --json 42 'user-settings'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	f := &inspectFlagVals

	inspectCmd.Flags().BoolVar(&f.asText, "text", false, "Treat arguments as verbatim text (skip token decoding)")
	inspectCmd.Flags().BoolVar(&f.asJSON, "json", false, "Print one JSON object per value")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	f := &inspectFlagVals

	for i, arg := range args {
		id, err := decodeArg(arg, f.asText)
		if err != nil {
			return err
		}
		slog.Debug("decoded argument", "arg", arg, "kind", id.Kind().String())

		if f.asJSON {
			data, err := json.Marshal(buildReport(arg, id))
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			continue
		}

		if i > 0 {
			fmt.Println()
		}
		printID(arg, id)
	}
	return nil
}

// inspectReport is the machine-readable form printed by --json.
type inspectReport struct {
	Value     string          `json:"value"`
	Kind      string          `json:"kind"`
	Canonical string          `json:"canonical"`
	JSON      json.RawMessage `json:"json,omitempty"`
	GraphQL   string          `json:"graphql,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

func buildReport(arg string, id docid.ID) inspectReport {
	r := inspectReport{
		Value:     arg,
		Kind:      id.Kind().String(),
		Canonical: id.String(),
	}
	if data, err := json.Marshal(id); err == nil {
		r.JSON = data
	}
	if lit, err := graphql.MarshalString(id); err == nil {
		r.GraphQL = lit
	}
	if oid, ok := id.AsObjectID(); ok {
		r.Timestamp = oid.Timestamp().UTC().Format(time.RFC3339)
	}
	return r
}

func printID(arg string, id docid.ID) {
	fmt.Printf("value: %s\n", arg)
	fmt.Printf("  %-10s %s\n", "kind:", id.Kind())
	fmt.Printf("  %-10s %s\n", "canonical:", id.String())

	if data, err := json.Marshal(id); err == nil {
		fmt.Printf("  %-10s %s\n", "json:", data)
	} else {
		fmt.Printf("  %-10s error: %v\n", "json:", err)
	}

	if lit, err := graphql.MarshalString(id); err == nil {
		fmt.Printf("  %-10s %s\n", "graphql:", lit)
	} else {
		fmt.Printf("  %-10s error: %v\n", "graphql:", err)
	}

	if oid, ok := id.AsObjectID(); ok {
		fmt.Printf("  %-10s %s\n", "timestamp:", oid.Timestamp().UTC().Format(time.RFC3339))
	}
}
