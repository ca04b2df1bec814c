package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/docid/graphql"
)

// encodeFlags holds all flags for the encode command.
type encodeFlags struct {
	to     string
	asText bool
}

// encodeFlagVals is the package-level instance bound to cobra flags.
var encodeFlagVals encodeFlags

var encodeCmd = &cobra.Command{
	Use:   "encode <value>...",
	Short: "Re-encode values into a chosen wire format",
	Long: `Decode each value and print it in the chosen wire format, one per line.

The json format uses the extended JSON document form {"$oid": ...} for
ObjectIDs; the graphql format uses the $oid: marker string; text is the
canonical plain rendering; bson prints the value type and raw bytes.`,
	Example: `  # Move an ObjectID from the marker form to the document form
  docid encode --to json '$oid:507f1f77bcf86cd799439011'

  # And back
  docid encode --to graphql '{"$oid":"507f1f77bcf86cd799439011"}'

  # Show the raw BSON value
  docid encode --to bson 42`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func init() {
	f := &encodeFlagVals

	encodeCmd.Flags().StringVarP(&f.to, "to", "t", "json", "Target format (json, graphql, text, bson)")
	encodeCmd.Flags().BoolVar(&f.asText, "text", false, "Treat arguments as verbatim text (skip token decoding)")

	rootCmd.AddCommand(encodeCmd)
}

func runEncode(_ *cobra.Command, args []string) error {
	f := &encodeFlagVals

	for _, arg := range args {
		id, err := decodeArg(arg, f.asText)
		if err != nil {
			return err
		}
		slog.Debug("decoded argument", "arg", arg, "kind", id.Kind().String())

		switch f.to {
		case "json":
			data, err := json.Marshal(id)
			if err != nil {
				return fmt.Errorf("encode %q: %w", arg, err)
			}
			fmt.Println(string(data))
		case "graphql":
			lit, err := graphql.MarshalString(id)
			if err != nil {
				return fmt.Errorf("encode %q: %w", arg, err)
			}
			fmt.Println(lit)
		case "text":
			text, err := id.MarshalText()
			if err != nil {
				return fmt.Errorf("encode %q: %w", arg, err)
			}
			fmt.Println(string(text))
		case "bson":
			rv, err := id.RawValue()
			if err != nil {
				return fmt.Errorf("encode %q: %w", arg, err)
			}
			fmt.Printf("%s %x\n", rv.Type, rv.Value)
		default:
			return fmt.Errorf("unknown format %q (want json, graphql, text or bson)", f.to)
		}
	}
	return nil
}
