//go:build libpostal

package main

import (
	"fmt"
	"strings"

	postal "github.com/openvenues/gopostal/parser"
	"github.com/spf13/cobra"

	"github.com/postline/internal/parser"
)

func init() {
	extraCommands = append(extraCommands, createCompareCmd)
}

// createCompareCmd prints the libpostal components next to the cascade result
// for the same input.
func createCompareCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [address]",
		Short: "Compare the cascade parser with libpostal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}
			address := strings.Join(args, " ")

			components := make(map[string]string)
			for _, component := range postal.ParseAddress(address) {
				components[component.Label] = component.Value
			}

			out := map[string]any{
				"input":     address,
				"libpostal": components,
			}
			if res := parser.ParseLocation(address, opts); res != nil {
				out["kind"] = res.Kind()
				out["postline"] = res.ToMap(opts.KeyStyle)
			} else {
				out["postline"] = nil
			}

			c.logger.Debug().Int("libpostal_components", len(components)).Msg(fmt.Sprintf("compared %q", address))
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}
