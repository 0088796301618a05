package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tutils/randx"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available distributions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		format, err := outputFormat(w)
		if err != nil {
			return err
		}

		ds := randx.Distributions()
		if format == formatJSON {
			type info struct {
				Name        string        `json:"name"`
				Description string        `json:"description"`
				Discrete    bool          `json:"discrete"`
				Params      []randx.Param `json:"params"`
			}
			infos := make([]info, len(ds))
			for i, d := range ds {
				infos[i] = info{d.Name, d.Description, d.Discrete, d.Params()}
			}
			return writeJSON(w, infos)
		}

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"name", "params", "output", "description"})
		for _, d := range ds {
			var params []string
			for _, p := range d.Params() {
				s := p.Name
				if p.Integer {
					s += " (int)"
				}
				if p.Domain != "" {
					s += " " + p.Domain
				}
				params = append(params, s)
			}
			output := "float"
			if d.Discrete {
				output = "int"
			}
			table.Append([]string{d.Name, strings.Join(params, ", "), output, d.Description})
		}
		table.Render()
		fmt.Fprintln(w, `Names may also be given with a "rand_" prefix.`)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
