package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tutils/randx"
)

// drawCmd represents the draw command
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Print raw uniforms from the generator",
	Long: `Print size rows of n consecutive uniforms from the generator, For example:
  randx draw -d 2 -n 3 --seed 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := randx.Uniforms(drawWidth, drawSize, sampleOptions()...)
		if err != nil {
			return err
		}
		return writeBatch(cmd.OutOrStdout(), batch)
	},
}

var (
	drawWidth int
	drawSize  int
)

func init() {
	rootCmd.AddCommand(drawCmd)

	flags := drawCmd.Flags()
	flags.IntVarP(&drawWidth, "draws", "d", 1, "uniforms per row")
	flags.IntVarP(&drawSize, "size", "n", 10, "number of rows")
}
