package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tutils/randx/stats"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <distribution> [params...]",
	Short: "Summarize a sample of a distribution",
	Long: `Draw a sample and print its summary statistics, For example:
  randx describe exp 2 -n 1000 --seed 7
  randx describe gamma 2.5 1 -n 10000 --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := sampleArgs(args, describeSize)
		if err != nil {
			return err
		}
		return writeSummary(cmd.OutOrStdout(), res, stats.Summarize(res.Float64s()))
	},
}

var (
	describeSize int
)

func init() {
	rootCmd.AddCommand(describeCmd)

	flags := describeCmd.Flags()
	flags.IntVarP(&describeSize, "size", "n", 1000, "sample size")
}
