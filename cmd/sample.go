package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/randx"
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <distribution> [params...]",
	Short: "Draw variates from a distribution",
	Long: `Draw variates from a distribution, one per line by default. For example:
  randx sample unif 0 10 -n 5
  randx sample triangular 0 2 5 -n 5 --seed 7
  randx sample poisson 3.5 -n 100 --poisson-margin 20
Run "randx list" for the distributions and their parameters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := sampleArgs(args, sampleSize)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), res)
	},
}

var (
	sampleSize int
)

// sampleArgs looks up args[0] and samples it with the remaining args as
// parameters.
func sampleArgs(args []string, size int) (*randx.Result, error) {
	d, ok := randx.Lookup(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", randx.ErrUnknownDistribution, args[0])
	}

	params := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		params[i] = a
	}
	res, err := d.Sample(params, size, sampleOptions()...)
	if errors.Is(err, randx.ErrArgumentCount) {
		return nil, fmt.Errorf("%w, usage: %s", err, d.Usage())
	}
	return res, err
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	flags := sampleCmd.Flags()
	flags.IntVarP(&sampleSize, "size", "n", 10, "number of variates")
	flags.Bool("retry-rejected", false, "gamma: redraw rejected candidates so exactly size values are returned")
	flags.Int("poisson-margin", randx.DefaultPoissonMargin, "poisson: uniforms drawn per variate on top of floor(lambda)")

	viper.BindPFlag("gamma.retry", flags.Lookup("retry-rejected"))
	viper.BindPFlag("poisson.margin", flags.Lookup("poisson-margin"))
}
