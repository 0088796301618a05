package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/randx/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve variates over HTTP and websocket",
	Long: `Start an HTTP server exposing the distributions, For example:
  randx serve --listen=127.0.0.1:8080
  curl 'http://127.0.0.1:8080/api/sample/bern?arg=0.5&size=5&seed=1'
The websocket endpoint /ws answers each JSON request message with one response.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srvLogger := log.With(logger, "component", "server")
		s := server.New(
			server.WithListenAddress(viper.GetString("serve.listen")),
			server.WithMaxSize(viper.GetInt("serve.max_size")),
			server.WithMaxDraws(viper.GetInt("serve.max_draws")),
			server.WithLogger(srvLogger),
			server.WithSampleOptions(sampleOptions()...),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Shutdown(shutdownCtx); err != nil {
				level.Warn(srvLogger).Log("msg", "shutdown", "err", err)
			}
		}()

		return s.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", server.DefaultListenAddress, "server listen address")
	flags.Int("max-size", server.DefaultMaxSize, "largest size a request may ask for")
	flags.Int("max-draws", server.DefaultMaxDraws, "most uniforms a request may consume")

	viper.BindPFlag("serve.listen", flags.Lookup("listen"))
	viper.BindPFlag("serve.max_size", flags.Lookup("max-size"))
	viper.BindPFlag("serve.max_draws", flags.Lookup("max-draws"))
}
