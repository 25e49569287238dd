package main

import (
	"github.com/spf13/cobra"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/app"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/config"
)

// listenAddr prefers the --port flag over APP_PORT.
func listenAddr(port string) string {
	if port != "" {
		return config.PortAddr(port)
	}
	return config.Port()
}

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(newLogger())
			if err != nil {
				return err
			}
			return a.Start(cmd.Context(), listenAddr(port))
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides APP_PORT")
	return cmd
}
