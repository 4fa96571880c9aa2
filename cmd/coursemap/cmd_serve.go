package main

import (
	"github.com/spf13/cobra"

	"github.com/yigit/coursemap/internal/config"
	"github.com/yigit/coursemap/internal/server"
)

var (
	servePort    string
	serveCatalog string
	serveSource  string
)

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "normalized catalog file")
	serveCmd.Flags().StringVar(&serveSource, "source", "", "catalog source (file or postgres)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != "" {
		cfg.Server.Port = servePort
	}
	if serveCatalog != "" {
		cfg.Catalog.Path = serveCatalog
		cfg.Catalog.Source = config.SourceFile
	}
	if serveSource != "" {
		cfg.Catalog.Source = serveSource
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.NewServer(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}
	return srv.Run(cmd.Context())
}
