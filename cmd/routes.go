package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"data-studio/core/config"
	"data-studio/core/router"
	"data-studio/feature/views"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var routesFormat string

// routeEntry is the printed form of a route.
type routeEntry struct {
	Path     string   `json:"path" yaml:"path"`
	Name     string   `json:"name" yaml:"name"`
	Strategy string   `json:"strategy" yaml:"strategy"`
	Params   []string `json:"params,omitempty" yaml:"params,omitempty"`
}

// resolution is the printed form of a resolved path.
type resolution struct {
	Path   string            `json:"path" yaml:"path"`
	Route  string            `json:"route" yaml:"route"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// routesCmd represents the routes command
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the page route table",
	Long:  `Prints every page route with its name and load strategy.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := pageRouter()
		if err != nil {
			return err
		}
		entries := make([]routeEntry, 0, len(r.Routes()))
		for _, rt := range r.Routes() {
			entries = append(entries, routeEntry{
				Path:     rt.Path,
				Name:     rt.Name,
				Strategy: rt.Strategy.String(),
				Params:   rt.Params(),
			})
		}
		return printAs(cmd.OutOrStdout(), routesFormat, entries)
	},
}

// routesResolveCmd resolves a path against the table.
var routesResolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Resolve a path to its route",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := pageRouter()
		if err != nil {
			return err
		}
		m, err := r.Resolve(args[0])
		if err != nil {
			return fmt.Errorf("resolve %s: %w", args[0], err)
		}
		return printAs(cmd.OutOrStdout(), routesFormat, resolution{
			Path:   args[0],
			Route:  m.Route.Name,
			Params: m.Params,
		})
	},
}

func pageRouter() (*router.Router, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	routes, err := views.Routes(views.Options{Base: cfg.Server.Base(), API: cfg.Proxy.Prefix})
	if err != nil {
		return nil, err
	}
	return router.New(router.Options{Base: cfg.Server.Base(), Routes: routes})
}

func printAs(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}

func init() {
	routesCmd.PersistentFlags().StringVarP(&routesFormat, "format", "o", "yaml", "output format: yaml or json")
	routesCmd.AddCommand(routesResolveCmd)
	RootCmd.AddCommand(routesCmd)
}
