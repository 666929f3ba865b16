package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/valyala/fasturi"
)

func (c *cli) newBuildCommand() *cobra.Command {
	var (
		scheme string
		host   string
		port   int
		path   string
		query  string
		params []string
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a URI from its parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fasturi.BuilderOptions{
				Scheme: []byte(scheme),
				Host:   []byte(host),
				Port:   port,
				Path:   []byte(path),
			}
			if cmd.Flags().Changed("query") {
				opts.QueryString = []byte(query)
			}
			if len(params) > 0 {
				opts.QueryParams = parseParamFlags(params)
			}
			if opts.QueryString == nil && opts.QueryParams == nil {
				opts.QueryString = []byte{}
			}

			u, err := fasturi.Build(&opts)
			if err != nil {
				return err
			}
			c.log.Debug().Str("uri", u.String()).Msg("built uri")
			return c.writeURIs([]*fasturi.URI{u}, len(params) > 0)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&scheme, "scheme", "", "uri scheme, e.g. https")
	flags.StringVar(&host, "host", "", "uri host")
	flags.IntVar(&port, "port", 0, "uri port; 0 means no port")
	flags.StringVar(&path, "path", "", "uri path; defaults to / if host is set")
	flags.StringVar(&query, "query", "", "raw query string; conflicts with --param")
	flags.StringArrayVar(&params, "param", nil, "query param as key=value or key; may be repeated")
	return cmd
}

// parseParamFlags converts key=value flags to query params.
// Flags without '=' become params without value.
func parseParamFlags(flags []string) []fasturi.QueryParam {
	params := make([]fasturi.QueryParam, 0, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		p := fasturi.QueryParam{Key: []byte(key)}
		if ok {
			p.Value = []byte(value)
		}
		params = append(params, p)
	}
	return params
}
