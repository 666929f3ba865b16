package main

import (
	"github.com/spf13/cobra"
	"github.com/valyala/fasturi"
)

func (c *cli) newParamsCommand() *cobra.Command {
	var maxParams int
	cmd := &cobra.Command{
		Use:   "params <uri>",
		Short: "Print query string params of the URI, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := fasturi.ParseString(args[0])
			if err != nil {
				return err
			}

			var params []fasturi.QueryParam
			if maxParams > 0 {
				out := make([]fasturi.QueryParam, maxParams)
				n, err := fasturi.SplitQueryParams(u, out)
				if err != nil {
					return err
				}
				params = out[:n]
			} else {
				params = u.QueryParams()
			}
			c.log.Debug().Int("count", len(params)).Msg("split query params")
			return c.writeParams(params)
		},
	}
	cmd.Flags().IntVar(&maxParams, "max", 0, "maximum number of params; 0 means unlimited")
	return cmd
}
