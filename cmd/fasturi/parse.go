package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valyala/fasturi"
)

func (c *cli) newParseCommand() *cobra.Command {
	var withParams bool
	cmd := &cobra.Command{
		Use:   "parse <uri>...",
		Short: "Print the parts of each URI",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uris := make([]*fasturi.URI, 0, len(args))
			failed := 0
			for _, s := range args {
				u, err := fasturi.ParseString(s)
				if err != nil {
					c.log.Error().Err(err).Str("uri", s).Msg("cannot parse uri")
					failed++
					continue
				}
				c.log.Debug().Str("uri", s).Bytes("host", u.Host()).Int("port", u.Port()).Msg("parsed uri")
				uris = append(uris, u)
			}
			if err := c.writeURIs(uris, withParams); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d uris are malformed: %w", failed, len(args), fasturi.ErrMalformedInput)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&withParams, "params", "p", false, "print query string params")
	return cmd
}
