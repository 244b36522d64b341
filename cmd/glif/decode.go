package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/madig/readwrite-ufo-glif/codec"
)

func newDecodeCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode binary frames and print each value as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				input = f
			}

			r := codec.NewReader(input)
			n := 0
			for {
				v, err := r.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				n++
				log.WithField("frame", n).Debug("decoded frame")
				if err := writeJSON(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
