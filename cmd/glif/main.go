// glif - UFO glyph transcoder CLI tool
//
// Usage:
//
//	glif transcode [flags] [file...]   Transcode JSON glyph documents
//	glif decode [file]                 Decode binary frames and print JSON
//	glif draw [file]                   Print the point pen calls for a glyph
//	glif version                       Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const libVersion = "0.1.0"

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	var verbose bool
	root := &cobra.Command{
		Use:           "glif",
		Short:         "Transcode UFO glyphs into dynamic values and binary frames",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newTranscodeCmd(log))
	root.AddCommand(newDecodeCmd(log))
	root.AddCommand(newDrawCmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "glif %s\n", libVersion)
		},
	}
}
