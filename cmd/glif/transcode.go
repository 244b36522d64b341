package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/madig/readwrite-ufo-glif/codec"
	"github.com/madig/readwrite-ufo-glif/transcode"
	"github.com/madig/readwrite-ufo-glif/ufo"
	"github.com/madig/readwrite-ufo-glif/value"
)

func newTranscodeCmd(log *logrus.Logger) *cobra.Command {
	var (
		configPath string
		output     string
		format     string
		crc        bool
		compress   bool
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "transcode [file...]",
		Short: "Transcode JSON glyph documents to JSON values or binary frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = cfg.override(cmd.Flags(), format, crc, compress, workers)
			if err := cfg.validate(); err != nil {
				return err
			}

			glyphs, err := readGlyphs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"glyphs":  len(glyphs),
				"workers": cfg.Workers,
				"format":  cfg.Format,
			}).Debug("transcoding")

			values, err := transcode.Many(cmd.Context(), glyphs, cfg.Workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			if cfg.Format == "binary" {
				w := codec.NewWriter(out, codec.Options{CRC: cfg.CRC, Compress: cfg.Compress})
				for i, v := range values {
					if err := w.WriteValue(v); err != nil {
						return fmt.Errorf("glyph %q: %w", glyphs[i].Name, err)
					}
				}
			} else {
				for i, v := range values {
					if err := writeJSON(out, v); err != nil {
						return fmt.Errorf("glyph %q: %w", glyphs[i].Name, err)
					}
				}
			}
			log.WithField("glyphs", len(values)).Debug("done")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file with defaults")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or binary")
	cmd.Flags().BoolVar(&crc, "crc", true, "include CRC-32 in binary frames")
	cmd.Flags().BoolVar(&compress, "compress", false, "zstd-compress binary payloads")
	cmd.Flags().IntVarP(&workers, "workers", "j", 4, "number of concurrent transcodes")
	return cmd
}

// readGlyphs loads every file argument, or stdin when there is none.
func readGlyphs(stdin io.Reader, paths []string) ([]*ufo.Glyph, error) {
	if len(paths) == 0 || (len(paths) == 1 && paths[0] == "-") {
		g, err := ufo.ReadGlyphJSON(stdin)
		if err != nil {
			return nil, err
		}
		return []*ufo.Glyph{g}, nil
	}
	glyphs := make([]*ufo.Glyph, 0, len(paths))
	for _, path := range paths {
		g, err := ufo.LoadGlyphJSON(path)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}

func writeJSON(w io.Writer, v *value.Value) error {
	data, err := value.ToJSONIndent(v, "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
