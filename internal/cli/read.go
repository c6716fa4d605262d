package cli

import (
	"fmt"
	"io"

	"github.com/read-lnk/read-lnk/internal/report"
	"github.com/read-lnk/read-lnk/internal/shortcut"
	"github.com/rs/zerolog"
)

// readLnk decodes the shortcut at path and renders it to w. Nothing is
// written to w unless decoding succeeds.
func readLnk(w io.Writer, dec shortcut.Decoder, path string, opts report.Options, log zerolog.Logger) error {
	log.Debug().Str("path", path).Msg("decoding shortcut")

	rec, err := dec.Decode(path)
	if err != nil {
		return &exitError{code: exitDecode, err: err}
	}
	log.Debug().
		Str("target", rec.TargetPath).
		Str("working_dir", rec.WorkingDir).
		Msg("decoded shortcut")

	if err := report.Write(w, rec, opts); err != nil {
		return fmt.Errorf("writing %s output: %w", opts.Format, err)
	}
	return nil
}
