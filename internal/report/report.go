// Package report renders a shortcut.Record for the terminal.
package report

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/read-lnk/read-lnk/internal/shortcut"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Schema is the JSON Schema for FormatJSON output.
//
//go:embed schema/record.schema.json
var Schema []byte

// Format selects how a Record is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted values for --output.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

var printer = message.NewPrinter(language.English)

// ParseFormat maps a flag or config value to a Format. Matching ignores case
// and surrounding space.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of text, json, yaml)", ErrUnknownFormat, s)
}

// Options control rendering.
type Options struct {
	Format Format
	// All adds the optional string fields to text output. JSON and YAML
	// always carry every field.
	All bool
}

// Write renders rec to w.
func Write(w io.Writer, rec shortcut.Record, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, rec, opts.All)
	case FormatJSON:
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling record: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(opts.Format))
	}
}

func writeText(w io.Writer, rec shortcut.Record, all bool) error {
	lines := []string{
		"Path: " + rec.TargetPath,
		"Working Directory: " + rec.WorkingDir,
		"Arguments: " + rec.Arguments,
	}
	if all {
		lines = append(lines,
			"Description: "+rec.Description,
			"Relative Path: "+rec.RelativePath,
			"Icon Location: "+rec.IconLocation,
			printer.Sprintf("Target Size: %d bytes", rec.TargetSize),
		)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
