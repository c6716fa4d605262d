package shortcut

import (
	"fmt"
	"strings"

	lnk "github.com/parsiya/golnk"
)

// Record is the decoded view of a shortcut file.
type Record struct {
	TargetPath   string `json:"target_path" yaml:"target_path"`
	WorkingDir   string `json:"working_dir" yaml:"working_dir"`
	Arguments    string `json:"arguments" yaml:"arguments"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	RelativePath string `json:"relative_path,omitempty" yaml:"relative_path,omitempty"`
	IconLocation string `json:"icon_location,omitempty" yaml:"icon_location,omitempty"`
	TargetSize   uint32 `json:"target_size" yaml:"target_size"`
}

// Decoder produces a Record from a shortcut file on disk.
type Decoder interface {
	Decode(path string) (Record, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string) (Record, error)

// Decode calls f(path).
func (f DecoderFunc) Decode(path string) (Record, error) { return f(path) }

// LnkDecoder decodes MS-SHLLINK files with golnk.
type LnkDecoder struct{}

// Decode opens and parses the shortcut at path. Missing files, permission
// errors and malformed data are all returned wrapped with the path.
func (LnkDecoder) Decode(path string) (Record, error) {
	f, err := lnk.File(path)
	if err != nil {
		return Record{}, fmt.Errorf("reading shortcut %s: %w", path, err)
	}
	return fromLnk(f), nil
}

func fromLnk(f lnk.LnkFile) Record {
	info := f.LinkInfo
	return Record{
		TargetPath: resolveTarget(
			firstNonEmpty(info.LocalBasePathUnicode, info.LocalBasePath),
			firstNonEmpty(info.CommonPathSuffixUnicode, info.CommonPathSuffix),
			info.NetworkRelativeLink.NetName,
			f.StringData.RelativePath,
		),
		WorkingDir:   f.StringData.WorkingDir,
		Arguments:    f.StringData.CommandLineArguments,
		Description:  f.StringData.NameString,
		RelativePath: f.StringData.RelativePath,
		IconLocation: f.StringData.IconLocation,
		TargetSize:   f.Header.TargetFileSize,
	}
}

// resolveTarget builds the shortcut's target path. A local base path wins
// over a network share name; RelativePath is the last resort for links
// written without LinkInfo. The local suffix is appended as stored, the
// share name and suffix are joined with a separator.
func resolveTarget(localBase, suffix, netName, relative string) string {
	switch {
	case localBase != "":
		return localBase + suffix
	case netName != "":
		return joinShare(netName, suffix)
	default:
		return relative
	}
}

func joinShare(share, suffix string) string {
	if suffix == "" || strings.HasSuffix(share, `\`) {
		return share + suffix
	}
	return share + `\` + suffix
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
