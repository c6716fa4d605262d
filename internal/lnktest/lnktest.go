// Package lnktest writes minimal MS-SHLLINK files for tests. It covers only
// what the CLI reads: LinkInfo (local, Unicode and network targets) and the
// StringData section. Strings must be ASCII.
package lnktest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"
)

// Link flags from MS-SHLLINK 2.1.1.
const (
	flagHasLinkInfo     = 0x00000002
	flagHasName         = 0x00000004
	flagHasRelativePath = 0x00000008
	flagHasWorkingDir   = 0x00000010
	flagHasArguments    = 0x00000020
	flagHasIconLocation = 0x00000040
	flagIsUnicode       = 0x00000080
)

const (
	headerSize           = 0x4C
	linkInfoHeaderSize   = 0x1C
	linkInfoUnicodeSize  = 0x24
	volumeIDHeaderSize   = 0x10
	netLinkHeaderSize    = 0x14
	driveFixed           = 3
	fileAttributeArchive = 0x20
	showNormal           = 1
)

var linkCLSID = [16]byte{
	0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// LinkInfo flags from MS-SHLLINK 2.3.
const (
	volumeIDAndLocalBasePath               = 0x1
	commonNetworkRelativeLinkAndPathSuffix = 0x2
)

// Shortcut describes the fields to encode. Empty strings are omitted from
// StringData. LinkInfo is written when LocalBasePath or NetName is set; the
// Unicode variants switch it to the 0x24 header and only apply to local
// targets.
type Shortcut struct {
	LocalBasePath           string
	LocalBasePathUnicode    string
	CommonPathSuffix        string
	CommonPathSuffixUnicode string
	NetName                 string

	Name         string
	RelativePath string
	WorkingDir   string
	Arguments    string
	IconLocation string
	TargetSize   uint32
}

// Bytes encodes s as a .lnk file.
func (s Shortcut) Bytes() []byte {
	var flags uint32 = flagIsUnicode
	if s.hasLinkInfo() {
		flags |= flagHasLinkInfo
	}
	strs := []struct {
		flag uint32
		val  string
	}{
		{flagHasName, s.Name},
		{flagHasRelativePath, s.RelativePath},
		{flagHasWorkingDir, s.WorkingDir},
		{flagHasArguments, s.Arguments},
		{flagHasIconLocation, s.IconLocation},
	}
	for _, e := range strs {
		if e.val != "" {
			flags |= e.flag
		}
	}

	var buf bytes.Buffer
	le := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	// ShellLinkHeader
	le(uint32(headerSize))
	buf.Write(linkCLSID[:])
	le(flags)
	le(uint32(fileAttributeArchive))
	le(uint64(0)) // CreationTime
	le(uint64(0)) // AccessTime
	le(uint64(0)) // WriteTime
	le(s.TargetSize)
	le(int32(0)) // IconIndex
	le(uint32(showNormal))
	le(uint16(0)) // HotKey
	le(uint16(0))
	le(uint32(0))
	le(uint32(0))

	if s.hasLinkInfo() {
		buf.Write(s.linkInfo())
	}

	for _, e := range strs {
		if e.val == "" {
			continue
		}
		units := utf16.Encode([]rune(e.val))
		le(uint16(len(units)))
		le(units)
	}

	// TerminalBlock
	le(uint32(0))
	return buf.Bytes()
}

func (s Shortcut) hasLinkInfo() bool {
	return s.LocalBasePath != "" || s.NetName != ""
}

func (s Shortcut) unicode() bool {
	return s.LocalBasePathUnicode != "" || s.CommonPathSuffixUnicode != ""
}

// linkInfo lays out the LinkInfo structure: header, VolumeID, LocalBasePath,
// CommonNetworkRelativeLink, CommonPathSuffix, then the Unicode strings.
func (s Shortcut) linkInfo() []byte {
	hdrSize := uint32(linkInfoHeaderSize)
	if s.unicode() {
		hdrSize = linkInfoUnicodeSize
	}

	var body bytes.Buffer
	offset := func() uint32 { return hdrSize + uint32(body.Len()) }

	var liFlags, volumeIDOffset, basePathOffset, netLinkOffset uint32
	if s.LocalBasePath != "" {
		liFlags |= volumeIDAndLocalBasePath
		volumeIDOffset = offset()
		body.Write(volumeID())
		basePathOffset = offset()
		body.Write(cString(s.LocalBasePath))
	}
	if s.NetName != "" {
		liFlags |= commonNetworkRelativeLinkAndPathSuffix
		netLinkOffset = offset()
		body.Write(netLink(s.NetName))
	}
	suffixOffset := offset()
	body.Write(cString(s.CommonPathSuffix))

	var basePathUnicodeOffset, suffixUnicodeOffset uint32
	if s.unicode() {
		basePathUnicodeOffset = offset()
		body.Write(wString(firstNonEmpty(s.LocalBasePathUnicode, s.LocalBasePath)))
		suffixUnicodeOffset = offset()
		body.Write(wString(firstNonEmpty(s.CommonPathSuffixUnicode, s.CommonPathSuffix)))
	}

	header := []uint32{
		hdrSize + uint32(body.Len()),
		hdrSize,
		liFlags,
		volumeIDOffset,
		basePathOffset,
		netLinkOffset,
		suffixOffset,
	}
	if s.unicode() {
		header = append(header, basePathUnicodeOffset, suffixUnicodeOffset)
	}

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, header)
	buf.Write(body.Bytes())
	return buf.Bytes()
}

// volumeID is a fixed-drive VolumeID with an empty ANSI label.
func volumeID() []byte {
	v := make([]byte, volumeIDHeaderSize+1)
	binary.LittleEndian.PutUint32(v[0:], uint32(len(v)))
	binary.LittleEndian.PutUint32(v[4:], driveFixed)
	binary.LittleEndian.PutUint32(v[8:], 0x1234ABCD)
	binary.LittleEndian.PutUint32(v[12:], volumeIDHeaderSize)
	return v
}

// netLink is a CommonNetworkRelativeLink carrying only an ANSI NetName.
func netLink(name string) []byte {
	n := cString(name)
	v := make([]byte, netLinkHeaderSize, netLinkHeaderSize+len(n))
	binary.LittleEndian.PutUint32(v[0:], uint32(netLinkHeaderSize+len(n)))
	binary.LittleEndian.PutUint32(v[8:], netLinkHeaderSize) // NetNameOffset
	return append(v, n...)
}

func cString(s string) []byte {
	return append([]byte(s), 0)
}

func wString(s string) []byte {
	units := append(utf16.Encode([]rune(s)), 0)
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	return b
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Write encodes s into dir/name and returns the file path.
func Write(t testing.TB, dir, name string, s Shortcut) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, s.Bytes(), 0644); err != nil {
		t.Fatalf("writing shortcut fixture: %v", err)
	}
	return path
}

// Notepad is the canonical fixture: notepad.exe with C:\Windows as its
// working directory and no arguments.
var Notepad = Shortcut{
	LocalBasePath: `C:\Windows\notepad.exe`,
	WorkingDir:    `C:\Windows`,
}
