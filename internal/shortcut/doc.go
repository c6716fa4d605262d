// Package shortcut turns a Windows shortcut (.lnk) file into a Record.
// Binary decoding is delegated to github.com/parsiya/golnk; this package
// only picks fields out of the decoded structure and resolves the target
// path from the LinkInfo section.
package shortcut
