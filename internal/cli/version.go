package cli

import "fmt"

type buildInfo struct {
	version string
	commit  string
	date    string
}

func versionTemplate(b buildInfo) string {
	return fmt.Sprintf("{{.Name}} version {{.Version}} (commit: %s, built: %s)\n", b.commit, b.date)
}
