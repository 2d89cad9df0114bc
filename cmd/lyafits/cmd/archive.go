package cmd

import (
	"github.com/igmhub/lyafits"
)

// openArchive opens the archive the command should operate on: the
// directory named by --catalog (or the config file) when set, otherwise
// the embedded copy of the published data.
func openArchive() (lyafits.Archive, error) {
	if dir := catalogDir(); dir != "" {
		return lyafits.New(lyafits.WithLocalPath(dir))
	}
	return lyafits.New()
}
