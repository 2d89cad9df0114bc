package embedded

import (
	"embed"
)

// FS embeds the published fit data at build time: publication metadata
// plus the chi-squared and scan files for every (publication, variant) pair.
//
//go:embed catalog/*
var FS embed.FS
