package main

import (
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

// buildVersion returns the module version embedded at build time, without
// build metadata such as "+dirty".
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}

	return normalizeVersion(info.Main.Version)
}

func normalizeVersion(raw string) string {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}

	stripped, err := v.SetMetadata("")
	if err != nil {
		return raw
	}

	return "v" + stripped.String()
}
