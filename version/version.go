// Package version holds the instance API versions this SDK was built
// against and the compatibility rule the host applies to them.
package version

import (
	"github.com/coreos/go-semver/semver"

	"github.com/mediakit/addon-sdk/api"
)

// SDK is the version of this binding layer itself.
const SDK = "1.2.0"

// typeVersions is the instance API version per type, served through the
// module's get-type-version entry point. Bump only together with the host.
var typeVersions = map[api.InstanceType]string{
	api.TypeMain:          "1.0.14",
	api.TypeScreensaver:   "2.1.0",
	api.TypeVisualization: "2.2.1",
	api.TypeAudioDecoder:  "1.1.0",
	api.TypeInputStream:   "2.0.3",
	api.TypePeripheral:    "1.3.2",
	api.TypeVFS:           "1.0.1",
	api.TypeGame:          "1.1.1",
}

// typeMinVersions is the oldest version per type the current API still
// speaks, served through the get-type-min-version entry point.
var typeMinVersions = map[api.InstanceType]string{
	api.TypeMain:          "1.0.0",
	api.TypeScreensaver:   "2.0.0",
	api.TypeVisualization: "2.2.0",
	api.TypeAudioDecoder:  "1.0.0",
	api.TypeInputStream:   "2.0.0",
	api.TypePeripheral:    "1.3.0",
	api.TypeVFS:           "1.0.0",
	api.TypeGame:          "1.0.0",
}

// ForType returns the instance API version built into this SDK for the
// given type, or "" for a type it does not know.
func ForType(t api.InstanceType) string {
	return typeVersions[t]
}

// MinForType returns the minimum still-supported version for the given
// type, or "" for a type it does not know.
func MinForType(t api.InstanceType) string {
	return typeMinVersions[t]
}

// Compatible reports whether a peer speaking candidate for type t can talk
// to this SDK: same major as the current version and not older than the
// minimum. Unparseable input is incompatible.
func Compatible(t api.InstanceType, candidate string) bool {
	cur, err := semver.NewVersion(ForType(t))
	if err != nil {
		return false
	}
	min, err := semver.NewVersion(MinForType(t))
	if err != nil {
		return false
	}
	cand, err := semver.NewVersion(candidate)
	if err != nil {
		return false
	}
	if cand.Major != cur.Major {
		return false
	}
	return !cand.LessThan(*min)
}
