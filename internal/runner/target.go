// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"net/url"
	"path/filepath"
)

// normalizeTarget processes a document target and converts it into a
// standard form.
//
// Targets may be any valid URI or file path. When the target is a file path
// or a file URI then the path is converted to an absolute form relative to
// the file system roots. All non-file URIs are left as-is with the
// expectation that they will be handled by some other implementation.
func normalizeTarget(target string) string {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "" && u.Scheme != "file") {
		return target
	}
	if u.Scheme == "file" {
		target = u.Path
	}
	if !filepath.IsAbs(target) {
		return filepath.Join("/", target)
	}
	return target
}
