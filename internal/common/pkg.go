package common

import "path"

// PkgAlias returns the short package alias (last path element) used when
// rendering type labels like "data.Person". Empty input stays empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
