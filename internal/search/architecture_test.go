package search

import (
	"strings"
	"testing"

	"rostercore/testutil"
)

func TestSearchIsIndependentOfRoster(t *testing.T) {
	rosterPkg := func(path string) bool { return strings.HasPrefix(path, "rostercore/") }
	testutil.AssertNoDirectImports(t, ".", testutil.AnyOf(testutil.InfraImportForbidden, rosterPkg),
		"search is an external collaborator and must not reach into roster packages")
}
