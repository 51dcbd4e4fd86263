package internalcheck

import (
	"fmt"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// The public error model promises a 1:1 mirror of the engine's status
// enumeration. A status added to the backend without a matching public
// code would silently coarsen errors, so the mirror is enforced here.
func TestEveryStatusHasPublicCode(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg,
		"github.com/resonix-audio/resonix-go/pkg/resonix",
		"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend",
	)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var public, backend *types.Package
	for _, pkg := range pkgs {
		switch pkg.PkgPath {
		case "github.com/resonix-audio/resonix-go/pkg/resonix":
			public = pkg.Types
		case "github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend":
			backend = pkg.Types
		}
	}
	if public == nil || backend == nil {
		t.Fatal("packages did not resolve")
	}

	var findings []string
	statuses := 0

	for _, name := range backend.Scope().Names() {
		if !strings.HasPrefix(name, "Status") || name == "Status" {
			continue
		}
		status, ok := backend.Scope().Lookup(name).(*types.Const)
		if !ok {
			continue
		}
		statuses++

		codeName := "Code" + strings.TrimPrefix(name, "Status")
		obj := public.Scope().Lookup(codeName)
		if obj == nil {
			findings = append(findings, fmt.Sprintf("backend.%s has no resonix.%s", name, codeName))
			continue
		}
		code, ok := obj.(*types.Const)
		if !ok {
			findings = append(findings, fmt.Sprintf("resonix.%s is not a constant", codeName))
			continue
		}
		if status.Val().String() != code.Val().String() {
			findings = append(findings, fmt.Sprintf(
				"resonix.%s = %s does not match backend.%s = %s",
				codeName, code.Val(), name, status.Val()))
		}
	}

	if statuses == 0 {
		t.Fatal("no status constants found in the backend package")
	}
	if len(findings) > 0 {
		t.Fatalf("status mirror violation:\n%s", strings.Join(findings, "\n"))
	}
}
