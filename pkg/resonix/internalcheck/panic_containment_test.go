package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Every dispatch function is invoked directly by engine worker threads,
// so each one must arm containPanic before doing anything else. A
// dispatcher whose first statement is anything other than that defer
// can let a panic unwind across the foreign call boundary.
func TestDispatchersContainPanicsFirst(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/resonix-audio/resonix-go/pkg/resonix")
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string
	dispatchers := 0

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			ast.Inspect(file, func(n ast.Node) bool {
				fn, ok := n.(*ast.FuncDecl)
				if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "dispatch") {
					return true
				}
				dispatchers++

				pos := fset.Position(fn.Pos())
				if fn.Body == nil || len(fn.Body.List) == 0 {
					findings = append(findings, fmt.Sprintf("%s: %s has no body", pos, fn.Name.Name))
					return true
				}
				if !isContainPanicDefer(fn.Body.List[0]) {
					findings = append(findings, fmt.Sprintf(
						"%s: %s must start with `defer containPanic(&st, source)`", pos, fn.Name.Name))
				}
				return true
			})
		}
	}

	if dispatchers == 0 {
		t.Fatal("no dispatch functions found; the naming convention changed without updating this check")
	}
	if len(findings) > 0 {
		t.Fatalf("panic containment policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func isContainPanicDefer(stmt ast.Stmt) bool {
	deferStmt, ok := stmt.(*ast.DeferStmt)
	if !ok {
		return false
	}
	ident, ok := deferStmt.Call.Fun.(*ast.Ident)
	return ok && ident.Name == "containPanic"
}
