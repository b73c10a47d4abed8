// Package exitcallanalizer содержит статический анализатор,
// запрещающий использовать прямой вызов os.Exit в функции main пакета main.
// Завершение процесса с ненулевым кодом должно проходить через log.Fatal
// после обработки ошибки.
package exitcallanalizer

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

var ExitCallAnalyzer = &analysis.Analyzer{
	Name: "exit_call",
	Doc:  "checks call of os.Exit in function main of package main",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		if file.Name.Name != "main" {
			continue
		}
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}
			ast.Inspect(fn.Body, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}
				if isOsExit(call.Fun) {
					pass.Reportf(call.Pos(), "call os.Exit() in main function of main package")
				}
				return true
			})
		}
	}
	return nil, nil
}

func isOsExit(expr ast.Expr) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "os" && sel.Sel.Name == "Exit"
}
