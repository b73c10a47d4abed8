// Command staticlint — мультичекер статического анализа проекта.
// Объединяет стандартные проходы go/analysis, SA-анализаторы staticcheck,
// go-critic, nilerr, unused и собственный анализатор exit_call.
package main

import (
	"strings"

	gocritic "github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/gostaticanalysis/nilerr"
	"github.com/gostaticanalysis/unused"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/staticcheck"

	"github.com/yihenew-et/RSA-test/internal/analyzers/exitcallanalizer"
)

func main() {
	analyzers := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		loopclosure.Analyzer,
		nilerr.Analyzer,
		unused.Analyzer,
		gocritic.Analyzer,
		exitcallanalizer.ExitCallAnalyzer,
	}
	for name, analyzer := range staticcheck.Analyzers {
		if strings.HasPrefix(name, "SA") {
			analyzers = append(analyzers, analyzer)
		}
	}
	multichecker.Main(analyzers...)
}
