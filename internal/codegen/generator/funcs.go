package generator

import (
	"strings"
	"text/template"

	"github.com/eovim/apigen/internal/codegen/common"
	"github.com/eovim/apigen/internal/codegen/registry"
	"github.com/eovim/apigen/internal/codegen/transform"
)

func tplFuncs() template.FuncMap {
	return template.FuncMap{
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"snakecase":  common.ToSnakeCase,
		"pascalcase": common.ToPascalCase,
		"cident":     common.CIdentifier,
		"join":       strings.Join,
		"add":        func(a, b int) int { return a + b },
		"isNone":     func(s registry.Symbol) bool { return s.IsNone() },
		"params":     cParams,
		"args":       cArgs,
	}
}

// cParams renders "s_buffer* buffer, t_int n". An empty list yields "".
func cParams(ps []transform.Param) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		parts = append(parts, p.Type+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// cArgs renders "buffer, n".
func cArgs(ps []transform.Param) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		parts = append(parts, p.Name)
	}
	return strings.Join(parts, ", ")
}
