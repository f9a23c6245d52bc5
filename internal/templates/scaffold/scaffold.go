// Package scaffold provides templates for code generation.
package scaffold

import (
	"embed"
	"fmt"
	"text/template"
)

//go:embed koa/*.tmpl
var scaffoldTemplates embed.FS

// GetKoaTemplate returns the content of a koacrab template: "model.js",
// "controller.js" or "service.js".
func GetKoaTemplate(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile("koa/" + name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TemplateFuncs returns the template function map for scaffold templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"guard": formatGuard,
	}
}

// formatGuard renders the copy-if-present block for one field of target.
// The first line is left unindented; the template places it.
// e.g. guard "updateData" "title" ->
//
//	if (info.hasOwnProperty('title')) {
//	    updateData['title'] = info['title'] || '';
//	}
func formatGuard(target, field string) string {
	return fmt.Sprintf("if (info.hasOwnProperty('%[2]s')) {\n"+
		"                    %[1]s['%[2]s'] = info['%[2]s'] || '';\n"+
		"                }", target, field)
}
