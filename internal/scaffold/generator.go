package scaffold

import (
	"bytes"
	"fmt"
	"path"
	"text/template"

	scaffoldtmpl "github.com/example/koagen/internal/templates/scaffold"
)

// DefaultExt is the extension given to generated files.
const DefaultExt = ".js"

// Generator renders koacrab source files from templates.
type Generator struct {
	funcs    template.FuncMap
	ext      string
	reserved []string
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithExt sets the extension of generated files (".js" by default).
func WithExt(ext string) GeneratorOption {
	return func(g *Generator) { g.ext = ext }
}

// WithReservedFields replaces the columns left out of the service guards.
func WithReservedFields(reserved []string) GeneratorOption {
	return func(g *Generator) { g.reserved = reserved }
}

// NewGenerator creates a new Generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		funcs:    scaffoldtmpl.TemplateFuncs(),
		ext:      DefaultExt,
		reserved: DefaultReservedFields,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// controllerAction is one handler of the generated controller.
type controllerAction struct {
	Name   string // handler and service method name
	Source string // request property passed to the service: fields or query
}

var controllerActions = []controllerAction{
	{Name: "list", Source: "fields"},
	{Name: "info", Source: "query"},
	{Name: "del", Source: "query"},
	{Name: "add", Source: "fields"},
}

// templateData is what the koa templates see.
type templateData struct {
	*TableSpec
	Fields     []string // filtered, shadows TableSpec.Fields
	ServiceKey string
	Actions    []controllerAction
}

// ServiceFields returns the fields the service template guards: the parsed
// tokens minus the reserved columns.
func (g *Generator) ServiceFields(spec *TableSpec) []string {
	return FilterFields(spec.Fields, g.reserved)
}

// Paths returns the model, controller and service paths for spec, relative
// to the output root.
func (g *Generator) Paths(spec *TableSpec) (model, controller, service string) {
	model = path.Join("models", spec.Table.Camel+g.ext)
	controller = path.Join("controllers", spec.Parts.Folder, spec.File.Camel+g.ext)
	service = path.Join("services", spec.Parts.Folder, spec.File.Camel+g.ext)
	return model, controller, service
}

// Generate renders all three files for spec. Nothing is written.
func (g *Generator) Generate(spec *TableSpec) (*GeneratorResult, error) {
	data := &templateData{
		TableSpec:  spec,
		Fields:     g.ServiceFields(spec),
		ServiceKey: spec.Parts.Folder + "/" + spec.File.Camel,
		Actions:    controllerActions,
	}

	modelPath, controllerPath, servicePath := g.Paths(spec)
	files := []struct {
		kind     string
		template string
		path     string
	}{
		{KindModel, "model.js", modelPath},
		{KindController, "controller.js", controllerPath},
		{KindService, "service.js", servicePath},
	}

	result := &GeneratorResult{Spec: spec}
	for _, f := range files {
		content, err := g.renderTemplate(f.template, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", f.template, err)
		}
		result.Files = append(result.Files, GeneratedFile{
			Kind:    f.kind,
			Path:    f.path,
			Content: content,
		})
	}

	return result, nil
}

// RenderModel renders the data-access model for spec.
func (g *Generator) RenderModel(spec *TableSpec) (string, error) {
	return g.renderKind(spec, KindModel)
}

// RenderController renders the request controller for spec.
func (g *Generator) RenderController(spec *TableSpec) (string, error) {
	return g.renderKind(spec, KindController)
}

// RenderService renders the business service for spec.
func (g *Generator) RenderService(spec *TableSpec) (string, error) {
	return g.renderKind(spec, KindService)
}

func (g *Generator) renderKind(spec *TableSpec, kind string) (string, error) {
	result, err := g.Generate(spec)
	if err != nil {
		return "", err
	}
	for _, f := range result.Files {
		if f.Kind == kind {
			return f.Content, nil
		}
	}
	return "", fmt.Errorf("unknown file kind %q", kind)
}

// renderTemplate renders a koa template.
func (g *Generator) renderTemplate(name string, data any) (string, error) {
	tmplContent, err := scaffoldtmpl.GetKoaTemplate(name)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Funcs(g.funcs).Option("missingkey=error").Parse(tmplContent)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
