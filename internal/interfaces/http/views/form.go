package views

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Tipos de campo soportados por los formularios del panel.
const (
	KindText     = "text"
	KindTextarea = "textarea"
	KindNumber   = "number"
	KindURL      = "url"
	KindEmail    = "email"
	KindTel      = "tel"
	KindDate     = "date"
	KindPassword = "password"
	KindCheckbox = "checkbox"
	KindSelect   = "select"
)

// Field campo de formulario. Name coincide con la etiqueta form del DTO y con la
// clave "field.<name>" del catálogo.
type Field struct {
	Name     string
	Kind     string
	Value    string
	Checked  bool
	Required bool
	Choices  []Choice
}

// Choice opción de un select.
type Choice struct {
	Value string
	Label string
}

// FormView formulario de alta o edición del panel.
type FormView struct {
	Title         string
	Action        string
	Cancel        string
	Fields        []Field
	Errors        map[string]string
	AutoTranslate bool // muestra la casilla de traducción automática
}

func field(p Page, f Field, errs map[string]string) g.Node {
	id := "f-" + f.Name
	errMsg, invalid := errs[f.Name]
	label := p.T.T("field." + f.Name)
	var input g.Node
	common := g.Group{ID(id), Name(f.Name), g.If(f.Required, Required()), g.If(invalid, g.Attr("aria-invalid", "true"))}
	if isArabicField(f.Name) {
		common = append(common, g.Attr("dir", "rtl"), Lang("ar"))
	}
	switch f.Kind {
	case KindTextarea:
		input = Textarea(common, Rows("5"), g.Text(f.Value))
	case KindCheckbox:
		return Div(Class("field checkbox"),
			Input(Type("checkbox"), common, Value("true"), g.If(f.Checked, Checked())),
			Label(For(id), g.Text(label)),
			fieldError(errMsg, invalid),
		)
	case KindSelect:
		input = Select(common,
			g.Map(f.Choices, func(c Choice) g.Node {
				return Option(Value(c.Value), g.If(c.Value == f.Value, Selected()), g.Text(c.Label))
			}),
		)
	default:
		kind := f.Kind
		if kind == "" {
			kind = KindText
		}
		input = Input(Type(kind), common, g.If(kind != KindPassword, Value(f.Value)))
	}
	return Div(Class("field"),
		Label(For(id), g.Text(label)),
		input,
		fieldError(errMsg, invalid),
	)
}

func fieldError(rule string, invalid bool) g.Node {
	if !invalid {
		return nil
	}
	return Small(Class("field-error"), g.Text(rule))
}

// isArabicField los campos *Ar se escriben de derecha a izquierda.
func isArabicField(name string) bool {
	return strings.HasSuffix(name, "Ar")
}

// FormPage formulario genérico del panel.
func FormPage(p Page, f FormView) g.Node {
	return AdminLayout(p,
		H1(g.Text(f.Title)),
		g.If(len(f.Errors) > 0, P(Class("notice error"), g.Text(p.T.T("flash.invalid")))),
		Form(Class("admin-form"), Method("post"), Action(f.Action),
			g.Map(f.Fields, func(fl Field) g.Node { return field(p, fl, f.Errors) }),
			g.If(f.AutoTranslate, field(p, Field{Name: "autoTranslate", Kind: KindCheckbox}, nil)),
			Div(Class("actions"),
				Button(Type("submit"), g.Text(p.T.T("common.save"))),
				A(Class("button secondary"), Href(f.Cancel), g.Text(p.T.T("common.cancel"))),
			),
		),
	)
}
