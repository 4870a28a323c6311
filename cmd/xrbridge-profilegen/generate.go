package main

import (
	"fmt"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"users": usersExpr,
}

var tablesTmpl = template.Must(template.New("tables").Funcs(funcMap).Parse(`// Code generated by xrbridge-profilegen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

// componentTable lists the valid components of each interaction profile.
var componentTable = map[Profile][]component{
{{- range .Catalog.Profiles}}
	{{.Profile}}: {
{{- $p := .}}
{{- range .Components}}
		{ {{quote .Path}}, {{users $p.Users .Sides}} },
{{- end}}
	},
{{- end}}
}

// componentNames lists the localized component names of each family.
var componentNames = map[Family][]componentName{
{{- range .Catalog.Families}}
	{{.Family}}: {
{{- range .Names}}
		{ {{quote .Prefix}}, {{quote .Name}} },
{{- end}}
	},
{{- end}}
}

// trackerComponentNames lists the localized component names of trackers.
var trackerComponentNames = []componentName{
{{- range .Catalog.Tracker.Names}}
	{ {{quote .Prefix}}, {{quote .Name}} },
{{- end}}
}

// trackerRoles lists the tracker roles in enumeration order.
var trackerRoles = []TrackerRole{
{{- range .Catalog.Tracker.Roles}}
	{ {{quote .Role}}, {{quote .Name}} },
{{- end}}
}
`))

// Generate renders the tables for a catalog.
func Generate(c *RawCatalog, pkg, source string) (string, error) {
	var b strings.Builder
	err := tablesTmpl.Execute(&b, struct {
		Package string
		Source  string
		Catalog *RawCatalog
	}{pkg, source, c})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// usersExpr returns the userMask expression for a component.
func usersExpr(users string, sides []string) string {
	if users == "roles" {
		return "usersRoles"
	}
	var left, right bool
	for _, s := range sides {
		switch s {
		case "left":
			left = true
		case "right":
			right = true
		}
	}
	switch {
	case left && !right:
		return "usersLeft"
	case right && !left:
		return "usersRight"
	default:
		return "usersHands"
	}
}
