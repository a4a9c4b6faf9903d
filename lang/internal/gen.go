// gen is a codegen cmd for generating the language descriptor tables from
// internal/keywords.yaml.
package main

import (
	"log"
	"os"
	"sort"

	"github.com/dave/jennifer/jen"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type languageDef struct {
	Name          string   `yaml:"name"`
	Extension     string   `yaml:"extension"`
	StropSuffix   string   `yaml:"strop_suffix"`
	EscapePrefix  string   `yaml:"escape_prefix"`
	CaseSensitive bool     `yaml:"case_sensitive"`
	Reserved      []string `yaml:"reserved"`
}

func main() {
	buf, err := os.ReadFile("internal/keywords.yaml")
	if err != nil {
		log.Fatal("reading keyword file:", err)
	}
	var defs struct {
		Languages []languageDef `yaml:"languages"`
	}
	if err := yaml.Unmarshal(buf, &defs); err != nil {
		log.Fatal("decoding keyword file:", err)
	}

	titleCaser := cases.Title(language.English)
	varName := func(name string) string { return "reserved" + titleCaser.String(name) }

	f := jen.NewFile("lang")
	f.HeaderComment(`Code generated by "go run internal/gen.go"; DO NOT EDIT.`)
	f.Func().Id("init").Params().BlockFunc(func(g *jen.Group) {
		for _, d := range defs.Languages {
			g.Id("register").Call(jen.Id("newLanguage").Call(
				jen.Lit(d.Name),
				jen.Lit(d.Extension),
				jen.Lit(d.StropSuffix),
				jen.Lit(d.EscapePrefix),
				jen.Lit(d.CaseSensitive),
				jen.Id(varName(d.Name)),
			))
		}
	})
	for _, d := range defs.Languages {
		sort.Strings(d.Reserved)
		lits := make([]jen.Code, len(d.Reserved))
		for i, w := range d.Reserved {
			lits[i] = jen.Lit(w)
		}
		f.Commentf("%s holds the reserved identifier table for %s.", varName(d.Name), d.Name)
		f.Var().Id(varName(d.Name)).Op("=").Index().String().Custom(jen.Options{
			Open:      "{",
			Close:     "}",
			Separator: ",",
			Multi:     true,
		}, lits...)
	}
	if err := f.Save("reserved.go"); err != nil {
		log.Fatal("writing go file:", err)
	}
}
