package main

import (
	"strings"

	"github.com/sdv-model/vss-go/pkg/schema"
)

// Generate renders the typed façade for def as unformatted Go source in
// package pkg.
func Generate(def *schema.Definition, pkg string) (string, error) {
	data, err := buildModel(def, pkg)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	renderTemplate(&b, "header", data)
	for _, d := range data.Decls {
		switch {
		case d.Branch != nil:
			renderTemplate(&b, "branch", d.Branch)
		case d.Collection != nil:
			renderTemplate(&b, "collection", d.Collection)
		}
	}
	return b.String(), nil
}
