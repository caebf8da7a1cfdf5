package catalog

import (
	"fmt"
	"sort"

	"newsgeo/internal/diagnostic"
	"newsgeo/internal/geo"
	"newsgeo/internal/validation"
)

// Validate checks the catalog against the built-in alias table.
func (c *Catalog) Validate() diagnostic.Diagnostics {
	return c.ValidateWith(geo.DefaultAliases())
}

// ValidateWith checks the catalog and reports every problem found. base is the
// alias table the catalog will extend; it may be nil.
//
// Errors: empty catalog, unsupported version, district without a name.
// Warnings: empty file, duplicate district names, headquarters or alias that
// only repeats the district name, alias claimed by two districts.
func (c *Catalog) ValidateWith(base *geo.AliasTable) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if c.Len() == 0 {
		diags.AddError(diagnostic.CodeEmptyCatalog, ErrNoDistricts.Error(), "", "")
	}

	names := map[string]string{}   // normalized name -> first location
	claimed := map[string]string{} // normalized alias -> canonical

	claim := func(alias, canon, source, path string) {
		key := geo.Normalize(alias)
		if key == "" {
			return
		}

		if key == geo.Normalize(canon) {
			diags.AddWarning(diagnostic.CodeRedundantAlias,
				fmt.Sprintf("alias %q repeats the district name", alias), source, path)

			return
		}

		if owner, ok := base.Canonical(alias); ok && geo.Normalize(owner) != geo.Normalize(canon) {
			diags.AddWarning(diagnostic.CodeAliasConflict,
				fmt.Sprintf("alias %q already belongs to %q in the built-in table", alias, owner), source, path)

			return
		}

		if owner, ok := claimed[key]; ok && geo.Normalize(owner) != geo.Normalize(canon) {
			diags.AddWarning(diagnostic.CodeAliasConflict,
				fmt.Sprintf("alias %q claimed by both %q and %q", alias, owner, canon), source, path)

			return
		}

		claimed[key] = canon
	}

	for _, f := range c.Files {
		if f.Version != CurrentVersion {
			diags.AddError(diagnostic.CodeUnsupportedFormat,
				fmt.Sprintf("catalog version %q is not supported, expected %q", f.Version, CurrentVersion), f.Source, "version")
		}

		if len(f.Districts) == 0 {
			diags.AddWarning(diagnostic.CodeEmptyCatalog, "file lists no districts", f.Source, "districts")
		}

		for i := range f.Districts {
			d := &f.Districts[i]
			path := fmt.Sprintf("districts[%d]", i)

			if verr := validation.ValidateStruct(d); verr != nil {
				for _, fe := range verr.Errors() {
					diags.AddError(diagnostic.CodeMissingName, fe.Error(), f.Source, path+"."+fe.Field())
				}

				continue
			}

			key := geo.Normalize(d.Name)
			loc := f.Source + " " + path
			if first, ok := names[key]; ok {
				diags.AddWarning(diagnostic.CodeDuplicateName,
					fmt.Sprintf("district %q already listed at %s", d.Name, first), f.Source, path+".name")
			} else {
				names[key] = loc
			}

			if d.Headquarters != "" && geo.Normalize(d.Headquarters) == key {
				diags.AddWarning(diagnostic.CodeRedundantHQ, "headquarters repeats the district name", f.Source, path+".headquarters")
			}

			for j, a := range d.Aliases {
				claim(a, d.Name, f.Source, fmt.Sprintf("%s.aliases[%d]", path, j))
			}
		}

		for _, canon := range sortedKeys(f.Aliases) {
			for j, a := range f.Aliases[canon] {
				claim(a, canon, f.Source, fmt.Sprintf("aliases[%s][%d]", canon, j))
			}
		}
	}

	return diags
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
