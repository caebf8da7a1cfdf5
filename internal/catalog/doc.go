// Package catalog loads district candidate lists and alias extensions from
// YAML files.
//
// A catalog file covers one country or region:
//
//	version: "1"
//	country: India
//	region: Karnataka
//	districts:
//	  - name: Bengaluru Urban
//	    headquarters: Bengaluru
//	    aliases: [Bangalore Urban]
//	  - name: Kodagu
//	    headquarters: Madikeri
//	aliases:
//	  Mumbai: [Bombay]
//
// District-level aliases and the top-level aliases map both extend the
// built-in alias table; they never replace it. A district may override the
// file region with its own region key.
package catalog
