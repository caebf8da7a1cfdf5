// Package diagnostic collects structured errors, warnings and notes produced
// while checking district catalogs and story input.
//
// A single pass reports every problem it finds instead of stopping at the
// first one; callers decide whether warnings are fatal.
package diagnostic
