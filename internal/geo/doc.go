// Package geo infers the administrative district a news story is about from its
// free-text fields.
//
// Resolution is a three-phase cascade over a caller-supplied candidate list:
//   - exact: whole-word match of a district name or its headquarters
//   - alias: whole-word match of a known alternate name from the AliasTable
//   - fuzzy: normalized Levenshtein similarity between story tokens and names
//
// Key functions:
//   - NewMatcher / Matcher.Infer: resolve a Story against DistrictCandidates
//   - InferDistrict / InferDistrictName: package-level helpers on a default Matcher
//   - DefaultAliases: the built-in alias table
//   - Similarity: normalized edit-distance score
package geo
