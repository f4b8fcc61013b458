// Package words supplies the two collaborators the ladder processor is
// parameterized over: word sources and adjacency rules.
//
// What:
//
//   - FileSource reads a newline-delimited dictionary file, normalizing
//     each entry (trimmed, lower-cased) and skipping blank lines.
//   - SliceSource serves an in-memory word list — handy in tests and
//     examples.
//   - EditDistanceOne is the classic word-ladder adjacency rule: two
//     words are linked when one substitution, or one insertion/deletion,
//     transforms one into the other.
//
// The processor treats both collaborators as opaque: any WordSource and
// any pure, symmetric predicate work equally well.
//
// Words are compared byte-wise; sources normalize to lower case, so
// ASCII dictionaries behave as expected.
package words
