/*
Package kanjidic decodes KANJIDIC2 character entries into fully typed,
validated records.

Given a parsed XML document tree, the kanji sub-package maps each
<character> element onto a Character record: alternate codepoints,
radical classifications, school grade, stroke counts, variant
cross-references, indices into more than twenty reference books,
query codes (SKIP, Four Corner, De Roo, Spahn-Hadamitzky), readings
in several scripts, glosses grouped by language, name readings and
the radical decomposition of the literal.

The compact reference codes embedded in the source document each have
their own small text grammar; the codes sub-package decodes them into
structured values. The xmlutil sub-package supplies the node accessors
used to walk the tree, and kderr the positioned error values every
layer reports failures with.

Decoding is a pure, synchronous transformation of an in-memory tree.
Records are independent of one another, so callers processing a whole
dictionary may decode characters from as many goroutines as they like.

See the kanji sub-directory for the record types and the entry points
Decode and DecodeAll.
*/
package kanjidic
