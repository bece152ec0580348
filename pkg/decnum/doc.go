// Package decnum resolves engineering-document decimal numbers into the
// logical storage paths used by the document archive.
//
// A decimal number identifies a design document (specification, assembly
// drawing, detail drawing, software module) and is written in the native
// Cyrillic notation, for example "ВУИА.735678.123СБ". The archive keeps every
// document under a directory tree derived from that number:
//
//	ВУИА.735678.123СБ  ->  VUIA/735678/123/SB
//	ВУИА.735678.12-3   ->  VUIA/735678/12/-3/KD
//	ВУИА.012345-123    ->  VUIA/012345/123/SP
//
// # Resolution Stages
//
//  1. Company code: the native prefix (ВУИА, ЮПИЯ, or the positional БА form)
//     is rewritten to its canonical code (VUIA, _UPI_A, BA).
//
//  2. Document class: VUIA and _UPI_A numbers whose classification group
//     starts with 0, 1 or 2 are software documents and use a "-" delimited
//     grammar. Everything else uses the "." delimited standard grammar.
//
//  3. Segments: the number is split into the middle part (classification
//     group) and the last part (item number and specifier). Standard numbers
//     without an explicit specifier get one from the middle part's leading
//     digit: 1-6 is a specification (СП), 7-9 is a detail design (КД).
//
//  4. Path: the specifier abbreviation is resolved through a SpecifierLookup
//     and the segments are assembled in order.
//
// # Usage
//
//	resolver, err := decnum.New(specifier.Default(),
//	    decnum.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//
//	p, err := resolver.Resolve("ВУИА.735678.123")
//	if errors.Is(err, decnum.ErrUnsupportedDocSpecifier) {
//	    // unknown document type
//	}
//	fmt.Println(p) // VUIA/735678/123/KD
//
// A Resolver holds no mutable state and is safe for concurrent use as long as
// its SpecifierLookup is read-only.
package decnum
