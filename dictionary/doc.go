// Package dictionary loads hyphenation dictionaries from files, readers and,
// in builds tagged embed_all, from dictionaries compiled into the binary.
//
// Loading functions are generic over the two dictionary variants:
//
//	en, err := dictionary.FromPath[dictionary.Standard](lang.EnglishUS, "en-us.standard.bincode")
//
// Every loader except the Any* variants checks that the decoded dictionary
// is for the requested language. Failures are classified by KindOf and match
// one of ErrDeserialization, ErrIO, ErrLanguageMismatch or ErrResource.
package dictionary
