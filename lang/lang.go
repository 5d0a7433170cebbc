// Package lang enumerates the languages for which hyphenation dictionaries
// exist. Each language has a short code, used in resource names and in the
// encoded dictionaries, and an English display name used in messages.
package lang

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language identifies a hyphenation language. The zero value is not a valid
// language.
type Language uint8

const (
	Afrikaans Language = iota + 1
	Armenian
	Assamese
	Basque
	Belarusian
	Bengali
	Bulgarian
	Catalan
	Chinese
	Coptic
	Croatian
	Czech
	Danish
	Dutch
	EnglishGB
	EnglishUS
	Esperanto
	Estonian
	Ethiopic
	Finnish
	FinnishScholastic
	French
	Friulan
	Galician
	Georgian
	German1901
	German1996
	GermanSwiss
	GreekAncient
	GreekMono
	GreekPoly
	Gujarati
	Hindi
	Hungarian
	Icelandic
	Indonesian
	Interlingua
	Irish
	Italian
	Kannada
	Kurmanji
	Latin
	LatinClassic
	LatinLiturgical
	Latvian
	Lithuanian
	Macedonian
	Malayalam
	Marathi
	Mongolian
	NorwegianBokmal
	NorwegianNynorsk
	Occitan
	Oriya
	Pali
	Panjabi
	Piedmontese
	Polish
	Portuguese
	Romanian
	Romansh
	Russian
	Sanskrit
	SerbianCyrillic
	SerbocroatianCyrillic
	SerbocroatianLatin
	SlavonicChurch
	Slovak
	Slovenian
	Spanish
	Swedish
	Tamil
	Telugu
	Thai
	Turkish
	Turkmen
	Ukrainian
	Uppersorbian
	Welsh

	numLanguages = iota
)

type info struct {
	code string
	name string
}

var table = [numLanguages + 1]info{
	Afrikaans:             {"af", "Afrikaans"},
	Armenian:              {"hy", "Armenian"},
	Assamese:              {"as", "Assamese"},
	Basque:                {"eu", "Basque"},
	Belarusian:            {"be", "Belarusian"},
	Bengali:               {"bn", "Bengali"},
	Bulgarian:             {"bg", "Bulgarian"},
	Catalan:               {"ca", "Catalan"},
	Chinese:               {"zh-latn-pinyin", "Chinese (Pinyin)"},
	Coptic:                {"cop", "Coptic"},
	Croatian:              {"hr", "Croatian"},
	Czech:                 {"cs", "Czech"},
	Danish:                {"da", "Danish"},
	Dutch:                 {"nl", "Dutch"},
	EnglishGB:             {"en-gb", "English (GB)"},
	EnglishUS:             {"en-us", "English (US)"},
	Esperanto:             {"eo", "Esperanto"},
	Estonian:              {"et", "Estonian"},
	Ethiopic:              {"mul-ethi", "Ethiopic"},
	Finnish:               {"fi", "Finnish"},
	FinnishScholastic:     {"fi-x-school", "Finnish (scholastic)"},
	French:                {"fr", "French"},
	Friulan:               {"fur", "Friulan"},
	Galician:              {"gl", "Galician"},
	Georgian:              {"ka", "Georgian"},
	German1901:            {"de-1901", "German (1901 orthography)"},
	German1996:            {"de-1996", "German (1996 orthography)"},
	GermanSwiss:           {"de-ch-1901", "German (Swiss)"},
	GreekAncient:          {"grc", "Ancient Greek"},
	GreekMono:             {"el-monoton", "Greek (monotonic)"},
	GreekPoly:             {"el-polyton", "Greek (polytonic)"},
	Gujarati:              {"gu", "Gujarati"},
	Hindi:                 {"hi", "Hindi"},
	Hungarian:             {"hu", "Hungarian"},
	Icelandic:             {"is", "Icelandic"},
	Indonesian:            {"id", "Indonesian"},
	Interlingua:           {"ia", "Interlingua"},
	Irish:                 {"ga", "Irish"},
	Italian:               {"it", "Italian"},
	Kannada:               {"kn", "Kannada"},
	Kurmanji:              {"kmr", "Kurmanji"},
	Latin:                 {"la", "Latin"},
	LatinClassic:          {"la-x-classic", "Latin (classical)"},
	LatinLiturgical:       {"la-x-liturgic", "Latin (liturgical)"},
	Latvian:               {"lv", "Latvian"},
	Lithuanian:            {"lt", "Lithuanian"},
	Macedonian:            {"mk", "Macedonian"},
	Malayalam:             {"ml", "Malayalam"},
	Marathi:               {"mr", "Marathi"},
	Mongolian:             {"mn-cyrl", "Mongolian"},
	NorwegianBokmal:       {"nb", "Norwegian Bokmål"},
	NorwegianNynorsk:      {"nn", "Norwegian Nynorsk"},
	Occitan:               {"oc", "Occitan"},
	Oriya:                 {"or", "Oriya"},
	Pali:                  {"pi", "Pali"},
	Panjabi:               {"pa", "Panjabi"},
	Piedmontese:           {"pms", "Piedmontese"},
	Polish:                {"pl", "Polish"},
	Portuguese:            {"pt", "Portuguese"},
	Romanian:              {"ro", "Romanian"},
	Romansh:               {"rm", "Romansh"},
	Russian:               {"ru", "Russian"},
	Sanskrit:              {"sa", "Sanskrit"},
	SerbianCyrillic:       {"sr-cyrl", "Serbian (Cyrillic)"},
	SerbocroatianCyrillic: {"sh-cyrl", "Serbo-Croatian (Cyrillic)"},
	SerbocroatianLatin:    {"sh-latn", "Serbo-Croatian (Latin)"},
	SlavonicChurch:        {"cu", "Church Slavonic"},
	Slovak:                {"sk", "Slovak"},
	Slovenian:             {"sl", "Slovenian"},
	Spanish:               {"es", "Spanish"},
	Swedish:               {"sv", "Swedish"},
	Tamil:                 {"ta", "Tamil"},
	Telugu:                {"te", "Telugu"},
	Thai:                  {"th", "Thai"},
	Turkish:               {"tr", "Turkish"},
	Turkmen:               {"tk", "Turkmen"},
	Ukrainian:             {"uk", "Ukrainian"},
	Uppersorbian:          {"hsb", "Upper Sorbian"},
	Welsh:                 {"cy", "Welsh"},
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, numLanguages)
	for _, l := range All() {
		m[l.Code()] = l
	}
	return m
}()

// All returns every supported language in declaration order.
func All() []Language {
	out := make([]Language, 0, numLanguages)
	for l := Language(1); l <= numLanguages; l++ {
		out = append(out, l)
	}
	return out
}

func (l Language) Valid() bool {
	return l >= 1 && l <= numLanguages
}

// Code returns the short code, e.g. "en-us". Invalid languages have an
// empty code.
func (l Language) Code() string {
	if !l.Valid() {
		return ""
	}
	return table[l].code
}

func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", uint8(l))
	}
	return table[l].name
}

// Parse looks up a language by its exact short code.
func Parse(code string) (Language, error) {
	if l, ok := byCode[code]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("unknown language code %q", code)
}

func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid language %d", uint8(l))
	}
	return []byte(l.Code()), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

var (
	_ msgpack.CustomEncoder = Language(0)
	_ msgpack.CustomDecoder = (*Language)(nil)
)

// EncodeMsgpack writes the language as its short code.
func (l Language) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !l.Valid() {
		return fmt.Errorf("invalid language %d", uint8(l))
	}
	return enc.EncodeString(l.Code())
}

func (l *Language) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return l.UnmarshalText([]byte(code))
}

// Tag returns the BCP 47 tag corresponding to the short code.
func (l Language) Tag() language.Tag {
	return language.Make(l.Code())
}

// DisplayName returns the name of the language in the language given by in,
// falling back to the English display form when x/text has no name for it.
func (l Language) DisplayName(in language.Tag) string {
	if name := display.Tags(in).Name(l.Tag()); name != "" {
		return name
	}
	return l.String()
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, numLanguages)
	for _, l := range All() {
		tags = append(tags, l.Tag())
	}
	return language.NewMatcher(tags)
}()

// Match picks the supported language closest to tag. The confidence is
// language.No when nothing usable was found, in which case the returned
// language must not be used.
func Match(tag language.Tag) (Language, language.Confidence) {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return 0, conf
	}
	return Language(idx + 1), conf
}
