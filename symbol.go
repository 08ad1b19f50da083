package searchparams

// Single character symbols used by the query string grammar and the
// component codec. Both codec directions go through these constants so
// every encodable character has exactly one canonical escape.
const (
	ampersand            = "&"
	equals               = "="
	questionMark         = "?"
	percent              = "%"
	whitespace           = " "
	carriageReturn       = "\r"
	newLine              = "\n"
	exclamationMark      = "!"
	quotationMark        = "\""
	numberSign           = "#"
	dollar               = "$"
	singleQuote          = "'"
	openingBracket       = "("
	closingBracket       = ")"
	asterisk             = "*"
	plus                 = "+"
	comma                = ","
	slash                = "/"
	colon                = ":"
	semicolon            = ";"
	at                   = "@"
	openingSquareBracket = "["
	closingSquareBracket = "]"
)

type escape struct {
	sym  string
	code string
}

// encodes is the escape table applied by EncodeComponent, in order.
// The percent entry must stay first: rewriting literal "%" to "%25"
// before anything else guarantees later passes never introduce a "%"
// that a subsequent pass could rewrite again.
var encodes = []escape{
	{percent, "%25"},
	{whitespace, "%20"},
	{carriageReturn, "%0D"},
	{newLine, "%0A"},
	{exclamationMark, "%21"},
	{quotationMark, "%22"},
	{numberSign, "%23"},
	{dollar, "%24"},
	{ampersand, "%26"},
	{singleQuote, "%27"},
	{openingBracket, "%28"},
	{closingBracket, "%29"},
	{asterisk, "%2A"},
	{plus, "%2B"},
	{comma, "%2C"},
	{slash, "%2F"},
	{colon, "%3A"},
	{semicolon, "%3B"},
	{equals, "%3D"},
	{at, "%40"},
	{openingSquareBracket, "%5B"},
	{closingSquareBracket, "%5D"},
}

// decodes is the inverse table applied by DecodeComponent, derived from
// encodes so the ordering rules live in one place. "%25" moves to the
// end: restoring literal percents in any earlier pass could turn the
// tail of a longer escape into a fresh match. "%3F" is recognized even
// though EncodeComponent never produces it, matching the reference
// behavior of encodeURIComponent leaving "?" alone.
var decodes = func() []escape {
	t := make([]escape, 0, len(encodes)+1)
	t = append(t, encodes[1:]...)
	t = append(t, escape{questionMark, "%3F"})
	t = append(t, encodes[0])
	return t
}()
