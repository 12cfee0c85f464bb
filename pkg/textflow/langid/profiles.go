package langid

// Function-word profiles per language. Function words are frequent,
// language-specific, and survive tokenization unchanged, which makes them
// a cheap discriminator for the handful of languages supported here.
var profiles = map[string]map[string]struct{}{
	"en": wordSet(
		"the", "and", "of", "to", "in", "is", "that", "it", "was", "for",
		"with", "as", "his", "her", "are", "this", "from", "they", "which",
		"not", "have", "has", "had", "were", "been", "their", "there",
		"through", "such", "usually", "also",
	),
	"nl": wordSet(
		"de", "het", "een", "en", "van", "ik", "te", "dat", "die", "in",
		"is", "op", "aan", "met", "als", "voor", "er", "maar", "om", "hij",
		"uit", "ook", "zijn", "naar", "bij", "wordt", "worden", "deze",
		"wel", "geen", "niet", "heeft", "hebben",
	),
	"fr": wordSet(
		"le", "la", "les", "de", "des", "un", "une", "et", "est", "que",
		"qui", "dans", "pour", "pas", "sur", "avec", "son", "ses", "au",
		"aux", "ce", "cette", "mais", "par", "plus", "ou", "nous", "vous",
		"être", "sont", "ont",
	),
	"it": wordSet(
		"il", "lo", "la", "gli", "le", "di", "che", "è", "un", "una",
		"per", "non", "sono", "con", "del", "della", "nel", "alla", "da",
		"come", "anche", "più", "ma", "questo", "questa", "essere", "hanno",
		"dei", "delle", "tra",
	),
	"de": wordSet(
		"der", "die", "das", "und", "ist", "nicht", "ein", "eine", "mit",
		"auf", "für", "von", "den", "dem", "des", "sich", "auch", "wird",
		"werden", "bei", "aus", "nach", "über", "durch", "wenn", "nur",
		"noch", "wie", "einem", "einen",
	),
	"es": wordSet(
		"el", "la", "los", "las", "de", "que", "y", "en", "un", "una",
		"es", "no", "por", "con", "para", "su", "al", "lo", "como", "más",
		"pero", "sus", "le", "ya", "o", "este", "esta", "son", "entre",
		"cuando",
	),
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
