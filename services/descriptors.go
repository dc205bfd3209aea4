package services

import (
	"regexp"
	"strings"

	"wine-insights/models"
)

// nonWordRegexp strips punctuation before tokenizing; word characters and
// whitespace survive. Letters and digits are matched by Unicode class, not
// ASCII, so accented text like "rosé" keeps its accent.
var nonWordRegexp = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// stopwords is the fixed English stopword set applied by DescriptorWords.
var stopwords = buildStopwordSet([]string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom",
	"this", "that", "that'll", "these", "those", "am", "is", "are", "was",
	"were", "be", "been", "being", "have", "has", "had", "having", "do",
	"does", "did", "doing", "a", "an", "the", "and", "but", "if", "or",
	"because", "as", "until", "while", "of", "at", "by", "for", "with",
	"about", "against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in", "out",
	"on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "s", "t",
	"can", "will", "just", "don", "don't", "should", "should've", "now",
	"d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't",
	"couldn", "couldn't", "didn", "didn't", "doesn", "doesn't", "hadn",
	"hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma",
	"mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan",
	"shan't", "shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't",
	"won", "won't", "wouldn", "wouldn't",
})

// tastingVocabulary is the fixed set of descriptor stems matched against
// review text. Each stem is a prefix pattern: "cherr" normalizes cherry and
// cherries to one label. Order here is the order stems are reported in.
var tastingVocabulary = []string{
	"apple", "apricot", "banana", "blackberr", "blueberr", "boysenberr",
	"cassis", "cherr", "citrus", "cranberr", "currant", "fig",
	"gooseberr", "grapefruit", "guava", "kiwi", "lemon", "lime", "lychee",
	"mango", "melon", "nectarine", "orange", "papaya", "passionfruit",
	"peach", "pear", "pineapple", "plum", "pomegranate", "prune",
	"quince", "raisin", "raspberr", "strawberr", "tangerine",
	"watermelon", "brioche", "butterscotch", "caramel", "chocolat",
	"cocoa", "coffee", "cream", "custard", "espresso", "honey",
	"marzipan", "mocha", "molasses", "toffee", "vanill", "anise",
	"basil", "cinnamon", "clove", "fennel", "ginger", "herb", "lavend",
	"licorice", "mint", "nutmeg", "pepper", "rosemary", "sage", "spic",
	"thyme", "eucalypt", "acacia", "blossom", "floral", "honeysuckle",
	"jasmine", "rose", "violet", "chalk", "earth", "flint", "graphite",
	"gravel", "leather", "mineral", "mushroom", "petrol", "slate",
	"smok", "tar", "tobacco", "truffle", "cedar", "oak", "pine",
	"sandalwood", "toast", "walnut", "almond", "hazelnut", "tann", "jam",
	"juic", "crisp", "zest", "velvet", "supple", "bramble", "balsamic",
}

// vocabPatterns holds one compiled pattern per stem, in vocabulary order.
// Each anchors at a word boundary, so "tann" matches tannic and tannins
// but never a stem buried mid-word.
var vocabPatterns = buildVocabPatterns(tastingVocabulary)

func buildStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func buildVocabPatterns(stems []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(stems))
	for i, stem := range stems {
		patterns[i] = regexp.MustCompile(`\b` + stem + `[a-z]*`)
	}
	return patterns
}

// DescriptorWords lowercases the text, strips punctuation, splits on
// whitespace, and drops stopwords. Token order is preserved and duplicates
// are retained.
func DescriptorWords(text string) []string {
	cleaned := nonWordRegexp.ReplaceAllString(strings.ToLower(text), "")

	var words []string
	for _, tok := range strings.Fields(cleaned) {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		words = append(words, tok)
	}
	return words
}

// FindDescriptors reports every vocabulary stem whose word-boundary prefix
// pattern matches the lowercased text. Each stem appears at most once, in
// vocabulary order, regardless of how many times it matches.
func FindDescriptors(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for i, stem := range tastingVocabulary {
		if vocabPatterns[i].MatchString(lower) {
			found = append(found, stem)
		}
	}
	return found
}

// AttachDescriptors derives both text features from each review's
// description and stores them on the record.
func AttachDescriptors(reviews []*models.Review) {
	for _, r := range reviews {
		r.DescriptorWords = DescriptorWords(r.Description)
		r.TastingNotes = FindDescriptors(r.Description)
	}
}
