package signal

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Standard English stopword list plus forum filler terms that carry no
// signal in discussion bodies.
var stopwords = toSet([]string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his",
	"himself", "she", "her", "hers", "herself", "it", "its", "itself",
	"they", "them", "their", "theirs", "themselves", "what", "which",
	"who", "whom", "this", "that", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
	"or", "because", "as", "until", "while", "of", "at", "by", "for",
	"with", "about", "against", "between", "into", "through", "during",
	"before", "after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all", "any",
	"both", "each", "few", "more", "most", "other", "some", "such", "no",
	"nor", "not", "only", "own", "same", "so", "than", "too", "very",
	"can", "will", "just", "don", "should", "now",

	// forum filler
	"would", "could", "also", "like", "think", "know", "make", "want",
	"need", "really", "well", "much", "many", "still", "even", "going",
	"thing", "things", "check", "thanks", "thank", "please", "hello",
	"https", "http",
})

// Domain technical terms that bypass the length filter.
var technicalTerms = toSet([]string{
	"polkadot", "kusama", "parachain", "parathread", "substrate",
	"governance", "referendum", "proposal", "validator", "nominator",
	"collator", "staking", "xcm", "opengov", "relay", "ausd", "chain",
	"wallet", "token", "dotsama", "web3", "blockchain",
})
