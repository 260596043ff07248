package sentiment

// getLexicon returns the built-in English sentiment lexicon. Each word
// carries a polarity weight and a subjectivity weight; strongly
// evaluative words sit near the ends of the polarity range and carry
// high subjectivity, while factual-leaning words stay near the middle.
// The word stock covers general English plus the religious register of
// the source corpus.
func getLexicon() map[string]entry {
	positive := map[string]float64{
		"good": 0.7, "great": 0.8, "excellent": 1.0, "amazing": 0.6, "wonderful": 1.0,
		"fantastic": 0.9, "best": 1.0, "love": 0.5, "loved": 0.7, "loving": 0.6,
		"beautiful": 0.85, "perfect": 1.0, "awesome": 1.0, "brilliant": 0.9,
		"outstanding": 0.9, "superb": 0.9, "exceptional": 0.8, "incredible": 0.9,
		"magnificent": 0.9, "marvelous": 0.9, "pleasant": 0.6, "delightful": 0.8,
		"enjoyable": 0.6, "happy": 0.8, "glad": 0.5, "pleased": 0.6, "satisfied": 0.5,
		"terrific": 0.8, "fabulous": 0.9, "splendid": 0.8, "impressive": 0.6,
		"remarkable": 0.5, "positive": 0.3, "advantage": 0.3, "benefit": 0.3,
		"success": 0.5, "successful": 0.5, "win": 0.4, "winning": 0.4, "winner": 0.4,
		"better": 0.5, "improvement": 0.4, "improved": 0.4, "exciting": 0.6,
		"excited": 0.6, "enthusiasm": 0.5, "enthusiastic": 0.5, "optimistic": 0.5,
		"hopeful": 0.5, "promising": 0.4, "favorable": 0.4,
		// religious register
		"blessed": 0.9, "holy": 0.6, "glory": 0.8, "glorious": 0.9, "righteous": 0.6,
		"faithful": 0.6, "mercy": 0.6, "merciful": 0.7, "grace": 0.5, "gracious": 0.7,
		"peace": 0.6, "joy": 0.8, "joyful": 0.9, "rejoice": 0.8, "heaven": 0.5,
		"heavenly": 0.6, "kindness": 0.7, "gentle": 0.5, "pure": 0.6, "truth": 0.4,
		"wisdom": 0.5, "wise": 0.6, "faith": 0.4, "hope": 0.5, "salvation": 0.6,
		"healed": 0.5, "forgiven": 0.6, "forgive": 0.5, "comfort": 0.5,
	}
	negative := map[string]float64{
		"bad": -0.7, "terrible": -1.0, "awful": -1.0, "horrible": -1.0, "poor": -0.4,
		"worst": -1.0, "hate": -0.8, "hated": -0.9, "hating": -0.8, "ugly": -0.7,
		"disgusting": -0.9, "disappointing": -0.6, "disappointed": -0.6,
		"disappointment": -0.6, "fail": -0.5, "failed": -0.5, "failure": -0.6,
		"wrong": -0.5, "problem": -0.3, "problems": -0.3, "issue": -0.2,
		"issues": -0.2, "error": -0.4, "errors": -0.4, "difficult": -0.5,
		"difficulty": -0.5, "hard": -0.3, "impossible": -0.6, "negative": -0.3,
		"unfortunate": -0.5, "sad": -0.5, "unhappy": -0.6, "angry": -0.5,
		"frustrated": -0.5, "frustrating": -0.5, "annoying": -0.6, "annoyed": -0.6,
		"concern": -0.2, "concerned": -0.2, "worried": -0.3, "worry": -0.3,
		"fear": -0.4, "afraid": -0.6, "scary": -0.6, "dangerous": -0.6, "risk": -0.3,
		"threat": -0.4, "damage": -0.4, "damaged": -0.4, "harm": -0.4,
		"harmful": -0.5, "worse": -0.6, "loss": -0.4, "lost": -0.3, "losing": -0.4,
		"loser": -0.6, "decline": -0.3, "declined": -0.3,
		// religious register
		"woe": -0.8, "sin": -0.5, "sins": -0.5, "sinner": -0.6, "sinners": -0.6,
		"evil": -0.8, "wicked": -0.8, "wickedness": -0.8, "curse": -0.7,
		"cursed": -0.8, "death": -0.5, "dead": -0.4, "devil": -0.7, "demon": -0.7,
		"demons": -0.7, "unclean": -0.5, "darkness": -0.4, "weeping": -0.6,
		"sorrow": -0.6, "suffer": -0.5, "suffering": -0.6, "punishment": -0.6,
		"condemned": -0.7, "hypocrites": -0.8, "blind": -0.3, "perish": -0.6,
	}

	lexicon := make(map[string]entry, len(positive)+len(negative))
	for word, polarity := range positive {
		lexicon[word] = entry{polarity: polarity, subjectivity: subjectivityFor(polarity)}
	}
	for word, polarity := range negative {
		lexicon[word] = entry{polarity: polarity, subjectivity: subjectivityFor(polarity)}
	}
	return lexicon
}

// subjectivityFor derives a subjectivity weight from polarity strength:
// the more extreme the evaluation, the more subjective the word.
func subjectivityFor(polarity float64) float64 {
	if polarity < 0 {
		polarity = -polarity
	}
	return 0.3 + 0.6*polarity
}
