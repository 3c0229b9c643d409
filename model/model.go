package model

// Token represents a token / morpheme produced by the tokenizer.
type Token struct {
	Text             string   `json:"text"`
	Lemma            string   `json:"lemma,omitempty"`
	POS              string   `json:"pos,omitempty"`
	Start            int      `json:"start"`
	End              int      `json:"end"`
	Reading          string   `json:"reading,omitempty"`
	Pronunciation    string   `json:"pronunciation,omitempty"`
	TokenID          int      `json:"token_id,omitempty"`
	Conjugation      []string `json:"conjugation,omitempty"`
	Auxiliaries      []Token  `json:"auxiliaries,omitempty"`
	MergedIndices    []int    `json:"merged_indices,omitempty"`
	ConjugationLabel string   `json:"conjugation_label,omitempty"`
	InflectionType   string   `json:"inflection_type,omitempty"`
	InflectionForm   string   `json:"inflection_form,omitempty"`
	// Reasons are the deinflection reasons linking Text to Lemma, if any.
	Reasons []string `json:"reasons,omitempty"`
}

// DictionaryEntry is what a lexicon knows about a dictionary form.
type DictionaryEntry struct {
	Source  string   `json:"source,omitempty"`
	Lemma   string   `json:"lemma"`
	Reading string   `json:"reading,omitempty"`
	POS     string   `json:"pos,omitempty"`
	Classes []string `json:"classes,omitempty"`
}

// Candidate is one node of a deinflection forest.
type Candidate struct {
	ID      int              `json:"id"`
	Parent  *int             `json:"parent,omitempty"`
	Text    string           `json:"text"`
	Classes []string         `json:"classes,omitempty"`
	Reasons []string         `json:"reasons,omitempty"`
	Entry   *DictionaryEntry `json:"entry,omitempty"`
}

// Forest is the JSON form of all candidates for one word.
type Forest struct {
	Word       string      `json:"word"`
	Candidates []Candidate `json:"candidates"`
}

// Match is a dictionary word found inside running text. Start and End are
// rune offsets into the scanned text.
type Match struct {
	Start   int              `json:"start"`
	End     int              `json:"end"`
	Surface string           `json:"surface"`
	Lemma   string           `json:"lemma"`
	Reasons []string         `json:"reasons,omitempty"`
	Entry   *DictionaryEntry `json:"entry,omitempty"`
}
