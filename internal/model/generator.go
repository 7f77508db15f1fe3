package model

// GenerateRequest is a password generation request. Type selects the
// variant; each variant reads its own subset of fields.
// Pointer bools allow distinguishing between missing (nil -> default) and
// explicit false.
type GenerateRequest struct {
	Type string `json:"type"`

	// Random variant.
	Length           int   `json:"length"`
	Uppercase        *bool `json:"uppercase"`
	Lowercase        *bool `json:"lowercase"`
	Digits           *bool `json:"digits"`
	Symbols          *bool `json:"symbols"`
	ExcludeSimilar   bool  `json:"exclude_similar"`
	NoRepeatAdjacent bool  `json:"no_repeat_adjacent"`

	// Memorable variant.
	WordCount    int     `json:"word_count"`
	Separator    *string `json:"separator"`
	Capitalize   string  `json:"capitalize"`
	AppendDigits int     `json:"append_digits"`
}

// GenerateResponse is a generated secret with its strength.
type GenerateResponse struct {
	Password string           `json:"password"`
	Type     string           `json:"type"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthRequest asks for a strength evaluation of an existing secret.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is a 0-100 score plus its rating band.
type StrengthResponse struct {
	Score  int    `json:"score"`
	Rating string `json:"rating"`
}
