package journal

// Quote is a daily inspiration shown beside the submission form.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{Text: "Sadness is but a wall between two gardens.", Author: "Kahlil Gibran"},
	{Text: "Feelings are much like waves; we can't stop them from coming but we can choose which one to surf.", Author: "Jonatan Mårtensson"},
	{Text: "The best way out is always through.", Author: "Robert Frost"},
	{Text: "Nothing diminishes anxiety faster than action.", Author: "Walter Anderson"},
	{Text: "Happiness is not something ready made. It comes from your own actions.", Author: "Dalai Lama"},
	{Text: "He who is contented is rich.", Author: "Laozi"},
	{Text: "Every day may not be good, but there is something good in every day.", Author: "Alice Morse Earle"},
}

// DailyQuote returns the inspiration quote for today. Selection is a
// fixed function of the calendar day, so every view shows the same
// quote all day.
func (s *Service) DailyQuote() Quote {
	return quotes[s.now().YearDay()%len(quotes)]
}
