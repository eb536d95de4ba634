package serpapi

import "encoding/json"

// searchResponse keeps only what the news route projects; SerpAPI sends much more.
type searchResponse struct {
	NewsResults []newsResult `json:"news_results"`
	Error       string       `json:"error"`
}

type newsResult struct {
	Title  string          `json:"title"`
	Source json.RawMessage `json:"source"` // object ({name, icon, authors}) on google_news, string on older engines
	Link   string          `json:"link"`
	Date   string          `json:"date"`
}
