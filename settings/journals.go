package settings

import "strings"

func DefaultJournals() []Journal {
	return []Journal{
		{
			Name: "BBC",
			Home: "https://www.bbc.com/",
			Feeds: []Feed{
				{"Sports", "http://feeds.bbci.co.uk/sport/rss.xml"},
				{"News", "http://feeds.bbci.co.uk/news/rss.xml"},
				{"Business", "http://feeds.bbci.co.uk/news/business/rss.xml"},
				{"Innovation", "http://feeds.bbci.co.uk/news/technology/rss.xml"},
				{"Culture", "http://feeds.bbci.co.uk/programmes/b006q2x0/episodes/downloads.rss"},
				{"Arts", "http://feeds.bbci.co.uk/arts/rss.xml"},
				{"Travel", "http://feeds.bbci.co.uk/news/world/rss.xml"},
			},
		},
		{
			Name: "Guardian",
			Home: "https://www.theguardian.com/",
			Feeds: []Feed{
				{"Sports", "https://www.theguardian.com/sport/rss"},
				{"News", "https://www.theguardian.com/world/rss"},
				{"Business", "https://www.theguardian.com/business/rss"},
				{"Innovation", "https://www.theguardian.com/technology/rss"},
				{"Culture", "https://www.theguardian.com/culture/rss"},
				{"Arts", "https://www.theguardian.com/artanddesign/rss"},
				{"Travel", "https://www.theguardian.com/travel/rss"},
			},
		},
		{
			Name: "Reuters",
			Home: "https://www.reuters.com/",
			Feeds: []Feed{
				{"Sports", "https://www.reuters.com/sports/rss"},
				{"News", "https://www.reuters.com/news/rss"},
				{"Business", "https://www.reuters.com/finance/rss"},
				{"Innovation", "https://www.reuters.com/technology/rss"},
				{"Culture", "https://www.reuters.com/lifestyle/rss"},
				{"Arts", "https://www.reuters.com/lifestyle/arts/rss"},
				{"Travel", "https://www.reuters.com/lifestyle/travel/rss"},
			},
		},
	}
}

// JournalsText renders the journals the way they are given to the planner.
func JournalsText(journals []Journal) string {
	sb := strings.Builder{}
	for idx, journal := range journals {
		if idx > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(journal.Name)
		if journal.Home != "" {
			sb.WriteString(" (")
			sb.WriteString(journal.Home)
			sb.WriteString(")")
		}
		sb.WriteString("\n")
		for _, feed := range journal.Feeds {
			sb.WriteString(feed.Category)
			sb.WriteString(": \"")
			sb.WriteString(feed.Url)
			sb.WriteString("\"\n")
		}
	}

	return sb.String()
}
