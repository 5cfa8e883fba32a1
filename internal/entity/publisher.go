package entity

type Publisher struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Publishers — список издательств маркетплейса. Порядок фиксирован,
// он же используется на витрине.
var Publishers = []Publisher{
	{Slug: "dhara-sci-tech", Name: "Dhara Sci Tech Publications"},
	{Slug: "yar-tech", Name: "Yar Tech Publications"},
	{Slug: "am-technical", Name: "AM Technical Publications"},
	{Slug: "dhara-publications", Name: "Dhara Publications"},
	{Slug: "as-nextgen", Name: "AS NextGen Publishing Home"},
}

// ResolvePublisher возвращает отображаемое имя издательства по слагу.
func ResolvePublisher(slug string) (string, bool) {
	for _, p := range Publishers {
		if p.Slug == slug {
			return p.Name, true
		}
	}
	return "", false
}

// Categories — общий справочник категорий книг и журналов.
var Categories = []string{
	"Science & Technology",
	"Medicine & Healthcare",
	"Engineering",
	"Social Sciences",
	"Humanities",
	"Business & Economics",
	"Law",
	"Education",
}

type PublisherStats struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	TotalBooks int    `json:"total_books"`
	// RecentBooks — книги, добавленные за последний месяц
	RecentBooks int `json:"recent_books"`
}
