package arxiv

import "strings"

// Result is one document as returned by the search service. Every string
// field is passed through opaque; timestamps are not parsed.
type Result struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Summary    string     `json:"summary"`
	Authors    [][]string `json:"authors"`
	Links      []Link     `json:"links"`
	Published  string     `json:"published"`
	Updated    string     `json:"updated"`
	Categories []Category `json:"categories"`
}

// Link is one outbound reference of a document. Type and Title are optional
// in the payload; absent values decode to the empty string.
type Link struct {
	Href  string `json:"href"`
	Rel   string `json:"rel"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

type Category struct {
	Term   string `json:"term"`
	Scheme string `json:"scheme"`
}

// PDFLink returns the link titled "pdf", if any. A document carries at most
// one such link.
func (r Result) PDFLink() (Link, bool) {
	return r.findLink(func(l Link) bool { return l.Title == "pdf" })
}

// AlternateLink returns the link whose rel is "alternate", if any.
func (r Result) AlternateLink() (Link, bool) {
	return r.findLink(func(l Link) bool { return l.Rel == "alternate" })
}

func (r Result) findLink(match func(Link) bool) (Link, bool) {
	for _, link := range r.Links {
		if match(link) {
			return link, true
		}
	}
	return Link{}, false
}

// AuthorLine flattens the nested author groups into a single display string.
func (r Result) AuthorLine() string {
	var names []string
	for _, group := range r.Authors {
		names = append(names, group...)
	}
	return strings.Join(names, ", ")
}

// HTMLVersionURL rewrites an abstract URL to its HTML-rendered counterpart,
// e.g. https://arxiv.org/abs/1234 -> https://ar5iv.org/abs/1234.
func HTMLVersionURL(href string) string {
	return strings.ReplaceAll(href, "arxiv", "ar5iv")
}
