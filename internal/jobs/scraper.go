package jobs

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Placeholder values used when a field cannot be resolved.
const (
	DefaultTitle   = "Job Position"
	DefaultCompany = "Company"
)

// ScrapedPosting holds the raw fields resolved from a job-posting page.
type ScrapedPosting struct {
	Title       string
	Company     string
	Description string
}

// ScrapeDocument resolves title, company and description from a parsed page.
// Selector chains specific to known job boards are tried first, then generic
// chains, then placeholders or whole-page text.
func ScrapeDocument(doc *goquery.Document, rawURL string) ScrapedPosting {
	domain := hostOf(rawURL)
	return ScrapedPosting{
		Title:       scrapeTitle(doc, domain),
		Company:     scrapeCompany(doc, domain),
		Description: scrapeDescription(doc, domain),
	}
}

func scrapeTitle(doc *goquery.Document, domain string) string {
	if selectors, ok := jobBoardSelectors[domain]; ok {
		for _, selector := range selectors {
			if text := firstText(doc, selector); text != "" {
				return text
			}
		}
	}
	for _, selector := range genericTitleSelectors {
		text := selectorText(doc, selector)
		if text != "" && len(text) < 200 {
			return text
		}
	}
	return DefaultTitle
}

func scrapeCompany(doc *goquery.Document, domain string) string {
	if _, ok := jobBoardSelectors[domain]; ok {
		for _, selector := range companyDomainSelectors {
			if text := firstText(doc, selector); text != "" {
				return text
			}
		}
	}
	for _, selector := range genericCompanySelectors {
		text := selectorText(doc, selector)
		if text != "" && len(text) < 100 {
			return text
		}
	}
	return DefaultCompany
}

func scrapeDescription(doc *goquery.Document, domain string) string {
	if selectors, ok := jobBoardSelectors[domain]; ok {
		// The first selector targets the title; the rest are content blocks.
		for _, selector := range selectors[1:] {
			sel := doc.Find(selector)
			if sel.Length() == 0 {
				continue
			}
			parts := make([]string, 0, sel.Length())
			sel.Each(func(_ int, s *goquery.Selection) {
				parts = append(parts, strings.TrimSpace(s.Text()))
			})
			return strings.Join(parts, "\n\n")
		}
	}
	for _, selector := range genericDescriptionSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(sel.First().Text())
		if len(text) > 100 {
			return text
		}
	}
	return strings.TrimSpace(doc.Find("body").Text())
}

// firstText returns the trimmed text of the first element matching selector.
func firstText(doc *goquery.Document, selector string) string {
	sel := doc.Find(selector)
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.First().Text())
}

// selectorText resolves a generic selector, reading the content attribute for
// meta selectors and element text otherwise.
func selectorText(doc *goquery.Document, selector string) string {
	sel := doc.Find(selector)
	if sel.Length() == 0 {
		return ""
	}
	if strings.HasPrefix(selector, "meta") {
		content, _ := sel.First().Attr("content")
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(sel.First().Text())
}

// hostOf returns the URL's hostname with a leading "www." stripped; empty on
// parse failure.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
