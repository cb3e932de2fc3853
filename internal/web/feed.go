package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oward/scribe/internal/catalog"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// BuildRSS assembles an RSS 2.0 document from the catalog listing.
func BuildRSS(site Site, posts []catalog.Summary, now time.Time) string {
	base := strings.TrimRight(site.BaseURL, "/")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<rss version="2.0">` + "\n")
	b.WriteString("  <channel>\n")
	b.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(site.Title)))
	b.WriteString(fmt.Sprintf("    <link>%s</link>\n", escapeXML(base)))
	b.WriteString(fmt.Sprintf("    <description>%s</description>\n", escapeXML(site.Description)))
	b.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", now.UTC().Format(time.RFC1123Z)))
	for _, p := range posts {
		link := fmt.Sprintf("%s/post/%s", base, p.Slug)
		b.WriteString("    <item>\n")
		b.WriteString(fmt.Sprintf("      <title>%s</title>\n", escapeXML(p.Title)))
		b.WriteString(fmt.Sprintf("      <link>%s</link>\n", escapeXML(link)))
		b.WriteString(fmt.Sprintf("      <guid>%s</guid>\n", escapeXML(link)))
		b.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", p.Published.UTC().Format(time.RFC1123Z)))
		b.WriteString("    </item>\n")
	}
	b.WriteString("  </channel>\n")
	b.WriteString("</rss>\n")
	return b.String()
}

// Feed handles GET /feed.xml.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.catalog.List(r.Context())
	if err != nil {
		h.serverError(w, "build feed", err)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write([]byte(BuildRSS(h.site, posts, time.Now())))
}
