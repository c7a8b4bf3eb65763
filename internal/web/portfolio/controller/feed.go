package controller

import (
	"encoding/xml"
	"net/http"
	"time"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
)

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func baseURL() string {
	if u := gconfig.Shared.GetString("settings.base_url"); u != "" {
		return u
	}

	return "http://localhost:8080"
}

// Feed RSS feed of published blog posts, newest first.
func (c *Portfolio) Feed(ctx *gin.Context) {
	published := true
	blogs, err := c.svc.ListBlogs(ctx.Request.Context(), dto.BlogFilter{Published: &published})
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	base := baseURL()
	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "Blog",
			Link:        base,
			Description: "Latest blog posts",
		},
	}
	for _, b := range blogs {
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       b.Title,
			Link:        base + "/blog/" + b.Slug,
			Description: b.Excerpt,
			GUID:        base + "/blog/" + b.Slug,
			PubDate:     b.CreatedAt.Format(time.RFC1123Z),
		})
	}

	ctx.XML(http.StatusOK, feed)
}

// Sitemap sitemap of the public pages plus every published blog post and
// case study.
func (c *Portfolio) Sitemap(ctx *gin.Context) {
	published := true
	blogs, err := c.svc.ListBlogs(ctx.Request.Context(), dto.BlogFilter{Published: &published})
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	studies, err := c.svc.ListCaseStudies(ctx.Request.Context(), dto.CaseStudyFilter{})
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	base := baseURL()
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}
	for _, path := range []string{"", "/blog", "/projects", "/case-studies", "/gallery", "/our-story", "/resume"} {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + path})
	}
	for _, b := range blogs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     base + "/blog/" + b.Slug,
			LastMod: b.UpdatedAt.Format("2006-01-02"),
		})
	}
	for _, cs := range studies {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     base + "/case-studies/" + cs.Slug,
			LastMod: cs.UpdatedAt.Format("2006-01-02"),
		})
	}

	ctx.XML(http.StatusOK, set)
}
