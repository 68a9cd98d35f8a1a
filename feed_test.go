package pressfront

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pressfront/wpapi"
)

func TestBuildSitemapSkipsMissingLastMod(t *testing.T) {
	a := &App{Config: SiteConfig{URL: "https://example.com"}}
	set := a.buildSitemap([]wpapi.Post{
		{Slug: "dated", Modified: time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CST", -6*3600))},
		{Slug: "undated"},
	})

	require.Len(t, set.URLs, 4)
	assert.Equal(t, sitemapNS, set.XMLNS)
	assert.Equal(t, "2024-03-01T18:00:00Z", set.URLs[2].LastMod)
	assert.Empty(t, set.URLs[3].LastMod)
	assert.Equal(t, "0.8", set.URLs[1].Priority)
}

func TestBuildFeedStripsMarkup(t *testing.T) {
	a := &App{Config: SiteConfig{Name: "Ports", URL: "https://example.com", Description: "Gulf"}}
	feed := a.buildFeed([]wpapi.Post{{
		Slug:    "tampico",
		Title:   "Tampico &amp; <em>Veracruz</em>",
		Excerpt: "<p>Two <b>ports</b></p>\n",
		Date:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Tags:    []wpapi.Term{{Name: "mexico", Kind: wpapi.Tag}},
	}})

	assert.Equal(t, "2.0", feed.Version)
	assert.Equal(t, "https://example.com", feed.Channel.Link)
	require.Len(t, feed.Channel.Items, 1)
	item := feed.Channel.Items[0]
	assert.Equal(t, "Tampico & Veracruz", item.Title)
	assert.Equal(t, "Two ports", item.Description)
	assert.Equal(t, "Mon, 15 Jan 2024 10:30:00 +0000", item.PubDate)
	assert.Empty(t, item.Categories)
}

func TestWriteXMLHeader(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, writeXML(&buf, sitemapURLSet{XMLNS: sitemapNS}))
	assert.True(t, strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, buf.String(), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
}
