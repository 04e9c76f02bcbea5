package leaflet

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/internal"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/markup"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
)

// fixedMetrics measures every rune as 10px and every line as 20px, 30px
// for headings.
type fixedMetrics struct{}

func (fixedMetrics) Measure(lineStyle) internal.MeasureFunc {
	return func(s string) int32 { return int32(utf8.RuneCountInString(s) * 10) }
}

func (fixedMetrics) LineHeight(style lineStyle) int32 {
	if style == styleHeading {
		return 30
	}
	return 20
}

func (fixedMetrics) Indent() int32 { return 40 }

func TestLayoutBlocks(t *testing.T) {
	blocks := []markup.Block{
		{Kind: markup.Heading, Level: 1, Text: "Title"},
		{Kind: markup.Paragraph, Text: "one two three"},
		{Kind: markup.ListItem, Level: 2, Text: "sub"},
		{Kind: markup.Preformatted, Text: "a\tb"},
	}

	lines, height := layoutBlocks(blocks, 100, fixedMetrics{})

	require.Len(t, lines, 5)
	assert.Equal(t, detailLine{text: "Title", style: styleHeading, x: 0, y: 0}, lines[0])
	assert.Equal(t, detailLine{text: "one two", style: styleBody, x: 0, y: 40}, lines[1])
	assert.Equal(t, detailLine{text: "three", style: styleBody, x: 0, y: 60}, lines[2])
	assert.Equal(t, detailLine{text: markup.Bullet + "sub", style: styleBody, x: 40, y: 90}, lines[3])
	assert.Equal(t, detailLine{text: "a    b", style: stylePreformatted, x: 20, y: 120}, lines[4])
	assert.Equal(t, int32(140), height)
}

func TestPostDetail_ScrollClamps(t *testing.T) {
	var d postDetail
	d.setContent(nav.Content{Kind: nav.ContentMarkup, Body: "<p>aaaa bbbb cccc dddd eeee</p>"})
	require.Len(t, d.blocks, 1)

	d.viewHeight = 50
	d.lineHeight = 20
	d.layout(40, fixedMetrics{})
	assert.Equal(t, int32(100), d.height)

	d.step(1)
	assert.Equal(t, int32(20), d.scrollY)

	d.page(1)
	assert.Equal(t, int32(50), d.scrollY, "clamped to content height minus view")

	d.step(-10)
	assert.Zero(t, d.scrollY)

	d.page(1)
	d.scrollToTop()
	assert.Zero(t, d.scrollY)
}

func TestPostDetail_MessagesAreNotParsed(t *testing.T) {
	var d postDetail
	d.setContent(nav.Content{Kind: nav.ContentError, Body: "<b>Could not load post.</b>"})

	assert.Nil(t, d.blocks)
	assert.Equal(t, nav.ContentError, d.content.Kind)
}

func TestPostDetail_RelayoutOnNewContent(t *testing.T) {
	var d postDetail
	d.setContent(nav.Content{Kind: nav.ContentMarkup, Body: "<p>first</p>"})
	d.layout(100, fixedMetrics{})
	require.Len(t, d.lines, 1)

	d.setContent(nav.Content{Kind: nav.ContentMarkup, Body: "<p>second</p><p>third</p>"})
	d.layout(100, fixedMetrics{})
	require.Len(t, d.lines, 2)
	assert.Equal(t, "third", d.lines[1].text)
}
