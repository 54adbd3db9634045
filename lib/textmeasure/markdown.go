package textmeasure

import (
	"bytes"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	goldmarkHtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"oss.terrastruct.com/uml/lib/fonts"
)

var markdownRenderer goldmark.Markdown

// css values of the description blocks rendered inside intents and notes
const (
	MarkdownFontSize   = fonts.FONT_SIZE_S
	MarkdownLineHeight = 1.5

	PaddingLeft_ul_ol = 24
	MarginBottom_p    = 8
	MarginBottom_h    = 8
	Padding_pre       = 8

	FONT_SIZE_H1 = fonts.FONT_SIZE_XXL
	FONT_SIZE_H2 = fonts.FONT_SIZE_XL
	FONT_SIZE_H3 = fonts.FONT_SIZE_L
	FONT_SIZE_H4 = fonts.FONT_SIZE_M
	FONT_SIZE_H5 = fonts.FONT_SIZE_S
	FONT_SIZE_H6 = fonts.FONT_SIZE_XS
)

var HeaderToFontSize = map[string]int{
	"h1": FONT_SIZE_H1,
	"h2": FONT_SIZE_H2,
	"h3": FONT_SIZE_H3,
	"h4": FONT_SIZE_H4,
	"h5": FONT_SIZE_H5,
	"h6": FONT_SIZE_H6,
}

func init() {
	markdownRenderer = goldmark.New(
		goldmark.WithRendererOptions(
			goldmarkHtml.WithXHTML(),
		),
	)
}

func RenderMarkdown(m string) (string, error) {
	var output bytes.Buffer
	if err := markdownRenderer.Convert([]byte(m), &output); err != nil {
		return "", err
	}
	return output.String(), nil
}

// MeasureMarkdown returns the dimensions of mdText rendered as a stack of blocks.
// Blocks are never wrapped, so the width is that of the widest line.
func MeasureMarkdown(mdText string, ruler *Ruler) (width, height int, err error) {
	render, err := RenderMarkdown(mdText)
	if err != nil {
		return width, height, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(render))
	if err != nil {
		return width, height, err
	}

	{
		originalLineHeight := ruler.LineHeightFactor
		ruler.boundsWithDot = true
		ruler.LineHeightFactor = MarkdownLineHeight
		defer func() {
			ruler.LineHeightFactor = originalLineHeight
			ruler.boundsWithDot = false
		}()
	}

	var w, h, lastMargin float64
	doc.Find("p, h1, h2, h3, h4, h5, h6, li, pre").Each(func(_ int, s *goquery.Selection) {
		// nested blocks are measured through their innermost block
		if s.Find("p, li, pre").Length() > 0 {
			return
		}
		bw, bh, margin := ruler.measureBlock(s.Nodes[0], s.Text())
		w = math.Max(w, bw)
		h += bh + margin
		lastMargin = margin
	})
	h -= lastMargin

	return int(math.Ceil(w)), int(math.Ceil(h)), nil
}

func (ruler *Ruler) measureBlock(n *html.Node, text string) (width, height, marginBottom float64) {
	font := fonts.Sans.Font(MarkdownFontSize, fonts.FONT_STYLE_REGULAR)
	var indent, padding float64

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		font = fonts.Sans.Font(HeaderToFontSize[n.Data], fonts.FONT_STYLE_BOLD)
		marginBottom = MarginBottom_h
	case "pre":
		font = fonts.Mono.Font(MarkdownFontSize, fonts.FONT_STYLE_REGULAR)
		padding = Padding_pre
		marginBottom = MarginBottom_p
		text = strings.TrimSuffix(text, "\n")
	case "li":
		indent = PaddingLeft_ul_ol * float64(listDepth(n))
	default:
		marginBottom = MarginBottom_p
	}

	if n.Data != "pre" {
		text = strings.Join(strings.Fields(text), " ")
	}
	if text == "" {
		return 0, 0, 0
	}

	w, h := ruler.MeasurePrecise(font, text)
	return w + indent + 2*padding, h + 2*padding, marginBottom
}

func listDepth(n *html.Node) int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && (p.Data == "ul" || p.Data == "ol") {
			depth++
		}
	}
	return depth
}
