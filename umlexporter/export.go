package umlexporter

import (
	"context"

	"cdr.dev/slog"

	"oss.terrastruct.com/uml/lib/color"
	"oss.terrastruct.com/uml/lib/log"
	"oss.terrastruct.com/uml/umlclassifier"
	"oss.terrastruct.com/uml/umldiagram"
	"oss.terrastruct.com/uml/umlelement"
	"oss.terrastruct.com/uml/umllayout"
	"oss.terrastruct.com/uml/umltarget"
)

const dashed = 5.

// Export converts d and the elements of table into a target diagram. Membership is
// walked depth first, so containers precede their children. Relationships follow every
// shape. IDs table does not know are skipped.
func Export(ctx context.Context, d *umldiagram.Diagram, table *umlelement.Map) (*umltarget.Diagram, error) {
	e := &exporter{
		ctx:     ctx,
		table:   table,
		diagram: umltarget.NewDiagram(d.ID, string(d.Type)),
		seen:    make(map[string]struct{}),
	}

	for _, id := range append(append([]string{}, d.OwnedElements...), d.OwnedRelationships...) {
		el, ok := table.Get(id)
		if !ok {
			log.Warn(ctx, "skipping unknown element", slog.F("id", id))
			continue
		}
		e.visit(el, 1)
	}
	for _, rel := range e.relationships {
		e.diagram.Connections = append(e.diagram.Connections, e.toConnection(rel))
	}
	return e.diagram, nil
}

type exporter struct {
	ctx     context.Context
	table   *umlelement.Map
	diagram *umltarget.Diagram

	seen          map[string]struct{}
	relationships []*umlelement.Element
}

func (e *exporter) visit(el *umlelement.Element, level int) {
	if _, ok := e.seen[el.ID]; ok {
		return
	}
	e.seen[el.ID] = struct{}{}

	if el.Kind.IsRelationship() {
		e.relationships = append(e.relationships, el)
		return
	}
	e.diagram.Shapes = append(e.diagram.Shapes, e.toShape(el, level))

	children := e.table.Children(el.ID)
	if umlclassifier.IsContainer(el.Kind) {
		ordered := make([]*umlelement.Element, 0, len(children))
		for _, id := range umlclassifier.Arrange(el, children) {
			c, _ := e.table.Get(id)
			ordered = append(ordered, c)
		}
		children = ordered
	}
	for _, c := range children {
		e.visit(c, level+1)
	}
}

func (e *exporter) toShape(el *umlelement.Element, level int) umltarget.Shape {
	b := umllayout.Absolute(e.table, el)
	shape := umltarget.Shape{
		ID:          el.ID,
		Type:        string(el.Kind),
		Owner:       el.OwnerID(),
		Pos:         b.TopLeft(),
		Width:       b.Width,
		Height:      b.Height,
		StrokeWidth: umltarget.DEFAULT_STROKE_WIDTH,
		Level:       level,
		ZIndex:      level - 1,
		Text: umltarget.Text{
			Label: el.DisplayName(),
		},
	}

	switch {
	case el.Classifier != nil:
		c := el.Classifier
		shape.Italic = c.Italic
		shape.Underline = c.Underline
		shape.Bold = true
		shape.Stereotype = umlclassifier.Stereotype(el)
		shape.HeaderHeight = c.HeaderHeight
		shape.DividerPosition = c.DividerPosition
	case el.State != nil:
		s := el.State
		shape.Italic = s.Italic
		shape.Underline = s.Underline
		shape.Bold = true
		shape.Stereotype = umlclassifier.Stereotype(el)
		shape.HeaderHeight = umlclassifier.HeaderHeight(el)
		shape.DividerPosition = s.DividerPosition
	case el.Icon != nil:
		shape.Icon = el.Icon.SVG
	}
	if el.Kind.IsMember() {
		shape.StrokeWidth = 0
	}

	shape.Fill = e.resolve(el, "fill", el.FillColor, color.DefaultFill)
	if el.Highlight != "" {
		highlight := e.resolve(el, "highlight", el.Highlight, color.Highlight)
		if blended, err := color.Blend(shape.Fill, highlight, umltarget.HIGHLIGHT_BLEND_RATIO); err == nil {
			shape.Fill = blended
			shape.Highlighted = true
		}
	}
	shape.Stroke = e.resolve(el, "stroke", el.StrokeColor, color.DefaultStroke)

	textDefault, err := color.TextFor(shape.Fill)
	if err != nil {
		textDefault = color.DefaultText
	}
	shape.Color = e.resolve(el, "text", el.TextColor, textDefault)
	return shape
}

func (e *exporter) toConnection(rel *umlelement.Element) umltarget.Connection {
	r := rel.Relationship
	origin := umllayout.Absolute(e.table, rel).TopLeft()

	conn := umltarget.Connection{
		ID:           rel.ID,
		Type:         string(rel.Kind),
		Src:          r.Source.Element,
		SrcDirection: string(r.Source.Direction),
		SrcLabel:     umltarget.EndpointLabel(r.Source.Multiplicity, r.Source.Role),
		Dst:          r.Target.Element,
		DstDirection: string(r.Target.Direction),
		DstLabel:     umltarget.EndpointLabel(r.Target.Multiplicity, r.Target.Role),
		StrokeWidth:  umltarget.DEFAULT_STROKE_WIDTH,
		Route:        r.Path.Translate(origin.X, origin.Y),
		ZIndex:       len(e.diagram.Shapes),
		Text: umltarget.Text{
			Label: rel.Name,
		},
	}
	switch rel.Kind {
	case umlelement.ClassDependency, umlelement.ClassRealization, umlelement.ClassOCLLink:
		conn.StrokeDash = dashed
	}
	conn.Stroke = e.resolve(rel, "stroke", rel.StrokeColor, color.DefaultStroke)
	conn.Color = e.resolve(rel, "text", rel.TextColor, color.DefaultText)
	return conn
}

// resolve normalizes the color c of el, falling back to def when c is empty or not a
// color.
func (e *exporter) resolve(el *umlelement.Element, field, c, def string) string {
	if c == "" {
		return def
	}
	n, err := color.Normalize(c)
	if err != nil {
		log.Warn(e.ctx, "ignoring invalid color",
			slog.F("id", el.ID),
			slog.F("field", field),
			slog.F("color", c),
		)
		return def
	}
	return n
}
