package uml

import (
	"context"

	"cdr.dev/slog"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/uml/lib/env"
	"oss.terrastruct.com/uml/lib/log"
	"oss.terrastruct.com/uml/umldiagram"
	"oss.terrastruct.com/uml/umlexporter"
	"oss.terrastruct.com/uml/umllayout"
	"oss.terrastruct.com/uml/umltarget"
)

type LayoutOptions struct {
	// Actions is a JSON list of actions replayed against the diagram before layout.
	Actions []byte
	// Layer measures text. A Canvas of FontSize is used when nil.
	Layer    umllayout.Layer
	FontSize int
	// StrictRelationships rejects replayed actions that append a relationship its
	// source does not support.
	StrictRelationships bool
}

// Layout loads model, replays opts.Actions, sizes every element the diagram owns and
// exports the result.
func Layout(ctx context.Context, model []byte, opts *LayoutOptions) (_ *umltarget.Diagram, err error) {
	defer xdefer.Errorf(&err, "failed to layout diagram")

	if opts == nil {
		opts = &LayoutOptions{}
	}

	d, table, err := umldiagram.Load(model)
	if err != nil {
		return nil, err
	}

	var storeOpts []umldiagram.Option
	if opts.StrictRelationships || env.StrictRelationships() {
		storeOpts = append(storeOpts, umldiagram.WithRelationshipCheck(table))
	}
	store := umldiagram.NewStore(d, storeOpts...)
	for owner, ids := range umldiagram.Containers(table) {
		store.Register(owner, ids)
	}

	if len(opts.Actions) > 0 {
		actions, err := umldiagram.UnmarshalActions(opts.Actions)
		if err != nil {
			return nil, err
		}
		if err := store.Dispatch(ctx, actions...); err != nil {
			return nil, err
		}
	}
	d = store.State()

	layer := opts.Layer
	if layer == nil {
		fontSize := opts.FontSize
		if fontSize <= 0 {
			fontSize, _ = env.FontSize()
		}
		layer, err = umllayout.NewCanvas(fontSize)
		if err != nil {
			return nil, err
		}
	}

	var ids []string
	for _, id := range append(append([]string{}, d.OwnedElements...), d.OwnedRelationships...) {
		if _, ok := table.Get(id); !ok {
			log.Warn(ctx, "diagram owns unknown element", slog.F("id", id))
			continue
		}
		ids = append(ids, id)
	}
	changed, err := umllayout.NewLayouter(layer).Layout(ctx, table, ids)
	if err != nil {
		return nil, err
	}
	log.Debug(ctx, "laid out diagram", slog.F("elements", len(changed)))

	return umlexporter.Export(ctx, d, table)
}
