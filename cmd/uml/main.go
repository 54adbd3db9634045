package main

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"oss.terrastruct.com/uml"
	"oss.terrastruct.com/uml/lib/log"
	"oss.terrastruct.com/uml/lib/xmain"
)

func main() {
	xmain.Main(run)
}

func run(ctx context.Context, ms *xmain.State) (err error) {
	watchFlag, err := ms.Opts.Bool("UML_WATCH", "watch", "w", false, "watch for changes to the input and actions files and lay them out again.")
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	debugFlag, err := ms.Opts.Bool("UML_DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	strictFlag, err := ms.Opts.Bool("UML_STRICT_RELATIONSHIPS", "strict", "s", false, "reject actions that append a relationship its source does not support.")
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	fontSizeFlag, err := ms.Opts.Int64("UML_FONT_SIZE", "font-size", "", 0, "base font size of labels. Defaults to 16.")
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	actionsFlag := ms.Opts.String("", "actions", "a", "", "JSON file of actions to replay before layout.")

	err = ms.Opts.Parse()
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	} else if err != nil {
		return err
	}

	var inputPath string
	var outputPath string

	switch len(ms.Opts.Args) {
	case 0:
		help(ms)
		return nil
	case 1:
		inputPath = ms.Opts.Args[0]
		if inputPath == "-" {
			outputPath = "-"
		} else {
			outputPath = renameExt(inputPath, ".layout.json")
		}
	case 2:
		inputPath = ms.Opts.Args[0]
		outputPath = ms.Opts.Args[1]
	default:
		return xmain.UsageErrorf("too many arguments passed")
	}
	if *fontSizeFlag < 0 {
		return xmain.UsageErrorf("--font-size must be positive: %d", *fontSizeFlag)
	}

	ctx = ms.Context(ctx, *debugFlag)

	c := &compiler{
		ms:          ms,
		inputPath:   inputPath,
		outputPath:  outputPath,
		actionsPath: *actionsFlag,
		opts: uml.LayoutOptions{
			FontSize:            int(*fontSizeFlag),
			StrictRelationships: *strictFlag,
		},
	}

	if *watchFlag {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		w, err := newWatcher(ctx, ms, c)
		if err != nil {
			return err
		}
		return w.run()
	}

	ctx, cancel := log.WithTimeout(ctx, time.Minute*2)
	defer cancel()

	_, err = c.compile(ctx)
	if err != nil {
		return err
	}
	ms.Log.Success.Printf("successfully laid out %v to %v", inputPath, outputPath)
	return nil
}

type compiler struct {
	ms          *xmain.State
	inputPath   string
	outputPath  string
	actionsPath string
	opts        uml.LayoutOptions
}

// compile lays out the input and writes it to the output. It returns the HashID of the
// written diagram.
func (c *compiler) compile(ctx context.Context) (string, error) {
	input, err := c.ms.ReadPath(c.inputPath)
	if err != nil {
		return "", err
	}

	opts := c.opts
	if c.actionsPath != "" {
		opts.Actions, err = c.ms.ReadPath(c.actionsPath)
		if err != nil {
			return "", err
		}
	}

	diagram, err := uml.Layout(ctx, input, &opts)
	if err != nil {
		return "", err
	}
	hash, err := diagram.HashID()
	if err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(diagram, "", "  ")
	if err != nil {
		return "", err
	}
	err = c.ms.WritePath(c.outputPath, append(b, '\n'))
	if err != nil {
		return "", err
	}
	return hash, nil
}

// newExt must include leading .
func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}
