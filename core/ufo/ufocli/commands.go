package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/npillmayer/ufogleaner/core"
	"github.com/npillmayer/ufogleaner/core/ufo/gleaner"
	"github.com/npillmayer/ufogleaner/core/ufo/glif"
	"github.com/npillmayer/ufogleaner/core/ufo/plist"
	"github.com/pterm/pterm"
)

// Command is a single interpreter command with an optional argument.
type Command struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	INFO
	NAMES
	SHOW
	GLEAN
	DUMP
)

func parseCommand(line string) *Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return &Command{code: HELP}
	}
	cmd := &Command{}
	if len(fields) > 1 {
		cmd.arg = strings.Join(fields[1:], " ")
	}
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		cmd.code = QUIT
	case "info":
		cmd.code = INFO
	case "names", "ls":
		cmd.code = NAMES
	case "show", "glyph":
		cmd.code = SHOW
	case "glean":
		cmd.code = GLEAN
	case "dump":
		cmd.code = DUMP
	default:
		cmd.code = HELP
	}
	tracer().Debugf("parse command = %v", cmd)
	return cmd
}

// execute runs a command. It returns true if the interpreter should quit.
func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		pterm.Println(usage())
	case INFO:
		return false, intp.info()
	case NAMES:
		var names []string
		if cmd.arg == "" {
			names = intp.font.Names()
		} else {
			names = intp.font.NamesWithPrefix(cmd.arg)
		}
		for _, name := range names {
			pterm.Println(name)
		}
		pterm.Info.Printfln("%d glyphs", len(names))
	case SHOW:
		if cmd.arg == "" {
			return false, core.Error(core.EINVALID, "show: glyph name missing")
		}
		return false, intp.show(cmd.arg)
	case GLEAN:
		return false, intp.glean()
	case DUMP:
		if cmd.arg == "" {
			return false, core.Error(core.EINVALID, "dump: file name missing")
		}
		if err := intp.dump(cmd.arg); err != nil {
			return false, err
		}
		pterm.Success.Printfln("wrote %s", cmd.arg)
	}
	return false, nil
}

func (intp *Intp) info() error {
	pterm.Printfln("package   %s", intp.provider.Root())
	if meta, err := plist.ReadMetaInfo(intp.provider); err != nil {
		pterm.Warning.Printfln("no meta information: %v", err)
	} else {
		pterm.Printfln("format    %d.%d", meta.FormatVersion, meta.FormatVersionMinor)
		if meta.Creator != "" {
			pterm.Printfln("creator   %s", meta.Creator)
		}
	}
	layers, err := plist.ReadLayers(intp.provider)
	if err != nil {
		return err
	}
	for _, l := range layers {
		mark := " "
		if l.Dir == intp.layer {
			mark = "*"
		}
		pterm.Printfln("layer   %s %s (%s)", mark, l.Name, l.Dir)
	}
	pterm.Printfln("glyphs    %d", intp.font.Len())
	return nil
}

func (intp *Intp) show(name string) error {
	data, err := intp.font.Glyph(name).Data()
	if err != nil {
		return err
	}
	rows := pterm.TableData{{"Property", "Value"}}
	rows = append(rows, []string{"name", data.Name})
	rows = append(rows, []string{"format", formatVersion(data)})
	if data.Advance != nil {
		rows = append(rows, []string{"advance", fmt.Sprintf("%g × %g", data.Advance.Width, data.Advance.Height)})
	}
	if len(data.Unicodes) > 0 {
		codes := make([]string, len(data.Unicodes))
		for i, r := range data.Unicodes {
			codes[i] = fmt.Sprintf("U+%04X", r)
		}
		rows = append(rows, []string{"unicodes", strings.Join(codes, " ")})
	}
	if data.Note != "" {
		rows = append(rows, []string{"note", data.Note})
	}
	if data.Image != nil {
		rows = append(rows, []string{"image", data.Image.FileName + describeTransform(data.Image.Transform)})
	}
	rows = append(rows, []string{"anchors", fmt.Sprint(len(data.Anchors))})
	rows = append(rows, []string{"guidelines", fmt.Sprint(len(data.Guidelines))})
	if data.Outline != nil {
		rows = append(rows, []string{"contours", fmt.Sprint(len(data.Outline.Contours))})
		for _, c := range data.Outline.Components {
			rows = append(rows, []string{"component", describeComponent(c)})
		}
		rows = append(rows, []string{"segments", fmt.Sprint(len(data.Outline.Segments()))})
	}
	if keys := libKeys(data.Lib); len(keys) > 0 {
		rows = append(rows, []string{"lib", strings.Join(keys, ", ")})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func (intp *Intp) glean() error {
	g, err := gleaner.NewForLayer(intp.provider, intp.layer)
	if err != nil {
		return err
	}
	glyphs := g.Glean()
	var failed []string
	for name, data := range glyphs {
		if data == nil {
			failed = append(failed, name)
		}
	}
	if len(failed) == 0 {
		pterm.Success.Printfln("all %d glyphs parsed", len(glyphs))
		return nil
	}
	sort.Strings(failed)
	rows := pterm.TableData{{"Glyph", "File"}}
	for _, name := range failed {
		file, _ := g.Contents().FileName(name)
		rows = append(rows, []string{name, file})
	}
	pterm.Warning.Printfln("%d of %d glyphs failed", len(failed), len(glyphs))
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// writeDump writes glyphs as indented JSON. The file is replaced atomically.
func writeDump(path string, glyphs map[string]*glif.Data) error {
	data, err := json.MarshalIndent(glyphs, "", "  ")
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode glyphs")
	}
	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return core.WithPath(core.WrapError(err, core.EIO, "cannot write dump"), path)
	}
	return nil
}

// describeComponent names a component's base glyph and where the transform
// moves the base glyph's origin.
func describeComponent(c glif.Component) string {
	return c.Base + describeTransform(c.Transform)
}

func describeTransform(t glif.Transform) string {
	if t == glif.Identity {
		return ""
	}
	x, y := t.Apply(0, 0)
	if t.XScale == 1 && t.YScale == 1 && t.XYScale == 0 && t.YXScale == 0 {
		return fmt.Sprintf(" at (%g, %g)", x, y)
	}
	return fmt.Sprintf(" at (%g, %g), transformed [%g %g %g %g]", x, y,
		t.XScale, t.XYScale, t.YXScale, t.YScale)
}

func formatVersion(data *glif.Data) string {
	if data.FormatMinor == "" {
		return data.Format
	}
	return data.Format + "." + data.FormatMinor
}

func libKeys(lib interface{}) []string {
	dict, ok := plist.Dict(lib)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
