/*
Package styledbg implements helpers to debug a styled tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package styledbg

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/stylecore/cascade"
	"github.com/npillmayer/stylecore/internal/tree"
	"github.com/npillmayer/stylecore/style"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	Groups         []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

// Group names recognized by ToGraphViz's default groups list.
const (
	GroupDisplay    = "display"
	GroupBox        = "box"
	GroupBackground = "background"
	GroupInherited  = "inherited"
)

var defaultGroups = []string{GroupDisplay, GroupBox, GroupBackground, GroupInherited}

type kv struct{ Key, Value string }

type styleGroup struct {
	Name       string
	Properties []kv
}

func groupFor(s *style.ComputedStyle, name string) *styleGroup {
	if s == nil {
		return nil
	}
	switch name {
	case GroupDisplay:
		return &styleGroup{Name: name, Properties: []kv{
			{"display", s.Display()}, {"position", s.Position()},
			{"float", s.Float()}, {"clear", s.Clear()},
		}}
	case GroupBox:
		return &styleGroup{Name: name, Properties: []kv{
			{"width", s.Width().String()}, {"height", s.Height().String()},
			{"margin-top", s.MarginTop().String()}, {"margin-left", s.MarginLeft().String()},
			{"padding-top", s.PaddingTop().String()}, {"padding-left", s.PaddingLeft().String()},
			{"border-top-width", s.BorderTopWidth().String()},
		}}
	case GroupBackground:
		return &styleGroup{Name: name, Properties: []kv{
			{"background-color", s.BackgroundColor().String()},
			{"background-image", s.BackgroundImage()},
		}}
	case GroupInherited:
		return &styleGroup{Name: name, Properties: []kv{
			{"color", s.Color().String()}, {"font-family", s.FontFamily()},
			{"font-size", s.FontSize().String()}, {"font-weight", s.FontWeight()},
		}}
	}
	return nil
}

// ToGraphViz writes a GraphViz (DOT) diagram of a styled tree to w, one
// node per element, edges for parent/child links and dashed edges into
// per-group style boxes. If groups is nil, a default set of (display, box,
// background, inherited) groups is rendered.
func ToGraphViz(root *tree.Node[*cascade.StyNode], w io.Writer, groups []string) {
	tmpl := template.Must(template.New("dom").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(template.FuncMap{
		"shortstring": shortText,
	}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.Groups = groups
	if groups == nil {
		gparams.Groups = defaultGroups
	}
	if err := tmpl.Execute(w, gparams); err != nil {
		panic(err)
	}
	names := map[*tree.Node[*cascade.StyNode]]string{}
	walk(root, w, names, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a testing helper. Given a styled tree and a testing.T, it
// renders an SVG image of the tree to a uniquely-named file in the current
// directory, shelling out to the `dot` command.
func Dotty(root *tree.Node[*cascade.StyNode], t *testing.T) {
	tmpfile, err := ioutil.TempFile(".", "styledtree.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
	}()
	ToGraphViz(root, tmpfile, nil)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type dotNode struct {
	Name  string
	Label string
}

func walk(n *tree.Node[*cascade.StyNode], w io.Writer, names map[*tree.Node[*cascade.StyNode]]string, gparams *graphParamsType) {
	nodeDot(n, w, names, gparams)
	for _, ch := range n.Children(false) {
		walk(ch, w, names, gparams)
		edgeDot(n, ch, w, names, gparams)
	}
}

func nameFor(n *tree.Node[*cascade.StyNode], names map[*tree.Node[*cascade.StyNode]]string) string {
	if name, ok := names[n]; ok {
		return name
	}
	name := fmt.Sprintf("node%05d", len(names)+1)
	names[n] = name
	return name
}

func nodeDot(n *tree.Node[*cascade.StyNode], w io.Writer, names map[*tree.Node[*cascade.StyNode]]string, gparams *graphParamsType) {
	sn := cascade.Node(n)
	name := nameFor(n, names)
	if err := gparams.NodeTmpl.Execute(w, dotNode{Name: name, Label: shortText(sn.Element().NodeName())}); err != nil {
		panic(err)
	}
	styleGroups(n, w, names, gparams)
}

func styleGroups(n *tree.Node[*cascade.StyNode], w io.Writer, names map[*tree.Node[*cascade.StyNode]]string, gparams *graphParamsType) {
	sn := cascade.Node(n)
	name := nameFor(n, names)
	var prevKey string
	for _, g := range gparams.Groups {
		sg := groupFor(sn.Styles(), g)
		if sg == nil {
			continue
		}
		key := fmt.Sprintf("pg_%s_%s", name, g)
		if err := gparams.StylegroupTmpl.Execute(w, struct {
			Key string
			*styleGroup
		}{key, sg}); err != nil {
			panic(err)
		}
		if prevKey == "" {
			if err := gparams.PgedgeTmpl.Execute(w, struct{ Node, Group string }{name, key}); err != nil {
				panic(err)
			}
		} else {
			if err := gparams.PgpgTmpl.Execute(w, struct{ A, B string }{prevKey, key}); err != nil {
				panic(err)
			}
		}
		prevKey = key
	}
}

func edgeDot(n1, n2 *tree.Node[*cascade.StyNode], w io.Writer, names map[*tree.Node[*cascade.StyNode]]string, gparams *graphParamsType) {
	e := struct{ N1, N2 string }{nameFor(n1, names), nameFor(n2, names)}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

func shortText(s string) string {
	q := "\"\\\""
	if len(s) > 10 {
		q += s[:10] + "...\\\"\""
	} else {
		q += s + "\\\"\""
	}
	q = strings.Replace(q, "\n", `\\n`, -1)
	q = strings.Replace(q, "\t", `\\t`, -1)
	q = strings.Replace(q, " ", "␣", -1)
	return q
}

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const nodeTmpl = `{{ .Name }}	[ label={{ .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const styleGroupTmpl = `{{ .Key }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Node }} -> {{ .Group }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ .A }} -> {{ .B }} [dir=none weight=1 style="dashed"] ;
`
