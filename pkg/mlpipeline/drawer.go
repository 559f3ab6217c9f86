package mlpipeline

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	colors "gopkg.in/go-playground/colors.v1"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

var kindColors = map[model.StepKind]string{
	model.GenericStepKind: "#4b8bbe",
	model.NeuralStepKind:  "#be4b6e",
}

// Draw writes a DOT description of the dataflow to the given writer. Steps
// are coloured by kind and labelled with their hyperparameter counts; when
// measurement is enabled the average fit and produce durations are appended.
func (p *Pipeline) Draw(w io.Writer) error {
	for name, step := range p.steps {
		fill, err := kindColor(step.Kind)
		if err != nil {
			return err
		}

		label := fmt.Sprintf("%d fixed, %d tunable", len(step.FixedHyperparams), len(step.TunableHyperparams))
		if p.measure != nil {
			st := p.measure.step(name)
			if avg := st.avgFit(); avg > 0 {
				label += ", fit: " + avg.String()
			}
			if avg := st.avgProduce(); avg > 0 {
				label += ", produce: " + avg.String()
			}
		}

		p.flowStore.UpdateVertex(name, func(props *graph.VertexProperties) {
			if props.Attributes == nil {
				props.Attributes = make(map[string]string)
			}
			props.Attributes["style"] = "filled"
			props.Attributes["fillcolor"] = fill
			props.Attributes["xlabel"] = label
		})
	}

	return dot(p.flow, w, GraphAttribute("rankdir", "LR"))
}

// DrawFile renders the dataflow DOT description into the given file.
func (p *Pipeline) DrawFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", path)
	}
	defer func() { _ = file.Close() }()

	err = p.Draw(file)
	if err != nil {
		return errors.Wrapf(err, "unable to draw dataflow to %s", path)
	}

	return nil
}

func kindColor(kind model.StepKind) (string, error) {
	hex, ok := kindColors[kind]
	if !ok {
		hex = kindColors[model.GenericStepKind]
	}

	parsed, err := colors.ParseHEX(hex)
	if err != nil {
		return "", errors.Wrapf(err, "unable to parse colour %s", hex)
	}

	return parsed.String(), nil
}

const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           any
	Target           any
	SourceWeight     int
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeWeight       int
	EdgeAttributes   map[string]string
}

// GraphAttribute is a functional option for the dot rendering.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func dot[K comparable, T any](g graph.Graph[K, T], w io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(w, desc)
}

func generateDOT[K comparable, T any](g graph.Graph[K, T], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if g.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := g.AdjacencyMap()
	if err != nil {
		return desc, err
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := g.VertexWithProperties(vertex)
		if err != nil {
			return desc, err
		}

		htmlAttributes := make(map[string]string)
		if xlabel, ok := sourceProperties.Attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)
			delete(sourceProperties.Attributes, "xlabel")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
			HTMLAttributes:   htmlAttributes,
		})

		for adjacency, edge := range adjacencies {
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(w io.Writer, d description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	return tpl.Execute(w, d)
}
