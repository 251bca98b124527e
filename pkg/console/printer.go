package console

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"text/template"
	"time"

	"github.com/ghodss/yaml"
	"github.com/luscis/swengine/pkg/config"
	"github.com/luscis/swengine/pkg/libol"
	"github.com/luscis/swengine/pkg/models"
	"github.com/luscis/swengine/pkg/schema"
	cswitch "github.com/luscis/swengine/pkg/switch"
)

const fdbTmpl = `{{ ps 7 "Address" }}{{ ps 5 "Port" }}{{ ps 5 "Time" }}
{{- range . }}
{{ pi 7 .Address }}{{ pi 5 .Port }}{{ ps 9 .Learned }}
{{- end }}
`

const statisticsTmpl = `Port Frames
{{- range . }}
{{ pi 4 .Port }}{{ pi 7 .Frames }}
{{- end }}
`

var funcMap = template.FuncMap{
	"ps": func(space int, args ...interface{}) string {
		return fmt.Sprintf("%"+strconv.Itoa(space)+"s", args...)
	},
	"pi": func(space int, args ...interface{}) string {
		return fmt.Sprintf("%"+strconv.Itoa(space)+"d", args...)
	},
}

// Printer renders engine results as a text table, json or yaml.
type Printer struct {
	out    io.Writer
	format string
}

func NewPrinter(out io.Writer, format string) *Printer {
	return &Printer{out: out, format: format}
}

func (p *Printer) OutJson(data interface{}) error {
	out, err := libol.Marshal(data, true)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.out, string(out))
	return err
}

func (p *Printer) OutYaml(data interface{}) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.out, string(out))
	return err
}

func (p *Printer) OutTable(data interface{}, tmpl string) error {
	t, err := template.New("main").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(p.out, data)
}

// Out writes data in the structured formats, or calls text for tables.
func (p *Printer) Out(data interface{}, text func() error) error {
	switch p.format {
	case config.FormatJson:
		return p.OutJson(data)
	case config.FormatYaml:
		return p.OutYaml(data)
	default:
		return text()
	}
}

func (p *Printer) println(format string, v ...interface{}) error {
	_, err := fmt.Fprintf(p.out, format+"\n", v...)
	return err
}

func (p *Printer) Created(ports int) error {
	data := schema.Message{Code: http.StatusOK, Message: fmt.Sprintf("%d-port switch created", ports)}
	return p.Out(data, func() error {
		return p.println("A %d-port switch was created.", ports)
	})
}

func (p *Printer) Invalid(err error) error {
	data := schema.Message{Code: http.StatusBadRequest, Message: err.Error()}
	return p.Out(data, func() error {
		return p.println("Invalid input!")
	})
}

func (p *Printer) Outcome(o cswitch.Outcome) error {
	return p.Out(cswitch.NewOutcomeSchema(o), func() error {
		switch o.Action {
		case cswitch.ActBroadcast:
			return p.println("Broadcast: output on all ports except port %d.", o.Ingress)
		case cswitch.ActFlood:
			return p.println("Output on all ports except port %d.", o.Ingress)
		case cswitch.ActFilter:
			return p.println("Frame filtered and discarded.")
		default:
			return p.println("Output on port %d.", o.Port)
		}
	})
}

func (p *Printer) Fdb(items []models.Fdb, now time.Time) error {
	data := make([]schema.Fdb, 0, len(items))
	for _, e := range items {
		data = append(data, models.NewFdbSchema(e, now))
	}
	return p.Out(data, func() error {
		return p.OutTable(data, fdbTmpl)
	})
}

func (p *Printer) Statistics(items []models.Statistic) error {
	data := make([]schema.Statistic, 0, len(items))
	for _, s := range items {
		data = append(data, models.NewStatisticSchema(s))
	}
	return p.Out(data, func() error {
		return p.OutTable(data, statisticsTmpl)
	})
}

func (p *Printer) Expired(age string, deleted []int) error {
	data := schema.Expired{Age: age, Deleted: deleted}
	return p.Out(data, func() error {
		if len(deleted) == 0 {
			return p.println("No addresses were deleted from the switch table")
		}
		return p.println("The following addresses were deleted from the switch table: %s",
			libol.JoinInts(deleted, ", "))
	})
}
