package api

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/template"

	"github.com/ghodss/yaml"
	"github.com/luscis/swengine/pkg/libol"
)

var Output io.Writer = os.Stdout

func OutJson(data interface{}) error {
	out, err := libol.Marshal(data, true)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(Output, string(out))
	return err
}

func OutYaml(data interface{}) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(Output, string(out))
	return err
}

func pad(space int, verb string) string {
	if space < 0 {
		return "%-" + strconv.Itoa(-space) + verb
	}
	return "%" + strconv.Itoa(space) + verb
}

func OutTable(data interface{}, tmpl string) error {
	funcMap := template.FuncMap{
		"ps": func(space int, args ...interface{}) string {
			return fmt.Sprintf(pad(space, "s"), args...)
		},
		"pi": func(space int, args ...interface{}) string {
			return fmt.Sprintf(pad(space, "d"), args...)
		},
		"pt": func(value int64) string {
			return libol.PrettyTime(value)
		},
	}
	t, err := template.New("main").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(Output, data)
}

func Out(data interface{}, format string, tmpl string) error {
	libol.Debug("Out %s %s", format, tmpl)
	switch format {
	case "json":
		return OutJson(data)
	case "yaml":
		return OutYaml(data)
	default:
		if tmpl == "" {
			return OutYaml(data)
		}
		return OutTable(data, tmpl)
	}
}
