package libol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gopkg.in/yaml.v2"
)

const SimpleTime = "2006-01-02 15:04:05"
const ClockTime = "15:04:05"

func IsYaml(file string) bool {
	return strings.HasSuffix(file, ".yaml") || strings.HasSuffix(file, ".yml")
}

func IsJson(file string) bool {
	return strings.HasSuffix(file, ".json")
}

func Marshal(v interface{}, pretty bool) ([]byte, error) {
	str, err := json.Marshal(v)
	if err != nil {
		Error("Marshal error: %s", err)
		return nil, err
	}
	if !pretty {
		return str, nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, str, "", "  "); err != nil {
		return str, nil
	}
	return out.Bytes(), nil
}

func FileExist(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return err
	}
	return nil
}

func LoadFile(file string) ([]byte, error) {
	return os.ReadFile(file)
}

func Unmarshal(v interface{}, contents []byte) error {
	if err := json.Unmarshal(contents, v); err != nil {
		return NewErr("%s", err)
	}
	return nil
}

// UnmarshalLoad decodes file into v by its extension. A missing
// file leaves v untouched.
func UnmarshalLoad(v interface{}, file string) error {
	if err := FileExist(file); err != nil {
		return nil
	}
	contents, err := LoadFile(file)
	if err != nil {
		return NewErr("%s %s", file, err)
	}
	if IsYaml(file) {
		if err := yaml.Unmarshal(contents, v); err != nil {
			return NewErr("%s %s", file, err)
		}
		return nil
	}
	return Unmarshal(v, contents)
}

func FunName(i interface{}) string {
	ptr := reflect.ValueOf(i).Pointer()
	name := runtime.FuncForPC(ptr).Name()
	return path.Base(name)
}

func PrettyTime(t int64) string {
	s := ""
	if t < 0 {
		s = "-"
		t = -t
	}
	min := t / 60
	if min < 60 {
		return fmt.Sprintf("%s%dm%ds", s, min, t%60)
	}
	hours := min / 60
	if hours < 24 {
		return fmt.Sprintf("%s%dh%dm", s, hours, min%60)
	}
	days := hours / 24
	return fmt.Sprintf("%s%dd%dh", s, days, hours%24)
}

func PrettyClock(t time.Time) string {
	return t.Local().Format(ClockTime)
}

func JoinInts(values []int, sep string) string {
	items := make([]string, 0, len(values))
	for _, v := range values {
		items = append(items, strconv.Itoa(v))
	}
	return strings.Join(items, sep)
}

func OpenWrite(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
}

func Wait() {
	x := make(chan os.Signal, 1)
	signal.Notify(x, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	Info("Wait: ...")
	n := <-x
	Warn("Wait: ... Signal %d received ...", n)
}
