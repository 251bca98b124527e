package libol

import (
	"container/list"
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"time"
)

const (
	PRINT = 01
	LOG   = 05
	STACK = 06
	DEBUG = 10
	FLOW  = 11
	CMD   = 15
	EVENT = 16
	INFO  = 20
	WARN  = 30
	ERROR = 40
	FATAL = 99
)

// Message is one saved log line, newest first in List().
type Message struct {
	Level   string `json:"level"`
	Date    string `json:"date"`
	Message string `json:"message"`
	Module  string `json:"module"`
}

var levels = map[int]string{
	PRINT: "PRINT",
	LOG:   "LOG",
	DEBUG: "DEBUG",
	STACK: "STACK",
	FLOW:  "FLOW",
	CMD:   "CMD",
	EVENT: "EVENT",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

const maxMessages = 1024

type logger struct {
	Level    int
	FileName string
	FileLog  *log.Logger
	Lock     sync.Mutex
	Messages *list.List
}

func (l *logger) Write(level int, module, format string, v ...interface{}) {
	str, ok := levels[level]
	if !ok {
		str = "NULL"
	}
	if level >= l.Level {
		log.Printf(fmt.Sprintf("%s|%s|%s", str, module, format), v...)
	}
	if level >= EVENT {
		l.Save(str, module, format, v...)
	}
}

func (l *logger) Save(level, module, format string, v ...interface{}) {
	m := fmt.Sprintf(format, v...)
	if l.FileLog != nil {
		l.FileLog.Printf("%s|%s|%s\n", level, module, m)
	}
	l.Lock.Lock()
	defer l.Lock.Unlock()
	if l.Messages.Len() >= maxMessages {
		if e := l.Messages.Front(); e != nil {
			l.Messages.Remove(e)
		}
	}
	l.Messages.PushBack(&Message{
		Level:   level,
		Date:    time.Now().Format(time.RFC3339),
		Message: m,
		Module:  module,
	})
}

func (l *logger) List() []Message {
	l.Lock.Lock()
	defer l.Lock.Unlock()
	items := make([]Message, 0, l.Messages.Len())
	for ele := l.Messages.Back(); ele != nil; ele = ele.Prev() {
		items = append(items, *ele.Value.(*Message))
	}
	return items
}

var Logger = &logger{
	Level:    INFO,
	Messages: list.New(),
}

func SetLogger(file string, level int) {
	Logger.Level = level
	if file == "" || Logger.FileName == file {
		return
	}
	fp, err := OpenWrite(file)
	if err != nil {
		Warn("Logger.Init: %s", err)
		return
	}
	Logger.FileName = file
	Logger.FileLog = log.New(fp, "", log.LstdFlags)
}

func SetLevel(level int) {
	Logger.Level = level
}

type SubLogger struct {
	*logger
	Prefix string
}

func NewSubLogger(prefix string) *SubLogger {
	return &SubLogger{
		logger: Logger,
		Prefix: prefix,
	}
}

var rLogger = NewSubLogger("root")

func Catch(name string) {
	if err := recover(); err != nil {
		Fatal("%s|PANIC >>> %s <<<", name, err)
		Fatal("%s|STACK >>> %s <<<", name, debug.Stack())
	}
}

func Debug(format string, v ...interface{}) {
	rLogger.Debug(format, v...)
}

func Cmd(format string, v ...interface{}) {
	rLogger.Cmd(format, v...)
}

func Info(format string, v ...interface{}) {
	rLogger.Info(format, v...)
}

func Warn(format string, v ...interface{}) {
	rLogger.Warn(format, v...)
}

func Error(format string, v ...interface{}) {
	rLogger.Error(format, v...)
}

func Fatal(format string, v ...interface{}) {
	rLogger.Fatal(format, v...)
}

func (s *SubLogger) Has(level int) bool {
	return level >= s.Level
}

func (s *SubLogger) Log(format string, v ...interface{}) {
	s.logger.Write(LOG, s.Prefix, format, v...)
}

func (s *SubLogger) Debug(format string, v ...interface{}) {
	s.logger.Write(DEBUG, s.Prefix, format, v...)
}

func (s *SubLogger) Flow(format string, v ...interface{}) {
	s.logger.Write(FLOW, s.Prefix, format, v...)
}

func (s *SubLogger) Cmd(format string, v ...interface{}) {
	s.logger.Write(CMD, s.Prefix, format, v...)
}

func (s *SubLogger) Event(format string, v ...interface{}) {
	s.logger.Write(EVENT, s.Prefix, format, v...)
}

func (s *SubLogger) Info(format string, v ...interface{}) {
	s.logger.Write(INFO, s.Prefix, format, v...)
}

func (s *SubLogger) Warn(format string, v ...interface{}) {
	s.logger.Write(WARN, s.Prefix, format, v...)
}

func (s *SubLogger) Error(format string, v ...interface{}) {
	s.logger.Write(ERROR, s.Prefix, format, v...)
}

func (s *SubLogger) Fatal(format string, v ...interface{}) {
	s.logger.Write(FATAL, s.Prefix, format, v...)
}

func init() {
	log.SetFlags(log.LstdFlags)
}
