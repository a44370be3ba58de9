package services

import "github.com/sirupsen/logrus"

// Progress receives human-readable status lines during an import.
type Progress interface {
	Writeln(msg string)
}

type ProgressFunc func(msg string)

func (f ProgressFunc) Writeln(msg string) { f(msg) }

type logProgress struct {
	log *logrus.Entry
}

func NewLogProgress(log *logrus.Entry) Progress {
	return &logProgress{log: log}
}

func (p *logProgress) Writeln(msg string) {
	p.log.Info(msg)
}
