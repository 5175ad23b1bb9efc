package zap

import (
	uzap "go.uber.org/zap"
)

// Logger is the logging interface used across the service.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
}

type logger struct {
	sugar *uzap.SugaredLogger
}

// NewLogger builds a zap-backed Logger. Release mode uses the production
// config, everything else the development config.
func NewLogger(mode string) Logger {
	var l *uzap.Logger
	var err error

	if mode == "release" {
		l, err = uzap.NewProduction()
	} else {
		l, err = uzap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	return &logger{sugar: l.Sugar()}
}

func (l *logger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *logger) Infof(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *logger) Warnf(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }
func (l *logger) Fatalf(format string, args ...interface{}) { l.sugar.Fatalf(format, args...) }
func (l *logger) Info(args ...interface{})                  { l.sugar.Info(args...) }
func (l *logger) Warn(args ...interface{})                  { l.sugar.Warn(args...) }
func (l *logger) Error(args ...interface{})                 { l.sugar.Error(args...) }
func (l *logger) Fatal(args ...interface{})                 { l.sugar.Fatal(args...) }
