// Package logging defines the logging contract of the library.
//
// The interface is satisfied by github.com/sirupsen/logrus out of the box, but
// any implementation can be plugged in. Library types default to the Nop
// implementation so that nothing is ever written unless the caller asks for it.
package logging

type Logger interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Errorln(args ...interface{})

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Debugln(args ...interface{})

	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Warningln(args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Infoln(args ...interface{})
}
