package logging

// Nop is a Logger which discards everything
type Nop struct{}

func (Nop) Error(args ...interface{})                 {}
func (Nop) Errorf(format string, args ...interface{}) {}
func (Nop) Errorln(args ...interface{})               {}

func (Nop) Debug(args ...interface{})                 {}
func (Nop) Debugf(format string, args ...interface{}) {}
func (Nop) Debugln(args ...interface{})               {}

func (Nop) Warning(args ...interface{})                 {}
func (Nop) Warningf(format string, args ...interface{}) {}
func (Nop) Warningln(args ...interface{})               {}

func (Nop) Info(args ...interface{})                 {}
func (Nop) Infof(format string, args ...interface{}) {}
func (Nop) Infoln(args ...interface{})               {}
