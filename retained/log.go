package retained

import (
	"os"

	"github.com/sirupsen/logrus"
)

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Level = logrus.WarnLevel
	return l
}

var widgetLog logrus.FieldLogger = newDefaultLogger()

// Logger returns the sink for widget usage warnings.
func Logger() logrus.FieldLogger { return widgetLog }

// SetLogger replaces the sink for widget usage warnings. The sink is
// process-wide; each Toolkit still logs layout and dispatch through its own
// LoopConfig.Log. nil restores the default stderr logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newDefaultLogger()
	}
	widgetLog = l
}
