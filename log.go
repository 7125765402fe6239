package tween

import "github.com/sirupsen/logrus"

// std is the logger used by instances and managers that were not given one.
var std logrus.FieldLogger = logrus.WithField("component", "tween")

// logFields describes an instance for log entries.
func logFields(in *Instance) logrus.Fields {
	return logrus.Fields{
		"tween":  in.id,
		"target": in.target,
	}
}
