package ecc

import "github.com/sirupsen/logrus"

// log is the package-level logger used by codec constructors to record
// construction parameters at Debug level and by decoders to warn on
// uncorrectable error counts, the way the teacher's decode.Decoder.Log
// dumps its configuration to the standard logger. Library consumers
// that want the codecs quiet or redirected call SetLogger.
var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the logger used by every codec in this process.
// Pass a logrus.New() with Out set to io.Discard to silence it.
func SetLogger(l logrus.FieldLogger) {
	log = l
}

// Logger returns the logger currently in use, for subpackages (hamming,
// bch, rs) that want to log without importing the root package's
// mutable global directly. gf and poly do not log: ecc imports gf, so
// neither can import ecc.
func Logger() logrus.FieldLogger {
	return log
}
