package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	String  = zap.String
	Bool    = zap.Bool
	Int     = zap.Int
	Int64   = zap.Int64
	Uint    = zap.Uint
	Float64 = zap.Float64
	Any     = zap.Any
	Err     = zap.Error
)

var (
	global *zap.Logger
	level  zap.AtomicLevel
)

func init() {
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
	global = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

func L() *zap.Logger {
	return global
}

func With(fields ...Field) *zap.Logger {
	return global.With(fields...)
}

func Debug(msg string, fields ...Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	global.Error(msg, fields...)
}

func Panic(msg string, fields ...Field) {
	global.Panic(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	global.Fatal(msg, fields...)
}

func Sync() {
	_ = global.Sync()
}
