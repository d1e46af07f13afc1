package configslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış logger, SLog sugared karşılığıdır.
// InitLogger çağrılmadan kullanılmamalıdır.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger global loggerları hazırlar. debug true ise okunabilir
// geliştirme çıktısı, değilse production JSON çıktısı kullanılır.
func InitLogger(debug bool) {
	var err error
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		Log, err = cfg.Build()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		panic("logger oluşturulamadı: " + err.Error())
	}
	SLog = Log.Sugar()
}

// SyncLogger buffer'daki kayıtları flush eder; main'de defer edilmelidir.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
